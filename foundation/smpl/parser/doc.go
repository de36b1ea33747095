// File: doc.go
// Title: Smpl Parser Package Documentation
// Description: Scanner and recursive descent parser for the Smpl language.
//              Turns source text into tokens and tokens into a single
//              function definition AST.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial scanner and parser

/*
Package parser provides lexical analysis and parsing for Smpl source text.

A Smpl program is exactly one function definition:

	def add(a, b) add(a, b) end

The package has two stages:

  - Scanner: tries an ordered list of token rules at the cursor, first match
    wins, whitespace between tokens is skipped. Text that no rule matches
    yields a *LexError.
  - Parser: recursive descent over the token slice with fixed-offset
    lookahead. Mismatches yield a *ParseError, integers outside the int64
    range an *IntegerError.

Basic usage:

	tokens, err := parser.Tokenize("def one() 1 end")
	if err != nil {
		return err
	}
	def, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	fmt.Println(def) // def one() 1 end

Both stages are synchronous and keep no package-level state, so independent
calls may run concurrently.
*/
package parser
