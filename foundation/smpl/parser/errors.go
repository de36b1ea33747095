// File: errors.go
// Title: Smpl Scanner and Parser Errors
// Description: Typed errors for unmatched input, unexpected tokens and
//              integer literals outside the int64 range.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial error types

package parser

import (
	"fmt"
	"unicode/utf8"
)

// maxNearLength limits the input excerpt quoted in a LexError message
const maxNearLength = 20

// LexError reports text at which no token rule matched
type LexError struct {
	Offset    int
	Line      int
	Column    int
	Remaining string // Unconsumed input starting at the offending character
}

func (e *LexError) Error() string {
	near := e.Remaining
	if utf8.RuneCountInString(near) > maxNearLength {
		near = string([]rune(near)[:maxNearLength]) + "..."
	}
	return fmt.Sprintf("unexpected character %q at line %d, column %d (near %q)",
		e.Char(), e.Line, e.Column, near)
}

// Char returns the first unmatched character
func (e *LexError) Char() rune {
	r, _ := utf8.DecodeRuneInString(e.Remaining)
	return r
}

// ParseError reports a token of the wrong kind. Actual is KindEOF when the
// tokens ran out; Token then holds the position just past the last token.
type ParseError struct {
	Expected TokenKind
	Actual   TokenKind
	Token    Token
}

func (e *ParseError) Error() string {
	if e.Actual == KindEOF {
		return fmt.Sprintf("parse error at line %d, column %d: expected %s, got %s",
			e.Token.Line, e.Token.Column, e.Expected, e.Actual)
	}
	return fmt.Sprintf("parse error at line %d, column %d: expected %s, got %s (near '%s')",
		e.Token.Line, e.Token.Column, e.Expected, e.Actual, e.Token.Lexeme)
}

// IntegerError reports an integer literal that does not fit into int64
type IntegerError struct {
	Token Token
	Err   error
}

func (e *IntegerError) Error() string {
	return fmt.Sprintf("integer literal %s at line %d, column %d out of range",
		e.Token.Lexeme, e.Token.Line, e.Token.Column)
}

func (e *IntegerError) Unwrap() error {
	return e.Err
}
