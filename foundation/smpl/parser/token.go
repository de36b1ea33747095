// File: token.go
// Title: Smpl Token Definitions
// Description: Token kinds and the immutable Token value produced by the
//              scanner.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token model

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenKind represents the type of a lexical token
type TokenKind int

const (
	// KindEOF marks exhausted input in parse errors. The scanner never emits it.
	KindEOF TokenKind = iota

	KindDef        // def
	KindEnd        // end
	KindIdentifier // add, a, b
	KindInteger    // 1, 42
	KindLeftParen  // (
	KindRightParen // )
	KindComma      // ,
)

// String returns the stable name of the token kind
func (k TokenKind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindDef:
		return "keyword_def"
	case KindEnd:
		return "keyword_end"
	case KindIdentifier:
		return "identifier"
	case KindInteger:
		return "integer"
	case KindLeftParen:
		return "lparen"
	case KindRightParen:
		return "rparen"
	case KindComma:
		return "comma"
	default:
		return "unknown"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Kind   TokenKind // Token kind
	Lexeme string    // Exact matched text
	Offset int       // Byte offset in input
	Line   int       // Line number (1-based)
	Column int       // Column number (1-based, in runes)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Kind == KindEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
}

// End returns the offset, line and column just past the token
func (t Token) End() (offset, line, column int) {
	return t.Offset + len(t.Lexeme), t.Line, t.Column + utf8.RuneCountInString(t.Lexeme)
}

// Join joins the lexemes of tokens with single spaces
func Join(tokens []Token) string {
	lexemes := make([]string, len(tokens))
	for i, tok := range tokens {
		lexemes[i] = tok.Lexeme
	}
	return strings.Join(lexemes, " ")
}
