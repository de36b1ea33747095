// File: lexer_test.go
// Title: Smpl Scanner Unit Tests
// Description: Tests for rule order, word boundaries, whitespace handling,
//              position tracking and scan errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial scanner test suite

package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwlog "github.com/msto63/smpl/foundation/core/log"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize_Positions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Definition with call",
			input: "def add(a, b) add(a, b) end",
			expected: []Token{
				{Kind: KindDef, Lexeme: "def", Offset: 0, Line: 1, Column: 1},
				{Kind: KindIdentifier, Lexeme: "add", Offset: 4, Line: 1, Column: 5},
				{Kind: KindLeftParen, Lexeme: "(", Offset: 7, Line: 1, Column: 8},
				{Kind: KindIdentifier, Lexeme: "a", Offset: 8, Line: 1, Column: 9},
				{Kind: KindComma, Lexeme: ",", Offset: 9, Line: 1, Column: 10},
				{Kind: KindIdentifier, Lexeme: "b", Offset: 11, Line: 1, Column: 12},
				{Kind: KindRightParen, Lexeme: ")", Offset: 12, Line: 1, Column: 13},
				{Kind: KindIdentifier, Lexeme: "add", Offset: 14, Line: 1, Column: 15},
				{Kind: KindLeftParen, Lexeme: "(", Offset: 17, Line: 1, Column: 18},
				{Kind: KindIdentifier, Lexeme: "a", Offset: 18, Line: 1, Column: 19},
				{Kind: KindComma, Lexeme: ",", Offset: 19, Line: 1, Column: 20},
				{Kind: KindIdentifier, Lexeme: "b", Offset: 21, Line: 1, Column: 22},
				{Kind: KindRightParen, Lexeme: ")", Offset: 22, Line: 1, Column: 23},
				{Kind: KindEnd, Lexeme: "end", Offset: 24, Line: 1, Column: 25},
			},
		},
		{
			name:  "Multi-line source",
			input: "def f(x)\n  x\nend",
			expected: []Token{
				{Kind: KindDef, Lexeme: "def", Offset: 0, Line: 1, Column: 1},
				{Kind: KindIdentifier, Lexeme: "f", Offset: 4, Line: 1, Column: 5},
				{Kind: KindLeftParen, Lexeme: "(", Offset: 5, Line: 1, Column: 6},
				{Kind: KindIdentifier, Lexeme: "x", Offset: 6, Line: 1, Column: 7},
				{Kind: KindRightParen, Lexeme: ")", Offset: 7, Line: 1, Column: 8},
				{Kind: KindIdentifier, Lexeme: "x", Offset: 11, Line: 2, Column: 3},
				{Kind: KindEnd, Lexeme: "end", Offset: 13, Line: 3, Column: 1},
			},
		},
		{
			name:  "Leading whitespace is skipped",
			input: "  \t\n def",
			expected: []Token{
				{Kind: KindDef, Lexeme: "def", Offset: 5, Line: 2, Column: 2},
			},
		},
		{
			name:  "No whitespace between tokens",
			input: "f(1,x)",
			expected: []Token{
				{Kind: KindIdentifier, Lexeme: "f", Offset: 0, Line: 1, Column: 1},
				{Kind: KindLeftParen, Lexeme: "(", Offset: 1, Line: 1, Column: 2},
				{Kind: KindInteger, Lexeme: "1", Offset: 2, Line: 1, Column: 3},
				{Kind: KindComma, Lexeme: ",", Offset: 3, Line: 1, Column: 4},
				{Kind: KindIdentifier, Lexeme: "x", Offset: 4, Line: 1, Column: 5},
				{Kind: KindRightParen, Lexeme: ")", Offset: 5, Line: 1, Column: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input, WithLogger(mdwlog.Discard()))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, tokens); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		legacy bool
		want   []TokenKind
	}{
		{name: "end keyword", input: "end", want: []TokenKind{KindEnd}},
		{name: "def keyword", input: "def", want: []TokenKind{KindDef}},
		{name: "keyword prefix is identifier", input: "define", want: []TokenKind{KindIdentifier}},
		{name: "end prefix is identifier", input: "endpoint", want: []TokenKind{KindIdentifier}},
		{name: "def suffix is identifier", input: "defend", want: []TokenKind{KindIdentifier}},
		{name: "legacy end prefix", input: "endpoint", legacy: true, want: []TokenKind{KindEnd, KindIdentifier}},
		{name: "legacy end alone", input: "end", legacy: true, want: []TokenKind{KindEnd}},
		{name: "integers", input: "0 42 007", want: []TokenKind{KindInteger, KindInteger, KindInteger}},
		{name: "punctuation", input: "( ) ,", want: []TokenKind{KindLeftParen, KindRightParen, KindComma}},
		{name: "keyword before paren", input: "end)", want: []TokenKind{KindEnd, KindRightParen}},
		{name: "empty input", input: "", want: []TokenKind{}},
		{name: "only whitespace", input: " \n\t ", want: []TokenKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []ScannerOption{WithLogger(mdwlog.Discard())}
			if tt.legacy {
				opts = append(opts, WithLegacyEndPrefix())
			}
			tokens, err := Tokenize(tt.input, opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestTokenize_LegacyEndLexemes(t *testing.T) {
	tokens, err := Tokenize("endpoint", WithLegacyEndPrefix(), WithLogger(mdwlog.Discard()))
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "end", tokens[0].Lexeme)
	assert.Equal(t, "point", tokens[1].Lexeme)
	assert.Equal(t, 3, tokens[1].Offset)
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		legacy    bool
		offset    int
		column    int
		char      rune
		remaining string
	}{
		{name: "unknown character", input: "def f() $ end", offset: 8, column: 9, char: '$', remaining: "$ end"},
		{name: "letter followed by digit", input: "a1", offset: 0, column: 1, char: 'a', remaining: "a1"},
		{name: "digit followed by letter", input: "1a", offset: 0, column: 1, char: '1', remaining: "1a"},
		{name: "underscore in word", input: "a_b", offset: 0, column: 1, char: 'a', remaining: "a_b"},
		{name: "non-ASCII letter", input: "f(é)", offset: 2, column: 3, char: 'é', remaining: "é)"},
		{name: "letter followed by non-ASCII letter", input: "dé", offset: 0, column: 1, char: 'd', remaining: "dé"},
		{name: "end followed by underscore", input: "end_", offset: 0, column: 1, char: 'e', remaining: "end_"},
		{name: "legacy end followed by underscore", input: "end_", legacy: true, offset: 3, column: 4, char: '_', remaining: "_"},
		{name: "negative number", input: "-1", offset: 0, column: 1, char: '-', remaining: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []ScannerOption{WithLogger(mdwlog.Discard())}
			if tt.legacy {
				opts = append(opts, WithLegacyEndPrefix())
			}
			tokens, err := Tokenize(tt.input, opts...)
			require.Error(t, err)
			assert.Nil(t, tokens)

			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr), "want *LexError, got %T", err)
			assert.Equal(t, tt.offset, lexErr.Offset)
			assert.Equal(t, 1, lexErr.Line)
			assert.Equal(t, tt.column, lexErr.Column)
			assert.Equal(t, tt.char, lexErr.Char())
			assert.Equal(t, tt.remaining, lexErr.Remaining)
		})
	}
}

func TestLexError_Message(t *testing.T) {
	_, err := Tokenize("def f() $ end", WithLogger(mdwlog.Discard()))
	require.Error(t, err)
	assert.Equal(t, `unexpected character '$' at line 1, column 9 (near "$ end")`, err.Error())

	long := &LexError{Line: 1, Column: 1, Remaining: "$" + strings.Repeat("x", 40)}
	assert.Contains(t, long.Error(), `(near "$`+strings.Repeat("x", 19)+`...")`)
}

func TestScanner_Next(t *testing.T) {
	s := NewScanner("def f", WithLogger(mdwlog.Discard()))

	tok, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "keyword_def(def)", tok.String())

	tok, ok, err = s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindIdentifier, tok.Kind)

	_, ok, err = s.Next()
	assert.NoError(t, err)
	assert.False(t, ok)

	// Exhausted scanners stay exhausted
	_, ok, err = s.Next()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestScanner_NextStopsAtError(t *testing.T) {
	s := NewScanner("x $", WithLogger(mdwlog.Discard()))

	_, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 2; i++ {
		_, ok, err = s.Next()
		assert.False(t, ok)
		var lexErr *LexError
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, 2, lexErr.Offset)
	}
}

func TestScanner_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatText,
		Output: &buf,
	})

	_, err := Tokenize("def one() 1 end", WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scan completed")
	assert.Contains(t, buf.String(), "component=smpl-scanner")
	assert.Contains(t, buf.String(), "tokens=7")
	assert.NotContains(t, buf.String(), "[TRC]")
}

func TestTokenize_TraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelTrace,
		Format: mdwlog.FormatText,
		Output: &buf,
	})

	tokens, err := Tokenize("def f(x)\n x end", WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, len(tokens), strings.Count(buf.String(), "[TRC]"))
	assert.Contains(t, buf.String(), "kind=identifier")
	assert.Contains(t, buf.String(), "lexeme=x")
	assert.Contains(t, buf.String(), "line=2")
}

func TestTokenKind_String(t *testing.T) {
	want := map[TokenKind]string{
		KindDef:        "keyword_def",
		KindEnd:        "keyword_end",
		KindIdentifier: "identifier",
		KindInteger:    "integer",
		KindLeftParen:  "lparen",
		KindRightParen: "rparen",
		KindComma:      "comma",
		KindEOF:        "end of input",
		TokenKind(99):  "unknown",
	}
	for kind, name := range want {
		assert.Equal(t, name, kind.String())
	}
}

func TestToken_End(t *testing.T) {
	tok := Token{Kind: KindIdentifier, Lexeme: "add", Offset: 4, Line: 1, Column: 5}
	offset, line, column := tok.End()
	assert.Equal(t, 7, offset)
	assert.Equal(t, 1, line)
	assert.Equal(t, 8, column)
}

func TestJoin(t *testing.T) {
	tokens, err := Tokenize("def  add(a,b)\n add(a,b) end", WithLogger(mdwlog.Discard()))
	require.NoError(t, err)
	assert.Equal(t, "def add ( a , b ) add ( a , b ) end", Join(tokens))
	assert.Equal(t, "", Join(nil))
}
