// File: lexer.go
// Title: Smpl Lexical Analyzer (Scanner)
// Description: Converts Smpl source text into tokens by trying an ordered
//              list of rules at the cursor. The first matching rule wins.
//              Positions are tracked for error reporting.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial scanner implementation
// - 2026-10-18 v0.1.1: Trace record per token, fixed initial capacity

package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	mdwlog "github.com/msto63/smpl/foundation/core/log"
)

// matcher returns the byte length of the match at the start of rest, or 0
type matcher func(rest string) int

// rule pairs a token kind with its matcher. Rules are tried in slice order.
type rule struct {
	kind  TokenKind
	match matcher
}

// newRules returns the token rules in priority order. Keywords come before
// identifiers so that "def" and "end" never scan as identifiers.
func newRules(legacyEndPrefix bool) []rule {
	return []rule{
		{KindDef, keyword("def", true)},
		{KindEnd, keyword("end", !legacyEndPrefix)},
		{KindIdentifier, run(isASCIILetter)},
		{KindInteger, run(isASCIIDigit)},
		{KindLeftParen, literal('(')},
		{KindRightParen, literal(')')},
		{KindComma, literal(',')},
	}
}

// keyword matches word, followed by a word boundary when bounded is set
func keyword(word string, bounded bool) matcher {
	return func(rest string) int {
		if !strings.HasPrefix(rest, word) {
			return 0
		}
		if bounded && !atWordBoundary(rest[len(word):]) {
			return 0
		}
		return len(word)
	}
}

// run matches the longest run of bytes in class followed by a word boundary
func run(class func(byte) bool) matcher {
	return func(rest string) int {
		n := 0
		for n < len(rest) && class(rest[n]) {
			n++
		}
		if n == 0 || !atWordBoundary(rest[n:]) {
			return 0
		}
		return n
	}
}

// literal matches a single punctuation byte
func literal(ch byte) matcher {
	return func(rest string) int {
		if len(rest) > 0 && rest[0] == ch {
			return 1
		}
		return 0
	}
}

// atWordBoundary reports whether the text following a word ends it
func atWordBoundary(after string) bool {
	if after == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(after)
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIILetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isASCIIDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// ScannerOption configures a Scanner
type ScannerOption func(*Scanner)

// WithLegacyEndPrefix makes "end" match as a prefix without a trailing word
// boundary, so "endpoint" scans as keyword_end followed by identifier "point".
func WithLegacyEndPrefix() ScannerOption {
	return func(s *Scanner) {
		s.legacyEndPrefix = true
	}
}

// WithLogger sets the logger used for scan diagnostics
func WithLogger(logger *mdwlog.Logger) ScannerOption {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scanner performs lexical analysis of Smpl input
type Scanner struct {
	input  string // Input string
	offset int    // Cursor as byte offset
	line   int    // Current line number (1-based)
	column int    // Current column number (1-based)

	legacyEndPrefix bool
	rules           []rule
	logger          *mdwlog.Logger
}

// NewScanner creates a new scanner for the given input
func NewScanner(input string, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		input:  input,
		line:   1,
		column: 1,
		logger: mdwlog.GetDefault(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rules = newRules(s.legacyEndPrefix)
	s.logger = s.logger.WithField("component", "smpl-scanner")
	return s
}

// Next returns the next token. ok is false once the input is exhausted.
// After a *LexError the scanner stays at the offending character.
func (s *Scanner) Next() (tok Token, ok bool, err error) {
	s.skipWhitespace()

	if s.offset >= len(s.input) {
		return Token{}, false, nil
	}

	rest := s.input[s.offset:]
	for _, r := range s.rules {
		n := r.match(rest)
		if n == 0 {
			continue
		}
		tok = Token{
			Kind:   r.kind,
			Lexeme: rest[:n],
			Offset: s.offset,
			Line:   s.line,
			Column: s.column,
		}
		s.advance(n)
		return tok, true, nil
	}

	return Token{}, false, &LexError{
		Offset:    s.offset,
		Line:      s.line,
		Column:    s.column,
		Remaining: rest,
	}
}

// Tokenize scans the remaining input into a token slice
func (s *Scanner) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0, 16)
	trace := s.logger.IsLevelEnabled(mdwlog.LevelTrace)
	for {
		tok, ok, err := s.Next()
		if err != nil {
			s.logger.Debug("scan failed", mdwlog.Fields{
				"offset": s.offset,
				"tokens": len(tokens),
				"error":  err.Error(),
			})
			return nil, err
		}
		if !ok {
			break
		}
		if trace {
			s.logger.Trace("token", mdwlog.String("kind", tok.Kind.String()), mdwlog.String("lexeme", tok.Lexeme),
				mdwlog.Int("line", tok.Line), mdwlog.Int("column", tok.Column))
		}
		tokens = append(tokens, tok)
	}

	s.logger.Debug("scan completed", mdwlog.Fields{
		"length": len(s.input),
		"tokens": len(tokens),
	})
	return tokens, nil
}

// Tokenize scans input with the default rules
func Tokenize(input string, opts ...ScannerOption) ([]Token, error) {
	return NewScanner(input, opts...).Tokenize()
}

func (s *Scanner) skipWhitespace() {
	for s.offset < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.offset:])
		if !unicode.IsSpace(r) {
			return
		}
		s.advance(size)
	}
}

// advance moves the cursor n bytes forward, updating line and column
func (s *Scanner) advance(n int) {
	for _, r := range s.input[s.offset : s.offset+n] {
		if r == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
	s.offset += n
}
