// File: smpl.go
// Title: Smpl Engine
// Description: Coordinates scanning and parsing of Smpl source, applies the
//              source size limit and classifies failures with structured
//              error codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation

package smpl

import (
	"errors"

	mdwerror "github.com/msto63/smpl/foundation/core/error"
	mdwlog "github.com/msto63/smpl/foundation/core/log"
	mdwast "github.com/msto63/smpl/foundation/smpl/ast"
	mdwparser "github.com/msto63/smpl/foundation/smpl/parser"
)

// DefaultMaxSourceLength is the source size limit applied when
// Options.MaxSourceLength is zero
const DefaultMaxSourceLength = 1 << 20

// Options configures the Smpl engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// LegacyEndPrefix lets "end" match without a trailing word boundary
	LegacyEndPrefix bool

	// MaxSourceLength limits the source size in bytes (default: 1 MiB)
	MaxSourceLength int
}

// Engine scans and parses Smpl source
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a new engine with the specified options
func New(opts Options) (*Engine, error) {
	if opts.MaxSourceLength < 0 {
		return nil, mdwerror.Newf("max source length must not be negative: %d", opts.MaxSourceLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("smpl.New")
	}
	if opts.MaxSourceLength == 0 {
		opts.MaxSourceLength = DefaultMaxSourceLength
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "smpl-engine"),
		options: opts,
	}, nil
}

// Options returns the effective engine options
func (e *Engine) Options() Options {
	return e.options
}

// WithRequestID returns a copy of the engine whose log records carry the
// given request ID
func (e *Engine) WithRequestID(requestID string) *Engine {
	return &Engine{
		logger:  e.logger.WithRequestID(requestID),
		options: e.options,
	}
}

// Tokenize scans source into tokens
func (e *Engine) Tokenize(source string) ([]mdwparser.Token, error) {
	if len(source) > e.options.MaxSourceLength {
		return nil, mdwerror.Newf("source exceeds maximum length: %d > %d", len(source), e.options.MaxSourceLength).
			WithCode(mdwerror.CodeSmplInputSize).
			WithOperation("tokenize").
			WithDetail("length", len(source)).
			WithDetail("max_length", e.options.MaxSourceLength)
	}

	opts := []mdwparser.ScannerOption{mdwparser.WithLogger(e.logger)}
	if e.options.LegacyEndPrefix {
		opts = append(opts, mdwparser.WithLegacyEndPrefix())
	}

	tokens, err := mdwparser.NewScanner(source, opts...).Tokenize()
	if err != nil {
		return nil, classify(err, "tokenize")
	}
	return tokens, nil
}

// Parse parses tokens into a definition
func (e *Engine) Parse(tokens []mdwparser.Token) (*mdwast.Definition, error) {
	def, err := mdwparser.NewParser(tokens, mdwparser.Options{Logger: e.logger}).Parse()
	if err != nil {
		return nil, classify(err, "parse")
	}
	return def, nil
}

// Compile tokenizes and parses source
func (e *Engine) Compile(source string) (*mdwast.Definition, error) {
	_, def, err := e.Analyze(source)
	return def, err
}

// Analyze tokenizes and parses source and returns both stages' output
func (e *Engine) Analyze(source string) ([]mdwparser.Token, *mdwast.Definition, error) {
	timer := e.logger.StartTimer("compile").WithField("length", len(source))

	tokens, err := e.Tokenize(source)
	if err != nil {
		timer.StopWithError(err)
		return nil, nil, err
	}

	def, err := e.Parse(tokens)
	if err != nil {
		timer.StopWithError(err)
		return tokens, nil, err
	}

	timer.WithField("tokens", len(tokens)).WithField("definition", def.Name).Stop()
	return tokens, def, nil
}

// classify wraps scanner and parser errors into structured errors
func classify(err error, operation string) error {
	var (
		lexErr   *mdwparser.LexError
		parseErr *mdwparser.ParseError
		intErr   *mdwparser.IntegerError
	)

	switch {
	case errors.As(err, &lexErr):
		return mdwerror.Wrap(err, "scan failed").
			WithCode(mdwerror.CodeSmplLex).
			WithOperation(operation).
			WithDetails(map[string]interface{}{
				"offset":    lexErr.Offset,
				"line":      lexErr.Line,
				"column":    lexErr.Column,
				"remaining": excerpt(lexErr.Remaining),
			})
	case errors.As(err, &parseErr):
		return mdwerror.Wrap(err, "parse failed").
			WithCode(mdwerror.CodeSmplParse).
			WithOperation(operation).
			WithDetails(map[string]interface{}{
				"offset":   parseErr.Token.Offset,
				"line":     parseErr.Token.Line,
				"column":   parseErr.Token.Column,
				"expected": parseErr.Expected.String(),
				"actual":   parseErr.Actual.String(),
			})
	case errors.As(err, &intErr):
		return mdwerror.Wrap(err, "parse failed").
			WithCode(mdwerror.CodeSmplIntegerRange).
			WithOperation(operation).
			WithDetails(map[string]interface{}{
				"offset":  intErr.Token.Offset,
				"line":    intErr.Token.Line,
				"column":  intErr.Token.Column,
				"literal": intErr.Token.Lexeme,
			})
	default:
		return mdwerror.Wrap(err, operation+" failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation(operation)
	}
}

// excerpt shortens unmatched input for error details
func excerpt(s string) string {
	const maxExcerpt = 32
	runes := []rune(s)
	if len(runes) <= maxExcerpt {
		return s
	}
	return string(runes[:maxExcerpt]) + "..."
}

// Tokenize scans source with a default engine
func Tokenize(source string) ([]mdwparser.Token, error) {
	e, _ := New(Options{})
	return e.Tokenize(source)
}

// Parse parses tokens with a default engine
func Parse(tokens []mdwparser.Token) (*mdwast.Definition, error) {
	e, _ := New(Options{})
	return e.Parse(tokens)
}

// Compile tokenizes and parses source with a default engine
func Compile(source string) (*mdwast.Definition, error) {
	e, _ := New(Options{})
	return e.Compile(source)
}
