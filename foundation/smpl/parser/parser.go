// File: parser.go
// Title: Smpl Recursive Descent Parser
// Description: Converts a token slice into the AST of a single function
//              definition using recursive descent with fixed-offset
//              lookahead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"

	mdwlog "github.com/msto63/smpl/foundation/core/log"
	mdwast "github.com/msto63/smpl/foundation/smpl/ast"
)

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Parser implements recursive descent parsing for Smpl.
//
// Grammar:
//
//	definition := "def" IDENTIFIER param_list expr "end"
//	param_list := "(" [ IDENTIFIER { "," IDENTIFIER } ] ")"
//	expr       := INTEGER | IDENTIFIER "(" arg_list ")" | IDENTIFIER
//	arg_list   := [ expr { "," expr } ]
type Parser struct {
	tokens []Token
	pos    int // Index of the next unconsumed token
	logger *mdwlog.Logger
}

// NewParser creates a parser over tokens. The slice is not modified.
func NewParser(tokens []Token, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Parser{
		tokens: tokens,
		logger: opts.Logger.WithField("component", "smpl-parser"),
	}
}

// Parse parses tokens into a definition with a parser using default options
func Parse(tokens []Token) (*mdwast.Definition, error) {
	return NewParser(tokens, Options{}).Parse()
}

// Parse parses the whole token slice. Every token must belong to the
// definition.
func (p *Parser) Parse() (*mdwast.Definition, error) {
	p.pos = 0

	def, err := p.parseDefinition()
	if err != nil {
		p.logger.Debug("parse failed", mdwlog.Fields{
			"tokens":   len(p.tokens),
			"consumed": p.pos,
			"error":    err.Error(),
		})
		return nil, err
	}

	if p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		err := &ParseError{Expected: KindEOF, Actual: tok.Kind, Token: tok}
		p.logger.Debug("parse failed", mdwlog.Fields{
			"tokens":   len(p.tokens),
			"consumed": p.pos,
			"error":    err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("parse completed", mdwlog.Fields{
		"definition": def.Name,
		"parameters": len(def.Parameters),
		"tokens":     len(p.tokens),
	})
	return def, nil
}

// parseDefinition parses "def" IDENTIFIER param_list expr "end"
func (p *Parser) parseDefinition() (*mdwast.Definition, error) {
	defTok, err := p.consume(KindDef)
	if err != nil {
		return nil, err
	}

	name, err := p.consume(KindIdentifier)
	if err != nil {
		return nil, err
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(KindEnd); err != nil {
		return nil, err
	}

	return &mdwast.Definition{
		Name:       name.Lexeme,
		Parameters: params,
		Body:       body,
		Pos:        position(defTok),
	}, nil
}

// parseParams parses a parenthesized, comma separated identifier list
func (p *Parser) parseParams() ([]string, error) {
	if _, err := p.consume(KindLeftParen); err != nil {
		return nil, err
	}

	params := []string{}
	if p.peek(KindIdentifier, 0) {
		tok, _ := p.consume(KindIdentifier)
		params = append(params, tok.Lexeme)

		for p.peek(KindComma, 0) {
			p.consume(KindComma)
			tok, err := p.consume(KindIdentifier)
			if err != nil {
				return nil, err
			}
			params = append(params, tok.Lexeme)
		}
	}

	if _, err := p.consume(KindRightParen); err != nil {
		return nil, err
	}
	return params, nil
}

// parseExpr parses an integer literal, a call or a variable reference
func (p *Parser) parseExpr() (mdwast.Node, error) {
	switch {
	case p.peek(KindInteger, 0):
		return p.parseInteger()
	case p.peek(KindIdentifier, 0) && p.peek(KindLeftParen, 1):
		return p.parseCall()
	default:
		return p.parseVarRef()
	}
}

func (p *Parser) parseInteger() (mdwast.Node, error) {
	tok, err := p.consume(KindInteger)
	if err != nil {
		return nil, err
	}

	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, &IntegerError{Token: tok, Err: err}
	}
	return &mdwast.IntegerLiteral{Value: value, Pos: position(tok)}, nil
}

func (p *Parser) parseCall() (mdwast.Node, error) {
	name, err := p.consume(KindIdentifier)
	if err != nil {
		return nil, err
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &mdwast.Call{Name: name.Lexeme, Arguments: args, Pos: position(name)}, nil
}

// parseArgs parses a parenthesized, comma separated expression list
func (p *Parser) parseArgs() ([]mdwast.Node, error) {
	if _, err := p.consume(KindLeftParen); err != nil {
		return nil, err
	}

	args := []mdwast.Node{}
	if !p.peek(KindRightParen, 0) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		for p.peek(KindComma, 0) {
			p.consume(KindComma)
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	if _, err := p.consume(KindRightParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseVarRef() (mdwast.Node, error) {
	tok, err := p.consume(KindIdentifier)
	if err != nil {
		return nil, err
	}
	return &mdwast.VariableReference{Name: tok.Lexeme, Pos: position(tok)}, nil
}

// consume removes the next token, which must be of the expected kind
func (p *Parser) consume(expected TokenKind) (Token, error) {
	if p.pos >= len(p.tokens) {
		return Token{}, &ParseError{Expected: expected, Actual: KindEOF, Token: p.eofToken()}
	}

	tok := p.tokens[p.pos]
	if tok.Kind != expected {
		return Token{}, &ParseError{Expected: expected, Actual: tok.Kind, Token: tok}
	}
	p.pos++
	return tok, nil
}

// peek reports whether the token offset positions ahead has the given kind.
// A position past the end never matches.
func (p *Parser) peek(kind TokenKind, offset int) bool {
	i := p.pos + offset
	return i < len(p.tokens) && p.tokens[i].Kind == kind
}

// eofToken returns a KindEOF token positioned just past the last token
func (p *Parser) eofToken() Token {
	if len(p.tokens) == 0 {
		return Token{Kind: KindEOF, Line: 1, Column: 1}
	}
	offset, line, column := p.tokens[len(p.tokens)-1].End()
	return Token{Kind: KindEOF, Offset: offset, Line: line, Column: column}
}

func position(tok Token) mdwast.Position {
	return mdwast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset}
}
