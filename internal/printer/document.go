// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     printer
// Description: Serializable documents for JSON and YAML output
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package printer

import (
	mdwast "github.com/msto63/smpl/foundation/smpl/ast"
)

type positionDoc struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset" yaml:"offset"`
}

type integerDoc struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Value    int64        `json:"value" yaml:"value"`
	Position *positionDoc `json:"position,omitempty" yaml:"position,omitempty"`
}

type referenceDoc struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Name     string       `json:"name" yaml:"name"`
	Position *positionDoc `json:"position,omitempty" yaml:"position,omitempty"`
}

type definitionDoc struct {
	Kind       string       `json:"kind" yaml:"kind"`
	Name       string       `json:"name" yaml:"name"`
	Parameters []string     `json:"parameters" yaml:"parameters"`
	Body       interface{}  `json:"body" yaml:"body"`
	Position   *positionDoc `json:"position,omitempty" yaml:"position,omitempty"`
}

type callDoc struct {
	Kind      string        `json:"kind" yaml:"kind"`
	Name      string        `json:"name" yaml:"name"`
	Arguments []interface{} `json:"arguments" yaml:"arguments"`
	Position  *positionDoc  `json:"position,omitempty" yaml:"position,omitempty"`
}

// docVisitor converts nodes into documents
type docVisitor struct {
	positions bool
}

func (v *docVisitor) position(n mdwast.Node) *positionDoc {
	if !v.positions {
		return nil
	}
	pos := n.Position()
	return &positionDoc{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

func (v *docVisitor) VisitIntegerLiteral(n *mdwast.IntegerLiteral) interface{} {
	return integerDoc{Kind: n.Kind().String(), Value: n.Value, Position: v.position(n)}
}

func (v *docVisitor) VisitVariableReference(n *mdwast.VariableReference) interface{} {
	return referenceDoc{Kind: n.Kind().String(), Name: n.Name, Position: v.position(n)}
}

func (v *docVisitor) VisitDefinition(n *mdwast.Definition) interface{} {
	params := n.Parameters
	if params == nil {
		params = []string{}
	}
	var body interface{}
	if n.Body != nil {
		body = n.Body.Accept(v)
	}
	return definitionDoc{
		Kind:       n.Kind().String(),
		Name:       n.Name,
		Parameters: params,
		Body:       body,
		Position:   v.position(n),
	}
}

func (v *docVisitor) VisitCall(n *mdwast.Call) interface{} {
	args := make([]interface{}, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		if arg == nil {
			args = append(args, nil)
			continue
		}
		args = append(args, arg.Accept(v))
	}
	return callDoc{
		Kind:      n.Kind().String(),
		Name:      n.Name,
		Arguments: args,
		Position:  v.position(n),
	}
}
