// File: nodes.go
// Title: Smpl AST Node Definitions
// Description: Defines the four Smpl AST node types with positions, canonical
//              source rendering and structural validation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions
// - 2026-10-18 v0.2.0: Clone for handing out independent copies

package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NodeKind tags the variant of a Node
type NodeKind int

const (
	KindIntegerLiteral NodeKind = iota
	KindVariableReference
	KindDefinition
	KindCall
)

// String returns the name of the node kind
func (k NodeKind) String() string {
	switch k {
	case KindIntegerLiteral:
		return "IntegerLiteral"
	case KindVariableReference:
		return "VariableReference"
	case KindDefinition:
		return "Definition"
	case KindCall:
		return "Call"
	default:
		return "Unknown"
	}
}

// Node is implemented by the four Smpl node types only
type Node interface {
	// Kind returns the variant tag
	Kind() NodeKind

	// Position returns the source position of the node's first token
	Position() Position

	// String returns the node as canonical Smpl source text
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Validate checks the structural invariants of the node and its children
	Validate() error

	node()
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set by the parser
func (p Position) IsValid() bool {
	return p.Line > 0
}

// IntegerLiteral is an integer constant such as 42
type IntegerLiteral struct {
	Value int64
	Pos   Position
}

// VariableReference is a reference to a name that is not followed by "("
type VariableReference struct {
	Name string
	Pos  Position
}

// Definition is the single top-level form: def Name(Parameters) Body end.
// Parameters may contain duplicates; no semantic checks are applied.
type Definition struct {
	Name       string
	Parameters []string
	Body       Node
	Pos        Position
}

// Call is a call of a named function with zero or more arguments
type Call struct {
	Name      string
	Arguments []Node
	Pos       Position
}

// Errors returned by Validate
var (
	ErrEmptyName     = errors.New("empty name")
	ErrMissingBody   = errors.New("definition has no body")
	ErrNilArgument   = errors.New("call has a nil argument")
	ErrNegativeValue = errors.New("negative integer literal")
)

// IntegerLiteral

func (n *IntegerLiteral) Kind() NodeKind                     { return KindIntegerLiteral }
func (n *IntegerLiteral) Position() Position                 { return n.Pos }
func (n *IntegerLiteral) String() string                     { return strconv.FormatInt(n.Value, 10) }
func (n *IntegerLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitIntegerLiteral(n) }
func (n *IntegerLiteral) node()                              {}

// Validate rejects negative values, which the grammar cannot produce
func (n *IntegerLiteral) Validate() error {
	if n.Value < 0 {
		return fmt.Errorf("integer literal at %s: %w", n.Pos, ErrNegativeValue)
	}
	return nil
}

// VariableReference

func (n *VariableReference) Kind() NodeKind                     { return KindVariableReference }
func (n *VariableReference) Position() Position                 { return n.Pos }
func (n *VariableReference) String() string                     { return n.Name }
func (n *VariableReference) Accept(visitor Visitor) interface{} { return visitor.VisitVariableReference(n) }
func (n *VariableReference) node()                              {}

// Validate checks that the reference has a name
func (n *VariableReference) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("variable reference at %s: %w", n.Pos, ErrEmptyName)
	}
	return nil
}

// Definition

func (n *Definition) Kind() NodeKind                     { return KindDefinition }
func (n *Definition) Position() Position                 { return n.Pos }
func (n *Definition) Accept(visitor Visitor) interface{} { return visitor.VisitDefinition(n) }
func (n *Definition) node()                              {}

// String renders "def name(a, b) body end"
func (n *Definition) String() string {
	body := "<nil>"
	if n.Body != nil {
		body = n.Body.String()
	}
	return fmt.Sprintf("def %s(%s) %s end", n.Name, strings.Join(n.Parameters, ", "), body)
}

// Validate checks name, parameter names and body
func (n *Definition) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("definition at %s: %w", n.Pos, ErrEmptyName)
	}
	for i, param := range n.Parameters {
		if param == "" {
			return fmt.Errorf("definition %s parameter %d: %w", n.Name, i, ErrEmptyName)
		}
	}
	if n.Body == nil {
		return fmt.Errorf("definition %s: %w", n.Name, ErrMissingBody)
	}
	return n.Body.Validate()
}

// Call

func (n *Call) Kind() NodeKind                     { return KindCall }
func (n *Call) Position() Position                 { return n.Pos }
func (n *Call) Accept(visitor Visitor) interface{} { return visitor.VisitCall(n) }
func (n *Call) node()                              {}

// String renders "name(arg, arg)"
func (n *Call) String() string {
	args := make([]string, len(n.Arguments))
	for i, arg := range n.Arguments {
		if arg == nil {
			args[i] = "<nil>"
			continue
		}
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
}

// Validate checks the name and every argument
func (n *Call) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("call at %s: %w", n.Pos, ErrEmptyName)
	}
	for i, arg := range n.Arguments {
		if arg == nil {
			return fmt.Errorf("call %s argument %d: %w", n.Name, i, ErrNilArgument)
		}
		if err := arg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether two trees have the same shape, names and values.
// Positions are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case *IntegerLiteral:
		return x.Value == b.(*IntegerLiteral).Value
	case *VariableReference:
		return x.Name == b.(*VariableReference).Name
	case *Definition:
		y := b.(*Definition)
		if x.Name != y.Name || len(x.Parameters) != len(y.Parameters) {
			return false
		}
		for i := range x.Parameters {
			if x.Parameters[i] != y.Parameters[i] {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	case *Call:
		y := b.(*Call)
		if x.Name != y.Name || len(x.Arguments) != len(y.Arguments) {
			return false
		}
		for i := range x.Arguments {
			if !Equal(x.Arguments[i], y.Arguments[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of node that shares no memory with it. Nil
// children stay nil.
func Clone(node Node) Node {
	switch n := node.(type) {
	case *IntegerLiteral:
		c := *n
		return &c
	case *VariableReference:
		c := *n
		return &c
	case *Definition:
		c := *n
		if n.Parameters != nil {
			c.Parameters = append([]string(nil), n.Parameters...)
		}
		if n.Body != nil {
			c.Body = Clone(n.Body)
		}
		return &c
	case *Call:
		c := *n
		if n.Arguments != nil {
			c.Arguments = make([]Node, len(n.Arguments))
			for i, arg := range n.Arguments {
				if arg != nil {
					c.Arguments[i] = Clone(arg)
				}
			}
		}
		return &c
	default:
		return nil
	}
}
