// File: visitor.go
// Title: Smpl AST Visitor Pattern Implementation
// Description: Visitor interface over the four node types plus traversal,
//              validation and collection helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor implementation

package ast

import "fmt"

// Visitor has one method per node type
type Visitor interface {
	VisitIntegerLiteral(n *IntegerLiteral) interface{}
	VisitVariableReference(n *VariableReference) interface{}
	VisitDefinition(n *Definition) interface{}
	VisitCall(n *Call) interface{}
}

// BaseVisitor visits every child and returns nil.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitIntegerLiteral(n *IntegerLiteral) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitVariableReference(n *VariableReference) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitDefinition(n *Definition) interface{} {
	if n.Body != nil {
		n.Body.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitCall(n *Call) interface{} {
	for _, arg := range n.Arguments {
		if arg != nil {
			arg.Accept(bv)
		}
	}
	return nil
}

// Walk traverses the tree in pre-order. If fn returns false the children of
// that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Definition:
		Walk(n.Body, fn)
	case *Call:
		for _, arg := range n.Arguments {
			Walk(arg, fn)
		}
	}
}

// Depth returns the number of nodes on the longest root-to-leaf path
func Depth(node Node) int {
	if node == nil {
		return 0
	}
	switch n := node.(type) {
	case *Definition:
		return 1 + Depth(n.Body)
	case *Call:
		deepest := 0
		for _, arg := range n.Arguments {
			if d := Depth(arg); d > deepest {
				deepest = d
			}
		}
		return 1 + deepest
	default:
		return 1
	}
}

// ValidationVisitor collects every invariant violation in a tree instead of
// stopping at the first one like Node.Validate
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{}
}

// Errors returns the collected violations
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors reports whether any violation was found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

func (vv *ValidationVisitor) addError(err error) {
	if err != nil {
		vv.errors = append(vv.errors, err)
	}
}

func (vv *ValidationVisitor) VisitIntegerLiteral(n *IntegerLiteral) interface{} {
	vv.addError(n.Validate())
	return nil
}

func (vv *ValidationVisitor) VisitVariableReference(n *VariableReference) interface{} {
	vv.addError(n.Validate())
	return nil
}

func (vv *ValidationVisitor) VisitDefinition(n *Definition) interface{} {
	if n.Name == "" {
		vv.addError(fmt.Errorf("definition at %s: %w", n.Pos, ErrEmptyName))
	}
	for i, param := range n.Parameters {
		if param == "" {
			vv.addError(fmt.Errorf("definition %s parameter %d: %w", n.Name, i, ErrEmptyName))
		}
	}
	if n.Body == nil {
		vv.addError(fmt.Errorf("definition %s: %w", n.Name, ErrMissingBody))
		return nil
	}
	n.Body.Accept(vv)
	return nil
}

func (vv *ValidationVisitor) VisitCall(n *Call) interface{} {
	if n.Name == "" {
		vv.addError(fmt.Errorf("call at %s: %w", n.Pos, ErrEmptyName))
	}
	for i, arg := range n.Arguments {
		if arg == nil {
			vv.addError(fmt.Errorf("call %s argument %d: %w", n.Name, i, ErrNilArgument))
			continue
		}
		arg.Accept(vv)
	}
	return nil
}

// ValidateAST returns all invariant violations found in the tree
func ValidateAST(node Node) []error {
	if node == nil {
		return []error{ErrMissingBody}
	}
	vv := NewValidationVisitor()
	node.Accept(vv)
	if !vv.HasErrors() {
		return nil
	}
	return vv.Errors()
}

// CollectorVisitor gathers the names and values used in a tree
type CollectorVisitor struct {
	Definitions []string
	Calls       []string
	References  []string
	Integers    []int64
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{}
}

func (cv *CollectorVisitor) VisitIntegerLiteral(n *IntegerLiteral) interface{} {
	cv.Integers = append(cv.Integers, n.Value)
	return nil
}

func (cv *CollectorVisitor) VisitVariableReference(n *VariableReference) interface{} {
	cv.References = append(cv.References, n.Name)
	return nil
}

func (cv *CollectorVisitor) VisitDefinition(n *Definition) interface{} {
	cv.Definitions = append(cv.Definitions, n.Name)
	if n.Body != nil {
		n.Body.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitCall(n *Call) interface{} {
	cv.Calls = append(cv.Calls, n.Name)
	for _, arg := range n.Arguments {
		if arg != nil {
			arg.Accept(cv)
		}
	}
	return nil
}

// CollectNodes runs a CollectorVisitor over the tree
func CollectNodes(node Node) *CollectorVisitor {
	cv := NewCollectorVisitor()
	if node != nil {
		node.Accept(cv)
	}
	return cv
}
