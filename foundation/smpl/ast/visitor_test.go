// File: visitor_test.go
// Title: Smpl AST Visitor Tests
// Description: Tests for the base, validation and collector visitors and the
//              Walk and Depth helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// kindCounter counts visited nodes per kind
type kindCounter struct {
	counts map[NodeKind]int
}

func (kc *kindCounter) VisitIntegerLiteral(n *IntegerLiteral) interface{} {
	kc.counts[KindIntegerLiteral]++
	return nil
}

func (kc *kindCounter) VisitVariableReference(n *VariableReference) interface{} {
	kc.counts[KindVariableReference]++
	return nil
}

func (kc *kindCounter) VisitDefinition(n *Definition) interface{} {
	kc.counts[KindDefinition]++
	return n.Body.Accept(kc)
}

func (kc *kindCounter) VisitCall(n *Call) interface{} {
	kc.counts[KindCall]++
	for _, arg := range n.Arguments {
		arg.Accept(kc)
	}
	return nil
}

func nestedDefinition() *Definition {
	// def f(x) g(h(x, 1), 2) end
	return &Definition{
		Name:       "f",
		Parameters: []string{"x"},
		Body: &Call{Name: "g", Arguments: []Node{
			&Call{Name: "h", Arguments: []Node{
				&VariableReference{Name: "x"},
				&IntegerLiteral{Value: 1},
			}},
			&IntegerLiteral{Value: 2},
		}},
	}
}

func TestVisitor_Exhaustive(t *testing.T) {
	kc := &kindCounter{counts: map[NodeKind]int{}}
	nestedDefinition().Accept(kc)

	assert.Equal(t, map[NodeKind]int{
		KindDefinition:        1,
		KindCall:              2,
		KindVariableReference: 1,
		KindIntegerLiteral:    2,
	}, kc.counts)
}

func TestBaseVisitor_Traverses(t *testing.T) {
	bv := &BaseVisitor{}
	assert.Nil(t, nestedDefinition().Accept(bv))
	assert.Nil(t, (&Definition{Name: "f"}).Accept(bv))
}

func TestWalk(t *testing.T) {
	var order []string
	Walk(nestedDefinition(), func(n Node) bool {
		order = append(order, n.Kind().String()+":"+n.String())
		return true
	})
	assert.Equal(t, []string{
		"Definition:def f(x) g(h(x, 1), 2) end",
		"Call:g(h(x, 1), 2)",
		"Call:h(x, 1)",
		"VariableReference:x",
		"IntegerLiteral:1",
		"IntegerLiteral:2",
	}, order)
}

func TestWalk_SkipChildren(t *testing.T) {
	visited := 0
	Walk(nestedDefinition(), func(n Node) bool {
		visited++
		_, isCall := n.(*Call)
		return !isCall
	})
	// Definition and the outer call only
	assert.Equal(t, 2, visited)

	Walk(nil, func(Node) bool {
		t.Fatal("fn must not be called for a nil tree")
		return false
	})
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth(nil))
	assert.Equal(t, 1, Depth(&IntegerLiteral{}))
	assert.Equal(t, 2, Depth(&Definition{Name: "one", Body: &IntegerLiteral{Value: 1}}))
	assert.Equal(t, 4, Depth(nestedDefinition()))
}

func TestValidateAST_CollectsAll(t *testing.T) {
	broken := &Definition{
		Parameters: []string{""},
		Body: &Call{Arguments: []Node{
			nil,
			&VariableReference{},
		}},
	}
	errs := ValidateAST(broken)
	// empty definition name, empty parameter, empty call name, nil argument, empty reference
	assert.Len(t, errs, 5)

	assert.Empty(t, ValidateAST(nestedDefinition()))
	assert.Equal(t, []error{ErrMissingBody}, ValidateAST(nil))

	vv := NewValidationVisitor()
	(&Definition{Name: "f"}).Accept(vv)
	assert.True(t, vv.HasErrors())
}

func TestCollectNodes(t *testing.T) {
	cv := CollectNodes(nestedDefinition())
	assert.Equal(t, []string{"f"}, cv.Definitions)
	assert.Equal(t, []string{"g", "h"}, cv.Calls)
	assert.Equal(t, []string{"x"}, cv.References)
	assert.Equal(t, []int64{1, 2}, cv.Integers)

	empty := CollectNodes(nil)
	assert.Empty(t, empty.Calls)
}
