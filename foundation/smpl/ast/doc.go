// File: doc.go
// Title: Smpl Abstract Syntax Tree Package Documentation
// Description: Defines the AST produced by the Smpl parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree for Smpl programs.

A Smpl program is exactly one function definition. Its tree is built from four
node types, which are the only implementations of Node:

  - IntegerLiteral     a non-negative integer constant
  - VariableReference  a reference to a parameter by name
  - Definition         the top-level "def name(params) body end" form
  - Call               a call "name(args)" whose arguments are nodes

Node is sealed: it has an unexported method, so code outside this package
cannot add variants. Type switches over the four types and the Visitor
interface are therefore exhaustive.
*/
package ast
