// File: doc.go
// Title: ICEL Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes for parsed ICEL
//              expressions together with visitor patterns for tree
//              traversal, rendering, and validation.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for ICEL expressions.

Parsed expressions are represented by one concrete node type per language
construct: IntLiteral, Var, Assign, Ternary, BinaryOp, and UnaryOp. Trees are
immutable after construction and acyclic; nodes own their children, and the
evaluator treats them as read-only.

The AST enables:
  • Structured representation of parsed expressions
  • Tree-walking evaluation without re-parsing
  • Indented tree dumps for debugging and the REPL
  • Structural validation of hand-built trees
*/
package ast
