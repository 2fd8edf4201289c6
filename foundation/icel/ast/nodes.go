// File: nodes.go
// Title: ICEL AST Node Definitions
// Description: Defines the AST node types for parsed ICEL expressions:
//              integer literals, variable references, assignments, ternary
//              conditionals, and unary/binary operator applications.
//              Provides string representations and validation methods.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"

	icelstringx "github.com/coxioxi/icel/foundation/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact parenthesized representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic structural validation of the node
	Validate() error
}

// Position represents a position in the source expression
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Expr represents the base interface for all expressions.
// Trees are immutable after construction; the evaluator only reads them.
type Expr interface {
	Node
	exprNode() // marker method
}

// Operator symbol sets accepted by Validate. The parser only ever
// constructs nodes with these operators; Validate guards hand-built trees.
var binaryOperators = map[string]bool{
	"|": true, "&": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"+": true, "-": true, "*": true, "/": true, "%": true, "^": true,
}

var unaryOperators = map[string]bool{
	"-": true, "@": true, "!": true,
}

// IsBinaryOperator reports whether op is a valid binary operator symbol
func IsBinaryOperator(op string) bool {
	return binaryOperators[op]
}

// IsUnaryOperator reports whether op is a valid prefix operator symbol
func IsUnaryOperator(op string) bool {
	return unaryOperators[op]
}

// Node types

// IntLiteral represents a decimal integer literal
type IntLiteral struct {
	Value int64    // Literal value
	Pos   Position // Source position
}

// Var represents a variable reference
type Var struct {
	Name string   // Variable name (run of ASCII letters)
	Pos  Position // Source position
}

// Assign represents an assignment expression (name = value)
type Assign struct {
	Name  string   // Target variable name
	Value Expr     // Assigned expression
	Pos   Position // Source position
}

// Ternary represents a conditional expression (cond ? then : else)
type Ternary struct {
	Cond Expr     // Condition expression
	Then Expr     // Result when condition is nonzero
	Else Expr     // Result when condition is zero
	Pos  Position // Source position
}

// BinaryOp represents a binary operator application
type BinaryOp struct {
	Op    string   // Operator symbol (| & == != < <= > >= + - * / % ^)
	Left  Expr     // Left operand
	Right Expr     // Right operand
	Pos   Position // Source position
}

// UnaryOp represents a prefix operator application
type UnaryOp struct {
	Op      string   // Operator symbol (- @ !)
	Operand Expr     // Operand expression
	Pos     Position // Source position
}

// Implementation of Expr interface for IntLiteral

func (l *IntLiteral) String() string {
	return strconv.FormatInt(l.Value, 10)
}

func (l *IntLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitIntLiteral(l)
}

func (l *IntLiteral) Position() Position {
	return l.Pos
}

func (l *IntLiteral) Validate() error {
	return nil // any int64 is a valid literal
}

func (l *IntLiteral) exprNode() {}

// Implementation of Expr interface for Var

func (v *Var) String() string {
	return v.Name
}

func (v *Var) Accept(visitor Visitor) interface{} {
	return visitor.VisitVar(v)
}

func (v *Var) Position() Position {
	return v.Pos
}

func (v *Var) Validate() error {
	if icelstringx.IsBlank(v.Name) {
		return fmt.Errorf("variable name is required")
	}
	if !icelstringx.IsAlpha(v.Name) {
		return fmt.Errorf("variable name must be a run of ASCII letters: %q", v.Name)
	}
	return nil
}

func (v *Var) exprNode() {}

// Implementation of Expr interface for Assign

func (a *Assign) String() string {
	return fmt.Sprintf("(%s = %s)", a.Name, a.Value.String())
}

func (a *Assign) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssign(a)
}

func (a *Assign) Position() Position {
	return a.Pos
}

func (a *Assign) Validate() error {
	if icelstringx.IsBlank(a.Name) {
		return fmt.Errorf("assignment target is required")
	}
	if !icelstringx.IsAlpha(a.Name) {
		return fmt.Errorf("assignment target must be a run of ASCII letters: %q", a.Name)
	}
	if a.Value == nil {
		return fmt.Errorf("assignment value is required")
	}
	if err := a.Value.Validate(); err != nil {
		return fmt.Errorf("assignment value: %w", err)
	}
	return nil
}

func (a *Assign) exprNode() {}

// Implementation of Expr interface for Ternary

func (t *Ternary) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", t.Cond.String(), t.Then.String(), t.Else.String())
}

func (t *Ternary) Accept(visitor Visitor) interface{} {
	return visitor.VisitTernary(t)
}

func (t *Ternary) Position() Position {
	return t.Pos
}

func (t *Ternary) Validate() error {
	if t.Cond == nil {
		return fmt.Errorf("ternary condition is required")
	}
	if t.Then == nil {
		return fmt.Errorf("ternary then-branch is required")
	}
	if t.Else == nil {
		return fmt.Errorf("ternary else-branch is required")
	}
	if err := t.Cond.Validate(); err != nil {
		return fmt.Errorf("ternary condition: %w", err)
	}
	if err := t.Then.Validate(); err != nil {
		return fmt.Errorf("ternary then-branch: %w", err)
	}
	if err := t.Else.Validate(); err != nil {
		return fmt.Errorf("ternary else-branch: %w", err)
	}
	return nil
}

func (t *Ternary) exprNode() {}

// Implementation of Expr interface for BinaryOp

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (b *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(b)
}

func (b *BinaryOp) Position() Position {
	return b.Pos
}

func (b *BinaryOp) Validate() error {
	if !IsBinaryOperator(b.Op) {
		return fmt.Errorf("unknown binary operator: %q", b.Op)
	}
	if b.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if b.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

func (b *BinaryOp) exprNode() {}

// Implementation of Expr interface for UnaryOp

func (u *UnaryOp) String() string {
	return fmt.Sprintf("(%s %s)", u.Op, u.Operand.String())
}

func (u *UnaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryOp(u)
}

func (u *UnaryOp) Position() Position {
	return u.Pos
}

func (u *UnaryOp) Validate() error {
	if !IsUnaryOperator(u.Op) {
		return fmt.Errorf("unknown unary operator: %q", u.Op)
	}
	if u.Operand == nil {
		return fmt.Errorf("operand is required")
	}
	if err := u.Operand.Validate(); err != nil {
		return fmt.Errorf("operand: %w", err)
	}
	return nil
}

func (u *UnaryOp) exprNode() {}
