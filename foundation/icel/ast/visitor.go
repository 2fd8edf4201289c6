// File: visitor.go
// Title: ICEL AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing ICEL expression
//              trees. Provides a base visitor for child traversal, a string
//              visitor producing indented tree dumps, and a validation
//              visitor collecting structural errors.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitIntLiteral(lit *IntLiteral) interface{}
	VisitVar(v *Var) interface{}
	VisitAssign(assign *Assign) interface{}
	VisitTernary(ternary *Ternary) interface{}
	VisitBinaryOp(binary *BinaryOp) interface{}
	VisitUnaryOp(unary *UnaryOp) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitIntLiteral(lit *IntLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitVar(v *Var) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitAssign(assign *Assign) interface{} {
	if assign.Value != nil {
		return assign.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitTernary(ternary *Ternary) interface{} {
	if ternary.Cond != nil {
		ternary.Cond.Accept(bv)
	}
	if ternary.Then != nil {
		ternary.Then.Accept(bv)
	}
	if ternary.Else != nil {
		ternary.Else.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryOp(binary *BinaryOp) interface{} {
	if binary.Left != nil {
		binary.Left.Accept(bv)
	}
	if binary.Right != nil {
		binary.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitUnaryOp(unary *UnaryOp) interface{} {
	if unary.Operand != nil {
		return unary.Operand.Accept(bv)
	}
	return nil
}

// StringVisitor renders an AST as an indented tree, one node per line.
// Used by the ast debug command and the REPL AST display.
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built tree representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) writeIndent() {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
}

func (sv *StringVisitor) writeLine(format string, args ...interface{}) {
	sv.writeIndent()
	sv.buffer.WriteString(fmt.Sprintf(format, args...))
	sv.buffer.WriteString("\n")
}

func (sv *StringVisitor) VisitIntLiteral(lit *IntLiteral) interface{} {
	sv.writeLine("IntLiteral: %d", lit.Value)
	return nil
}

func (sv *StringVisitor) VisitVar(v *Var) interface{} {
	sv.writeLine("Var: %s", v.Name)
	return nil
}

func (sv *StringVisitor) VisitAssign(assign *Assign) interface{} {
	sv.writeLine("Assign: %s", assign.Name)
	sv.indent++
	if assign.Value != nil {
		assign.Value.Accept(sv)
	}
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitTernary(ternary *Ternary) interface{} {
	sv.writeLine("Ternary:")
	sv.indent++

	sv.writeLine("Cond:")
	sv.indent++
	if ternary.Cond != nil {
		ternary.Cond.Accept(sv)
	}
	sv.indent--

	sv.writeLine("Then:")
	sv.indent++
	if ternary.Then != nil {
		ternary.Then.Accept(sv)
	}
	sv.indent--

	sv.writeLine("Else:")
	sv.indent++
	if ternary.Else != nil {
		ternary.Else.Accept(sv)
	}
	sv.indent--

	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitBinaryOp(binary *BinaryOp) interface{} {
	sv.writeLine("BinaryOp: %s", binary.Op)
	sv.indent++
	if binary.Left != nil {
		binary.Left.Accept(sv)
	}
	if binary.Right != nil {
		binary.Right.Accept(sv)
	}
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitUnaryOp(unary *UnaryOp) interface{} {
	sv.writeLine("UnaryOp: %s", unary.Op)
	sv.indent++
	if unary.Operand != nil {
		unary.Operand.Accept(sv)
	}
	sv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitIntLiteral(lit *IntLiteral) interface{} {
	if err := lit.Validate(); err != nil {
		vv.addError(fmt.Errorf("integer literal validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitIntLiteral(lit)
}

func (vv *ValidationVisitor) VisitVar(v *Var) interface{} {
	if err := v.Validate(); err != nil {
		vv.addError(fmt.Errorf("variable validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitVar(v)
}

func (vv *ValidationVisitor) VisitAssign(assign *Assign) interface{} {
	if err := assign.Validate(); err != nil {
		vv.addError(fmt.Errorf("assignment validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitAssign(assign)
}

func (vv *ValidationVisitor) VisitTernary(ternary *Ternary) interface{} {
	if err := ternary.Validate(); err != nil {
		vv.addError(fmt.Errorf("ternary validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitTernary(ternary)
}

func (vv *ValidationVisitor) VisitBinaryOp(binary *BinaryOp) interface{} {
	if err := binary.Validate(); err != nil {
		vv.addError(fmt.Errorf("binary operator validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitBinaryOp(binary)
}

func (vv *ValidationVisitor) VisitUnaryOp(unary *UnaryOp) interface{} {
	if err := unary.Validate(); err != nil {
		vv.addError(fmt.Errorf("unary operator validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitUnaryOp(unary)
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString converts an AST node to an indented tree representation
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}
