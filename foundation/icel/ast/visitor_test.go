// File: visitor_test.go
// Title: ICEL AST Visitor Pattern Unit Tests
// Description: Unit tests for the AST visitor implementations covering base
//              traversal, indented tree rendering, validation error
//              collection, and the package utility functions.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial visitor test suite

package ast

import (
	"strings"
	"testing"
)

// countingVisitor counts visited nodes by kind via BaseVisitor traversal
type countingVisitor struct {
	BaseVisitor
	literals  int
	variables int
}

func (cv *countingVisitor) VisitIntLiteral(lit *IntLiteral) interface{} {
	cv.literals++
	return cv.BaseVisitor.VisitIntLiteral(lit)
}

func (cv *countingVisitor) VisitVar(v *Var) interface{} {
	cv.variables++
	return cv.BaseVisitor.VisitVar(v)
}

func (cv *countingVisitor) VisitAssign(assign *Assign) interface{} {
	if assign.Value != nil {
		assign.Value.Accept(cv)
	}
	return nil
}

func (cv *countingVisitor) VisitTernary(ternary *Ternary) interface{} {
	ternary.Cond.Accept(cv)
	ternary.Then.Accept(cv)
	ternary.Else.Accept(cv)
	return nil
}

func (cv *countingVisitor) VisitBinaryOp(binary *BinaryOp) interface{} {
	binary.Left.Accept(cv)
	binary.Right.Accept(cv)
	return nil
}

func (cv *countingVisitor) VisitUnaryOp(unary *UnaryOp) interface{} {
	return unary.Operand.Accept(cv)
}

func TestBaseVisitorTraversal(t *testing.T) {
	// x ? y + 1 : -z visits variables x, y, z and literal 1
	tree := &Ternary{
		Cond: &Var{Name: "x"},
		Then: &BinaryOp{
			Op:    "+",
			Left:  &Var{Name: "y"},
			Right: &IntLiteral{Value: 1},
		},
		Else: &UnaryOp{
			Op:      "-",
			Operand: &Var{Name: "z"},
		},
	}

	visitor := &countingVisitor{}
	tree.Accept(visitor)

	if visitor.variables != 3 {
		t.Errorf("visited %d variables, want 3", visitor.variables)
	}
	if visitor.literals != 1 {
		t.Errorf("visited %d literals, want 1", visitor.literals)
	}
}

func TestStringVisitor(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "literal",
			node: &IntLiteral{Value: 42},
			want: "IntLiteral: 42\n",
		},
		{
			name: "variable",
			node: &Var{Name: "x"},
			want: "Var: x\n",
		},
		{
			name: "assignment",
			node: createAssignExpr(),
			want: "Assign: x\n" +
				"  IntLiteral: 5\n",
		},
		{
			name: "binary tree",
			node: createArithmeticExpr(),
			want: "BinaryOp: +\n" +
				"  IntLiteral: 2\n" +
				"  BinaryOp: *\n" +
				"    IntLiteral: 3\n" +
				"    IntLiteral: 4\n",
		},
		{
			name: "ternary sections",
			node: createTernaryExpr(),
			want: "Ternary:\n" +
				"  Cond:\n" +
				"    Var: x\n" +
				"  Then:\n" +
				"    IntLiteral: 1\n" +
				"  Else:\n" +
				"    IntLiteral: 2\n",
		},
		{
			name: "unary operand",
			node: &UnaryOp{Op: "@", Operand: &Var{Name: "n"}},
			want: "UnaryOp: @\n" +
				"  Var: n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor := NewStringVisitor()
			tt.node.Accept(visitor)
			if got := visitor.String(); got != tt.want {
				t.Errorf("StringVisitor output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringVisitorReset(t *testing.T) {
	visitor := NewStringVisitor()

	(&Var{Name: "x"}).Accept(visitor)
	if visitor.String() == "" {
		t.Fatal("expected non-empty output before reset")
	}

	visitor.Reset()
	if visitor.String() != "" {
		t.Errorf("expected empty output after reset, got %q", visitor.String())
	}

	(&IntLiteral{Value: 9}).Accept(visitor)
	if got := visitor.String(); got != "IntLiteral: 9\n" {
		t.Errorf("output after reset = %q, want %q", got, "IntLiteral: 9\n")
	}
}

func TestValidationVisitor(t *testing.T) {
	t.Run("valid tree has no errors", func(t *testing.T) {
		visitor := NewValidationVisitor()
		createArithmeticExpr().Accept(visitor)

		if visitor.HasErrors() {
			t.Errorf("expected no errors, got %v", visitor.Errors())
		}
	})

	t.Run("collects nested errors", func(t *testing.T) {
		// assignment with a digit-bearing variable inside the ternary condition
		tree := &Ternary{
			Cond: &Var{Name: "x9"},
			Then: &IntLiteral{Value: 1},
			Else: &UnaryOp{Op: "~", Operand: &IntLiteral{Value: 2}},
		}

		visitor := NewValidationVisitor()
		tree.Accept(visitor)

		if !visitor.HasErrors() {
			t.Fatal("expected validation errors")
		}
		// ternary itself fails (invalid children), plus the two leaf failures
		if len(visitor.Errors()) < 2 {
			t.Errorf("expected at least 2 errors, got %d: %v", len(visitor.Errors()), visitor.Errors())
		}
	})

	t.Run("reset clears errors", func(t *testing.T) {
		visitor := NewValidationVisitor()
		(&Var{Name: "x1"}).Accept(visitor)

		if !visitor.HasErrors() {
			t.Fatal("expected errors before reset")
		}

		visitor.Reset()
		if visitor.HasErrors() {
			t.Errorf("expected no errors after reset, got %v", visitor.Errors())
		}
	})
}

func TestValidateAST(t *testing.T) {
	if errs := ValidateAST(createTernaryExpr()); len(errs) != 0 {
		t.Errorf("ValidateAST(valid tree) = %v, want no errors", errs)
	}

	errs := ValidateAST(&BinaryOp{Op: "+", Left: &IntLiteral{Value: 1}})
	if len(errs) == 0 {
		t.Fatal("ValidateAST(invalid tree) returned no errors")
	}
	if !strings.Contains(errs[0].Error(), "right operand is required") {
		t.Errorf("ValidateAST error = %q, want substring %q", errs[0].Error(), "right operand is required")
	}
}

func TestASTToString(t *testing.T) {
	got := ASTToString(createAssignExpr())
	want := "Assign: x\n  IntLiteral: 5\n"
	if got != want {
		t.Errorf("ASTToString() = %q, want %q", got, want)
	}
}

// Benchmarks

func BenchmarkASTToString(b *testing.B) {
	tree := createArithmeticExpr()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ASTToString(tree)
	}
}

func BenchmarkNodeString(b *testing.B) {
	tree := createArithmeticExpr()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.String()
	}
}
