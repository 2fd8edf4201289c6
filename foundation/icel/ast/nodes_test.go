// File: nodes_test.go
// Title: ICEL AST Node Unit Tests
// Description: Unit tests for AST node string representations, position
//              reporting, and structural validation across all node types.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial node test suite

package ast

import (
	"strings"
	"testing"
)

// Helper functions for creating test AST nodes

func createArithmeticExpr() Expr {
	// 2 + 3 * 4
	return &BinaryOp{
		Op:   "+",
		Left: &IntLiteral{Value: 2, Pos: Position{Line: 1, Column: 1}},
		Right: &BinaryOp{
			Op:    "*",
			Left:  &IntLiteral{Value: 3, Pos: Position{Line: 1, Column: 5}},
			Right: &IntLiteral{Value: 4, Pos: Position{Line: 1, Column: 9}},
			Pos:   Position{Line: 1, Column: 7},
		},
		Pos: Position{Line: 1, Column: 3},
	}
}

func createAssignExpr() *Assign {
	// x = 5
	return &Assign{
		Name:  "x",
		Value: &IntLiteral{Value: 5, Pos: Position{Line: 1, Column: 5}},
		Pos:   Position{Line: 1, Column: 1},
	}
}

func createTernaryExpr() *Ternary {
	// x ? 1 : 2
	return &Ternary{
		Cond: &Var{Name: "x", Pos: Position{Line: 1, Column: 1}},
		Then: &IntLiteral{Value: 1, Pos: Position{Line: 1, Column: 5}},
		Else: &IntLiteral{Value: 2, Pos: Position{Line: 1, Column: 9}},
		Pos:  Position{Line: 1, Column: 3},
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "positive literal",
			node: &IntLiteral{Value: 42},
			want: "42",
		},
		{
			name: "negative literal",
			node: &IntLiteral{Value: -7},
			want: "-7",
		},
		{
			name: "variable",
			node: &Var{Name: "counter"},
			want: "counter",
		},
		{
			name: "assignment",
			node: createAssignExpr(),
			want: "(x = 5)",
		},
		{
			name: "nested assignment",
			node: &Assign{
				Name: "x",
				Value: &Assign{
					Name:  "y",
					Value: &IntLiteral{Value: 3},
				},
			},
			want: "(x = (y = 3))",
		},
		{
			name: "ternary",
			node: createTernaryExpr(),
			want: "(x ? 1 : 2)",
		},
		{
			name: "binary precedence shape",
			node: createArithmeticExpr(),
			want: "(2 + (3 * 4))",
		},
		{
			name: "unary negation",
			node: &UnaryOp{Op: "-", Operand: &Var{Name: "x"}},
			want: "(- x)",
		},
		{
			name: "unary absolute value",
			node: &UnaryOp{Op: "@", Operand: &IntLiteral{Value: -3}},
			want: "(@ -3)",
		},
		{
			name: "logical not",
			node: &UnaryOp{Op: "!", Operand: &Var{Name: "flag"}},
			want: "(! flag)",
		},
		{
			name: "comparison",
			node: &BinaryOp{
				Op:    ">=",
				Left:  &Var{Name: "a"},
				Right: &IntLiteral{Value: 10},
			},
			want: "(a >= 10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodePosition(t *testing.T) {
	pos := Position{Line: 2, Column: 7, Offset: 13}

	nodes := []Node{
		&IntLiteral{Value: 1, Pos: pos},
		&Var{Name: "x", Pos: pos},
		&Assign{Name: "x", Value: &IntLiteral{Value: 1}, Pos: pos},
		&Ternary{Cond: &IntLiteral{Value: 1}, Then: &IntLiteral{Value: 1}, Else: &IntLiteral{Value: 1}, Pos: pos},
		&BinaryOp{Op: "+", Left: &IntLiteral{Value: 1}, Right: &IntLiteral{Value: 1}, Pos: pos},
		&UnaryOp{Op: "-", Operand: &IntLiteral{Value: 1}, Pos: pos},
	}

	for _, node := range nodes {
		if got := node.Position(); got != pos {
			t.Errorf("%T.Position() = %+v, want %+v", node, got, pos)
		}
	}
}

func TestNodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid literal",
			node:    &IntLiteral{Value: 42},
			wantErr: false,
		},
		{
			name:    "valid variable",
			node:    &Var{Name: "abc"},
			wantErr: false,
		},
		{
			name:    "empty variable name",
			node:    &Var{Name: ""},
			wantErr: true,
			errMsg:  "variable name is required",
		},
		{
			name:    "variable name with digits",
			node:    &Var{Name: "x1"},
			wantErr: true,
			errMsg:  "run of ASCII letters",
		},
		{
			name:    "valid assignment",
			node:    createAssignExpr(),
			wantErr: false,
		},
		{
			name:    "assignment without target",
			node:    &Assign{Name: "", Value: &IntLiteral{Value: 1}},
			wantErr: true,
			errMsg:  "assignment target is required",
		},
		{
			name:    "assignment without value",
			node:    &Assign{Name: "x"},
			wantErr: true,
			errMsg:  "assignment value is required",
		},
		{
			name:    "assignment with invalid nested value",
			node:    &Assign{Name: "x", Value: &Var{Name: "y2"}},
			wantErr: true,
			errMsg:  "assignment value",
		},
		{
			name:    "valid ternary",
			node:    createTernaryExpr(),
			wantErr: false,
		},
		{
			name:    "ternary missing condition",
			node:    &Ternary{Then: &IntLiteral{Value: 1}, Else: &IntLiteral{Value: 2}},
			wantErr: true,
			errMsg:  "ternary condition is required",
		},
		{
			name:    "ternary missing else-branch",
			node:    &Ternary{Cond: &IntLiteral{Value: 1}, Then: &IntLiteral{Value: 1}},
			wantErr: true,
			errMsg:  "else-branch is required",
		},
		{
			name:    "valid binary operator",
			node:    createArithmeticExpr(),
			wantErr: false,
		},
		{
			name:    "unknown binary operator",
			node:    &BinaryOp{Op: "**", Left: &IntLiteral{Value: 1}, Right: &IntLiteral{Value: 2}},
			wantErr: true,
			errMsg:  "unknown binary operator",
		},
		{
			name:    "binary operator missing right operand",
			node:    &BinaryOp{Op: "+", Left: &IntLiteral{Value: 1}},
			wantErr: true,
			errMsg:  "right operand is required",
		},
		{
			name:    "valid unary operator",
			node:    &UnaryOp{Op: "@", Operand: &IntLiteral{Value: -5}},
			wantErr: false,
		},
		{
			name:    "unknown unary operator",
			node:    &UnaryOp{Op: "~", Operand: &IntLiteral{Value: 1}},
			wantErr: true,
			errMsg:  "unknown unary operator",
		},
		{
			name:    "unary operator missing operand",
			node:    &UnaryOp{Op: "-"},
			wantErr: true,
			errMsg:  "operand is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestIsBinaryOperator(t *testing.T) {
	for _, op := range []string{"|", "&", "==", "!=", "<", "<=", ">", ">=", "+", "-", "*", "/", "%", "^"} {
		if !IsBinaryOperator(op) {
			t.Errorf("IsBinaryOperator(%q) = false, want true", op)
		}
	}
	for _, op := range []string{"", "=", "?", ":", "@", "!", "**", "&&"} {
		if IsBinaryOperator(op) {
			t.Errorf("IsBinaryOperator(%q) = true, want false", op)
		}
	}
}

func TestIsUnaryOperator(t *testing.T) {
	for _, op := range []string{"-", "@", "!"} {
		if !IsUnaryOperator(op) {
			t.Errorf("IsUnaryOperator(%q) = false, want true", op)
		}
	}
	for _, op := range []string{"", "+", "*", "~"} {
		if IsUnaryOperator(op) {
			t.Errorf("IsUnaryOperator(%q) = true, want false", op)
		}
	}
}
