// File: lexer_test.go
// Title: ICEL Lexer Unit Tests
// Description: Comprehensive unit tests for the ICEL lexical analyzer.
//              Tests cover tokenization of all ICEL syntax elements,
//              error tokens, position tracking, and edge cases.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial comprehensive test suite

package parser

import (
	"testing"
)

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Simple addition",
			input: "2 + 3",
			expected: []Token{
				{Type: TokenInt, Value: "2", Position: 0, Line: 1, Column: 1},
				{Type: TokenPlus, Value: "+", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "3", Position: 4, Line: 1, Column: 5},
				{Type: TokenEOF, Value: "", Position: 5, Line: 1, Column: 6},
			},
		},
		{
			name:  "Two-character operators",
			input: "a == b != c <= d >= e",
			expected: []Token{
				{Type: TokenIdent, Value: "a", Position: 0, Line: 1, Column: 1},
				{Type: TokenEquals, Value: "==", Position: 2, Line: 1, Column: 3},
				{Type: TokenIdent, Value: "b", Position: 5, Line: 1, Column: 6},
				{Type: TokenNotEquals, Value: "!=", Position: 7, Line: 1, Column: 8},
				{Type: TokenIdent, Value: "c", Position: 10, Line: 1, Column: 11},
				{Type: TokenLessEq, Value: "<=", Position: 12, Line: 1, Column: 13},
				{Type: TokenIdent, Value: "d", Position: 15, Line: 1, Column: 16},
				{Type: TokenGreaterEq, Value: ">=", Position: 17, Line: 1, Column: 18},
				{Type: TokenIdent, Value: "e", Position: 20, Line: 1, Column: 21},
				{Type: TokenEOF, Value: "", Position: 21, Line: 1, Column: 22},
			},
		},
		{
			name:  "Arithmetic operators and parentheses",
			input: "(1+2)*3/4%5^6",
			expected: []Token{
				{Type: TokenLeftParen, Value: "(", Position: 0, Line: 1, Column: 1},
				{Type: TokenInt, Value: "1", Position: 1, Line: 1, Column: 2},
				{Type: TokenPlus, Value: "+", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "2", Position: 3, Line: 1, Column: 4},
				{Type: TokenRightParen, Value: ")", Position: 4, Line: 1, Column: 5},
				{Type: TokenStar, Value: "*", Position: 5, Line: 1, Column: 6},
				{Type: TokenInt, Value: "3", Position: 6, Line: 1, Column: 7},
				{Type: TokenSlash, Value: "/", Position: 7, Line: 1, Column: 8},
				{Type: TokenInt, Value: "4", Position: 8, Line: 1, Column: 9},
				{Type: TokenPercent, Value: "%", Position: 9, Line: 1, Column: 10},
				{Type: TokenInt, Value: "5", Position: 10, Line: 1, Column: 11},
				{Type: TokenCaret, Value: "^", Position: 11, Line: 1, Column: 12},
				{Type: TokenInt, Value: "6", Position: 12, Line: 1, Column: 13},
				{Type: TokenEOF, Value: "", Position: 13, Line: 1, Column: 14},
			},
		},
		{
			name:  "Logic and ternary operators",
			input: "x ? a & b : !c | d",
			expected: []Token{
				{Type: TokenIdent, Value: "x", Position: 0, Line: 1, Column: 1},
				{Type: TokenQuestion, Value: "?", Position: 2, Line: 1, Column: 3},
				{Type: TokenIdent, Value: "a", Position: 4, Line: 1, Column: 5},
				{Type: TokenAmpersand, Value: "&", Position: 6, Line: 1, Column: 7},
				{Type: TokenIdent, Value: "b", Position: 8, Line: 1, Column: 9},
				{Type: TokenColon, Value: ":", Position: 10, Line: 1, Column: 11},
				{Type: TokenBang, Value: "!", Position: 12, Line: 1, Column: 13},
				{Type: TokenIdent, Value: "c", Position: 13, Line: 1, Column: 14},
				{Type: TokenPipe, Value: "|", Position: 15, Line: 1, Column: 16},
				{Type: TokenIdent, Value: "d", Position: 17, Line: 1, Column: 18},
				{Type: TokenEOF, Value: "", Position: 18, Line: 1, Column: 19},
			},
		},
		{
			name:  "Assignment and single-character comparisons",
			input: "x = y < 10 > 2",
			expected: []Token{
				{Type: TokenIdent, Value: "x", Position: 0, Line: 1, Column: 1},
				{Type: TokenAssign, Value: "=", Position: 2, Line: 1, Column: 3},
				{Type: TokenIdent, Value: "y", Position: 4, Line: 1, Column: 5},
				{Type: TokenLess, Value: "<", Position: 6, Line: 1, Column: 7},
				{Type: TokenInt, Value: "10", Position: 8, Line: 1, Column: 9},
				{Type: TokenGreater, Value: ">", Position: 11, Line: 1, Column: 12},
				{Type: TokenInt, Value: "2", Position: 13, Line: 1, Column: 14},
				{Type: TokenEOF, Value: "", Position: 14, Line: 1, Column: 15},
			},
		},
		{
			name:  "Absolute value operator",
			input: "@x",
			expected: []Token{
				{Type: TokenAt, Value: "@", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdent, Value: "x", Position: 1, Line: 1, Column: 2},
				{Type: TokenEOF, Value: "", Position: 2, Line: 1, Column: 3},
			},
		},
		{
			name:  "Multi-letter identifiers",
			input: "count = total",
			expected: []Token{
				{Type: TokenIdent, Value: "count", Position: 0, Line: 1, Column: 1},
				{Type: TokenAssign, Value: "=", Position: 6, Line: 1, Column: 7},
				{Type: TokenIdent, Value: "total", Position: 8, Line: 1, Column: 9},
				{Type: TokenEOF, Value: "", Position: 13, Line: 1, Column: 14},
			},
		},
		{
			name:  "Identifiers are letter runs only",
			input: "count123",
			expected: []Token{
				{Type: TokenIdent, Value: "count", Position: 0, Line: 1, Column: 1},
				{Type: TokenInt, Value: "123", Position: 5, Line: 1, Column: 6},
				{Type: TokenEOF, Value: "", Position: 8, Line: 1, Column: 9},
			},
		},
		{
			name:  "Illegal character",
			input: "2 $ 3",
			expected: []Token{
				{Type: TokenInt, Value: "2", Position: 0, Line: 1, Column: 1},
				{Type: TokenIllegal, Value: "#36", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "3", Position: 4, Line: 1, Column: 5},
				{Type: TokenEOF, Value: "", Position: 5, Line: 1, Column: 6},
			},
		},
		{
			name:  "Multi-byte illegal character",
			input: "2 § 3",
			expected: []Token{
				{Type: TokenInt, Value: "2", Position: 0, Line: 1, Column: 1},
				{Type: TokenIllegal, Value: "#167", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "3", Position: 5, Line: 1, Column: 6},
				{Type: TokenEOF, Value: "", Position: 6, Line: 1, Column: 7},
			},
		},
		{
			name:  "Newline is not whitespace",
			input: "1\n2",
			expected: []Token{
				{Type: TokenInt, Value: "1", Position: 0, Line: 1, Column: 1},
				{Type: TokenIllegal, Value: "#10", Position: 1, Line: 2, Column: 0},
				{Type: TokenInt, Value: "2", Position: 2, Line: 2, Column: 1},
				{Type: TokenEOF, Value: "", Position: 3, Line: 2, Column: 2},
			},
		},
		{
			name:  "Largest int64 literal",
			input: "9223372036854775807",
			expected: []Token{
				{Type: TokenInt, Value: "9223372036854775807", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 19, Line: 1, Column: 20},
			},
		},
		{
			name:  "Integer literal out of range",
			input: "9223372036854775808",
			expected: []Token{
				{Type: TokenIntRange, Value: "9223372036854775808", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 19, Line: 1, Column: 20},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Value: "", Position: 0, Line: 1, Column: 1},
			},
		},
		{
			name:  "Tabs and spaces skipped",
			input: "\t 1 +\t2",
			expected: []Token{
				{Type: TokenInt, Value: "1", Position: 2, Line: 1, Column: 3},
				{Type: TokenPlus, Value: "+", Position: 4, Line: 1, Column: 5},
				{Type: TokenInt, Value: "2", Position: 6, Line: 1, Column: 7},
				{Type: TokenEOF, Value: "", Position: 7, Line: 1, Column: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)

			for i, expected := range tt.expected {
				token := lexer.NextToken()

				if token.Type != expected.Type {
					t.Errorf("Token %d: expected type %s, got %s", i, expected.Type.String(), token.Type.String())
				}

				if token.Value != expected.Value {
					t.Errorf("Token %d: expected value %q, got %q", i, expected.Value, token.Value)
				}

				if token.Position != expected.Position {
					t.Errorf("Token %d: expected position %d, got %d", i, expected.Position, token.Position)
				}

				if token.Line != expected.Line {
					t.Errorf("Token %d: expected line %d, got %d", i, expected.Line, token.Line)
				}

				if token.Column != expected.Column {
					t.Errorf("Token %d: expected column %d, got %d", i, expected.Column, token.Column)
				}
			}
		})
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tokenLen int
	}{
		{
			name:     "Simple expression",
			input:    "2 + 3",
			tokenLen: 4, // 2, +, 3, EOF
		},
		{
			name:     "Assignment",
			input:    "x = 42",
			tokenLen: 4, // x, =, 42, EOF
		},
		{
			name:     "Illegal characters flow through",
			input:    "2 $ 3",
			tokenLen: 4, // 2, #36, 3, EOF
		},
		{
			name:     "Empty string",
			input:    "",
			tokenLen: 1, // EOF
		},
		{
			name:     "Ternary expression",
			input:    "x > 0 ? 1 : 0",
			tokenLen: 8, // x, >, 0, ?, 1, :, 0, EOF
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			tokens := lexer.Tokenize()

			if len(tokens) != tt.tokenLen {
				t.Errorf("Expected %d tokens, got %d", tt.tokenLen, len(tokens))
			}

			if tokens[len(tokens)-1].Type != TokenEOF {
				t.Errorf("Expected final token to be EOF, got %s", tokens[len(tokens)-1].Type.String())
			}
		})
	}
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		tokenType TokenType
		expected  string
	}{
		{TokenEOF, "EOF"},
		{TokenIllegal, "ILLEGAL"},
		{TokenIntRange, "INT_RANGE"},
		{TokenInt, "INT"},
		{TokenIdent, "IDENT"},
		{TokenEquals, "EQUALS"},
		{TokenNotEquals, "NOT_EQUALS"},
		{TokenLessEq, "LESS_EQ"},
		{TokenGreaterEq, "GREATER_EQ"},
		{TokenAssign, "ASSIGN"},
		{TokenLess, "LESS"},
		{TokenGreater, "GREATER"},
		{TokenPlus, "PLUS"},
		{TokenMinus, "MINUS"},
		{TokenStar, "STAR"},
		{TokenSlash, "SLASH"},
		{TokenPercent, "PERCENT"},
		{TokenCaret, "CARET"},
		{TokenPipe, "PIPE"},
		{TokenAmpersand, "AMPERSAND"},
		{TokenBang, "BANG"},
		{TokenAt, "AT"},
		{TokenQuestion, "QUESTION"},
		{TokenColon, "COLON"},
		{TokenLeftParen, "LEFT_PAREN"},
		{TokenRightParen, "RIGHT_PAREN"},
		{TokenType(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.tokenType.String()
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{
			Token{Type: TokenEOF, Value: ""},
			"EOF",
		},
		{
			Token{Type: TokenIllegal, Value: "#36"},
			"ILLEGAL(#36)",
		},
		{
			Token{Type: TokenInt, Value: "42"},
			"INT(42)",
		},
		{
			Token{Type: TokenIdent, Value: "x"},
			"IDENT(x)",
		},
		{
			Token{Type: TokenPlus, Value: "+"},
			"PLUS(+)",
		},
		{
			Token{Type: TokenIntRange, Value: "9223372036854775808"},
			"INT_RANGE(9223372036854775808)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.token.String()
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFitsInt64(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"0", true},
		{"42", true},
		{"9223372036854775807", true},
		{"9223372036854775808", false},
		{"99999999999999999999999999", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := fitsInt64(tt.input)
			if result != tt.expected {
				t.Errorf("fitsInt64(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeInput(t *testing.T) {
	tokens := TokenizeInput("x = 2 + 3")

	if len(tokens) != 6 {
		t.Fatalf("Expected 6 tokens, got %d", len(tokens))
	}

	expectedTypes := []TokenType{TokenIdent, TokenAssign, TokenInt, TokenPlus, TokenInt, TokenEOF}
	for i, want := range expectedTypes {
		if tokens[i].Type != want {
			t.Errorf("Token %d: expected type %s, got %s", i, want.String(), tokens[i].Type.String())
		}
	}
}

// Benchmarks

func BenchmarkLexer_SimpleExpression(b *testing.B) {
	input := "2 + 3 * 4"

	for i := 0; i < b.N; i++ {
		lexer := NewLexer(input)
		for {
			token := lexer.NextToken()
			if token.Type == TokenEOF {
				break
			}
		}
	}
}

func BenchmarkLexer_ComplexExpression(b *testing.B) {
	input := "x = a > 0 & b != 0 ? (a + b) * 2 : @(a - b) ^ 2"

	for i := 0; i < b.N; i++ {
		lexer := NewLexer(input)
		for {
			token := lexer.NextToken()
			if token.Type == TokenEOF {
				break
			}
		}
	}
}

func BenchmarkLexer_LongExpression(b *testing.B) {
	input := "result = alpha * 100 + beta * 10 + gamma % 7 - delta / 3 ^ 2 + epsilon <= threshold ? upper : lower"

	for i := 0; i < b.N; i++ {
		lexer := NewLexer(input)
		for {
			token := lexer.NextToken()
			if token.Type == TokenEOF {
				break
			}
		}
	}
}
