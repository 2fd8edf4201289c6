// File: doc.go
// Title: ICEL Parser Package Documentation
// Description: Implements the lexical analyzer and parser for ICEL
//              expressions. Converts expression strings into immutable
//              AST representations with structured error reporting.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing capabilities for ICEL
expressions.

This package implements a recursive descent parser that converts expression
strings into Abstract Syntax Tree (AST) representations. It includes:

  • Lexical analyzer (tokenizer) for ICEL syntax
  • Recursive descent parser with one token of lookahead
  • Structured error reporting with position information
  • Support for all ICEL operators and precedence levels

Precedence is encoded in the parser's call chain, from loosest to tightest
binding:

	assignment > ternary > or > and > not > comparison >
	addition > multiplication > unary > power > atoms

Assignment targets are recognized after parsing: an expression that reduces
to a bare variable followed by '=' becomes an assignment. Unrecognized
characters and out-of-range integer literals surface as error tokens and
are rejected with the same diagnostics as any unexpected token.
*/
package parser
