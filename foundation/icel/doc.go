// File: doc.go
// Title: Integer Calculator Expression Language (ICEL) Package Documentation
// Description: Implements the Integer Calculator Expression Language parser,
//              AST, and evaluation engine. ICEL provides C-style integer
//              expressions with variables, assignment, comparisons, logical
//              operators, and a ternary conditional.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial ICEL engine documentation

/*
Package icel implements the Integer Calculator Expression Language parser and
evaluation engine.

Key Features:
  • C-style integer expressions over 64-bit signed integers
  • Variables with assignment as an expression ("x = y = 3")
  • Arithmetic with floor division and floor modulo
  • Right-associative exponentiation ("2 ^ 3 ^ 2" is 512)
  • Comparisons and logical operators yielding integer truth values
  • Ternary conditional with lazy branch evaluation
  • Session environment with persistent variable bindings
  • Parse cache for repeated source lines

# ICEL Language Overview

ICEL is a small expression language for interactive integer calculation.
Every expression evaluates to an int64; there are no other value types.
Zero is false, any other value is true.

## Operators

From loosest to tightest binding:

	x = e          assignment (right-associative, itself an expression)
	c ? a : b      ternary conditional (only one branch evaluates)
	a | b          logical or (returns the first nonzero operand's value)
	a & b          logical and (returns 0 or the right operand's value)
	!a             logical not (returns 1 or 0)
	== != < > <= >=  comparisons (return 1 or 0)
	+ -            addition, subtraction
	* / %          multiplication, floor division, floor modulo
	- @            unary minus, absolute value
	^              exponentiation (right-associative)

Parentheses group as usual. Integer literals are non-negative digit runs;
negative numbers are written with unary minus. Variables are runs of ASCII
letters and default to 0 when unset.

## Semantics Notes

Arithmetic wraps in two's complement. Division and modulo round toward
negative infinity, so "(-7) / 2" is -4 and "7 % (-2)" is -1, keeping the
identity a == (a/b)*b + a%b. Division or modulo by zero and negative
exponents are runtime errors. Operands evaluate left to right and
eagerly, so assignments inside an expression take effect even when a
later operand fails.

# Basic Usage

Initialize and use the ICEL engine:

	import "github.com/coxioxi/icel/foundation/icel"

	// Create ICEL engine
	engine, err := icel.NewEngine(icel.Options{
		LogLevel: log.LevelInfo,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	// Evaluate expressions; assignments persist in the session
	result, err := engine.Evaluate(context.Background(), "x = 2 + 3")
	if err != nil {
		return err
	}
	fmt.Println(result.Value) // 5

	result, _ = engine.Evaluate(context.Background(), "x * 2")
	fmt.Println(result.Value) // 10

## Error Handling

Engine errors are structured and carry codes, so drivers can distinguish
parse failures from runtime failures:

	result, err := engine.Evaluate(ctx, "1 / 0")
	if err != nil {
		switch {
		case icelerror.IsParseError(err):
			fmt.Println("parse error:", err)
		case icelerror.IsEvalError(err):
			fmt.Println("runtime error:", err)
		default:
			fmt.Println("error:", err)
		}
	}

# Architecture Components

The engine follows a classic pipeline:

	Input String → Lexer → Tokens → Parser → AST → Evaluator → int64

## Lexer and Parser (foundation/icel/parser)

The lexer produces tokens lazily; illegal characters and out-of-range
integer literals become dedicated token kinds that surface as parse
errors with position information. The parser is a one-token-lookahead
recursive descent over the precedence chain above.

## AST (foundation/icel/ast)

Immutable expression trees with a tagged node per form (IntLiteral, Var,
Assign, UnaryOp, BinaryOp, Ternary), a String method that renders fully
parenthesized source, and a visitor for tree walks.

## Evaluator (foundation/icel/evaluator)

A stateless tree walker over an Environment interface. All mutable state
lives in the environment, so one evaluator can serve many sessions
concurrently.

## Session (foundation/icel/session)

The mutable variable environment. Each session has a UUID identity and
guards its bindings with a read-write mutex.

## Parse Cache (foundation/utils/cachex)

The engine caches parse trees by source text with a TTL. Trees are
immutable, so cached trees are shared safely across evaluations; they
always re-evaluate against the current session state.

# Performance Characteristics

ICEL is optimized for interactive use:

  • Lexing and parsing: microseconds per expression
  • Evaluation: nanoseconds to microseconds per tree
  • Cached re-evaluation skips lexing and parsing entirely

For usage examples see the package tests and the icel command-line tool
under cmd/icel.
*/
package icel
