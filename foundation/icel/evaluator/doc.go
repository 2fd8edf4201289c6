// File: doc.go
// Title: ICEL Evaluator Package Documentation
// Description: Package documentation for the tree-walking evaluator that
//              executes ICEL syntax trees against a variable environment.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial evaluator implementation

/*
Package evaluator executes ICEL syntax trees against a variable environment.

The evaluator walks trees produced by the parser package and reduces them
to int64 values. Its semantics:

  • Literals evaluate to their value, variables to their binding (0 when unset)
  • Assignment stores the evaluated right side and returns the stored value
  • Ternary and the logic operators '|' and '&' short-circuit: the operand
    that cannot affect the result is never evaluated
  • '|' returns the left value unchanged when it is nonzero; '&' returns 0
    or the right value; '!' and comparisons return exactly 1 or 0
  • '+', '-', '*', and '^' wrap around in two's complement
  • '/' and '%' use floor semantics; dividing by zero is a runtime failure
  • '^' with a negative exponent is a runtime failure

Failures carry structured codes from the error package, so callers can tell
expected runtime failures (division by zero) apart from internal
inconsistencies that indicate a malformed tree.

The Evaluator itself holds no per-expression state. Variable storage lives
behind the Environment interface, owned by the caller and shared across
evaluations within a session.

Usage:

	eval, _ := evaluator.New(evaluator.Options{})
	tree, _ := parser.ParseExpression("x = 2 + 3")
	value, err := eval.Eval(tree, env)
*/
package evaluator
