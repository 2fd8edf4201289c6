// File: evaluator.go
// Title: ICEL Tree-Walking Evaluator
// Description: Implements evaluation of ICEL syntax trees against a
//              variable environment. Operands evaluate post-order, left
//              before right, with short-circuit semantics for logic and
//              ternary operators. Arithmetic is 64-bit two's complement
//              with floor division and modulo.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial evaluator implementation

package evaluator

import (
	icelerror "github.com/coxioxi/icel/foundation/core/error"
	icellog "github.com/coxioxi/icel/foundation/core/log"
	"github.com/coxioxi/icel/foundation/icel/ast"
	"github.com/coxioxi/icel/foundation/utils/mathx"
)

// Environment provides variable storage for evaluation. Get returns 0
// for names that have never been set; reads never fail. Set binds or
// rebinds a name. The environment is owned by the caller and outlives
// any single evaluation.
type Environment interface {
	Get(name string) int64
	Set(name string, value int64)
}

// Evaluator walks ICEL syntax trees and produces integer results.
// It holds no per-expression state, so a single instance is safe for
// concurrent use as long as each call gets its own Environment.
type Evaluator struct {
	logger  *icellog.Logger
	options Options
}

// Options contains configuration options for the evaluator
type Options struct {
	// Logger for evaluation diagnostics
	Logger *icellog.Logger
}

// New creates a new ICEL evaluator with the given options
func New(opts Options) (*Evaluator, error) {
	if opts.Logger == nil {
		opts.Logger = icellog.GetDefault()
	}

	return &Evaluator{
		logger:  opts.Logger.WithField("component", "icel-evaluator"),
		options: opts,
	}, nil
}

// Eval evaluates a syntax tree against the environment and returns the
// resulting integer. Evaluation is eager left-to-right: assignments
// committed before a later failure stay committed.
func (e *Evaluator) Eval(node ast.Expr, env Environment) (int64, error) {
	if node == nil {
		return 0, icelerror.New("cannot evaluate empty expression").
			WithCode(icelerror.CodeEvalInternal).
			WithOperation("evaluate")
	}

	switch n := node.(type) {
	case *ast.IntLiteral:
		return n.Value, nil

	case *ast.Var:
		return env.Get(n.Name), nil

	case *ast.Assign:
		value, err := e.Eval(n.Value, env)
		if err != nil {
			return 0, err
		}
		env.Set(n.Name, value)
		return value, nil

	case *ast.Ternary:
		cond, err := e.Eval(n.Cond, env)
		if err != nil {
			return 0, err
		}
		// Only the taken branch is evaluated
		if cond != 0 {
			return e.Eval(n.Then, env)
		}
		return e.Eval(n.Else, env)

	case *ast.BinaryOp:
		return e.evalBinary(n, env)

	case *ast.UnaryOp:
		return e.evalUnary(n, env)

	default:
		return 0, e.internalError("unsupported node kind", node)
	}
}

// evalBinary evaluates binary operations. Logic operators short-circuit;
// everything else evaluates both operands, left first.
func (e *Evaluator) evalBinary(n *ast.BinaryOp, env Environment) (int64, error) {
	switch n.Op {
	case "|":
		left, err := e.Eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		// A nonzero left side is returned as-is, not normalized to 1
		if left != 0 {
			return left, nil
		}
		return e.Eval(n.Right, env)

	case "&":
		left, err := e.Eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		if left == 0 {
			return 0, nil
		}
		return e.Eval(n.Right, env)
	}

	left, err := e.Eval(n.Left, env)
	if err != nil {
		return 0, err
	}
	right, err := e.Eval(n.Right, env)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, e.runtimeError("division by zero", icelerror.CodeEvalDivisionByZero, n)
		}
		return mathx.FloorDiv(left, right), nil
	case "%":
		if right == 0 {
			return 0, e.runtimeError("modulo by zero", icelerror.CodeEvalDivisionByZero, n)
		}
		return mathx.FloorMod(left, right), nil
	case "^":
		if right < 0 {
			return 0, e.runtimeError("negative exponent", icelerror.CodeEvalNegativeExponent, n)
		}
		return mathx.Pow(left, right), nil
	case "==":
		return boolToInt(left == right), nil
	case "!=":
		return boolToInt(left != right), nil
	case "<":
		return boolToInt(left < right), nil
	case "<=":
		return boolToInt(left <= right), nil
	case ">":
		return boolToInt(left > right), nil
	case ">=":
		return boolToInt(left >= right), nil
	default:
		return 0, e.internalError("unknown binary operator", n)
	}
}

// evalUnary evaluates prefix operations
func (e *Evaluator) evalUnary(n *ast.UnaryOp, env Environment) (int64, error) {
	operand, err := e.Eval(n.Operand, env)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case "-":
		return -operand, nil
	case "@":
		return mathx.Abs(operand), nil
	case "!":
		return boolToInt(operand == 0), nil
	default:
		return 0, e.internalError("unknown unary operator", n)
	}
}

// runtimeError creates a structured evaluation failure at the given node
func (e *Evaluator) runtimeError(message string, code icelerror.Code, node ast.Node) error {
	pos := node.Position()
	return icelerror.New(message).
		WithCode(code).
		WithOperation("evaluate").
		WithDetail("line", pos.Line).
		WithDetail("column", pos.Column).
		WithDetail("expression", node.String())
}

// internalError reports an inconsistency between parser output and the
// evaluator. These are unreachable through the public parser and must
// surface loudly rather than default silently.
func (e *Evaluator) internalError(message string, node ast.Node) error {
	err := icelerror.Newf("%s: %s", message, node.String()).
		WithCode(icelerror.CodeEvalInternal).
		WithOperation("evaluate").
		WithDetail("expression", node.String())

	e.logger.ErrorWithErr("evaluator internal inconsistency", err)

	return err
}

// boolToInt converts a comparison result to ICEL truth values
func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
