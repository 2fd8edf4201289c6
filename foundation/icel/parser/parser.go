// File: parser.go
// Title: ICEL Recursive-Descent Parser
// Description: Implements parsing of ICEL expressions into abstract syntax
//              trees. Uses recursive descent with one token of lookahead.
//              Precedence is encoded in the call chain from loosest
//              (assignment) to tightest (atoms), and parse failures are
//              reported as structured errors with source positions.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	icellog "github.com/coxioxi/icel/foundation/core/log"
	"github.com/coxioxi/icel/foundation/icel/ast"
)

// Parser implements a recursive descent parser for ICEL expressions
type Parser struct {
	lexer   *Lexer
	current Token
	logger  *icellog.Logger
	options Options
}

// Options contains configuration options for the parser
type Options struct {
	// Logger for parsing operations
	Logger *icellog.Logger

	// MaxInputLength limits input size in bytes (default: 4096)
	MaxInputLength int
}

// New creates a new ICEL parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = icellog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = 4096
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "icel-parser"),
		options: opts,
	}, nil
}

// Parse parses a single ICEL expression and returns its syntax tree.
// The entire input must be consumed; trailing tokens are an error.
func (p *Parser) Parse(input string) (ast.Expr, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, icelerror.Newf("input too long: %d bytes (max %d)",
			len(input), p.options.MaxInputLength).
			WithCode(icelerror.CodeInvalidInput).
			WithOperation("parse")
	}

	p.lexer = NewLexer(input)
	p.advance() // Load first token

	p.logger.Debug("starting expression parsing", icellog.Fields{
		"input":  input,
		"length": len(input),
	})

	expr, err := p.parseAssign()
	if err != nil {
		p.logger.Warn("expression parsing failed", icellog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	// The grammar must account for every token in the input
	if p.current.Type != TokenEOF {
		err := p.parseError("extraneous input", icelerror.CodeParseExtraneousInput)
		p.logger.Warn("expression parsing failed", icellog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("expression parsing completed", icellog.Fields{
		"input": input,
		"tree":  expr.String(),
	})

	return expr, nil
}

// parseAssign parses assignment expressions (lowest precedence).
// Assignment is recognized after the fact: when a parsed value turns out
// to be a bare variable and the next token is '=', the variable becomes
// the assignment target. This makes '(x) = 5' legal and '1 = 2'
// impossible by construction. Assignment is right-associative.
func (p *Parser) parseAssign() (ast.Expr, error) {
	expr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	if v, ok := expr.(*ast.Var); ok && p.current.Type == TokenAssign {
		p.advance() // consume '='

		value, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		return &ast.Assign{
			Name:  v.Name,
			Value: value,
			Pos:   v.Pos,
		}, nil
	}

	return expr, nil
}

// parseTernary parses conditional expressions: cond ? then : else.
// Both branches restart at assignment level, so 'c ? x = 1 : y = 2'
// parses without parentheses.
func (p *Parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenQuestion {
		pos := p.currentPosition()
		p.advance() // consume '?'

		thenExpr, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		if p.current.Type != TokenColon {
			return nil, p.parseError("missing ':' in ternary expression", icelerror.CodeParseSyntax)
		}
		p.advance() // consume ':'

		elseExpr, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		return &ast.Ternary{
			Cond: cond,
			Then: thenExpr,
			Else: elseExpr,
			Pos:  pos,
		}, nil
	}

	return cond, nil
}

// parseOr parses logical OR expressions (right-associative)
func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenPipe {
		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		return &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}, nil
	}

	return left, nil
}

// parseAnd parses logical AND expressions (right-associative)
func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenAmpersand {
		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		return &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}, nil
	}

	return left, nil
}

// parseNot parses logical negation: !operand
func (p *Parser) parseNot() (ast.Expr, error) {
	if p.current.Type == TokenBang {
		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}

		return &ast.UnaryOp{Op: op, Operand: operand, Pos: pos}, nil
	}

	return p.parseCompare()
}

// parseCompare parses comparison expressions (left-associative)
func (p *Parser) parseCompare() (ast.Expr, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenEquals || p.current.Type == TokenNotEquals ||
		p.current.Type == TokenLess || p.current.Type == TokenLessEq ||
		p.current.Type == TokenGreater || p.current.Type == TokenGreaterEq {

		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}
	}

	return left, nil
}

// parseAdd parses addition and subtraction (left-associative)
func (p *Parser) parseAdd() (ast.Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}
	}

	return left, nil
}

// parseMul parses multiplication, division, and modulo (left-associative)
func (p *Parser) parseMul() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenStar || p.current.Type == TokenSlash ||
		p.current.Type == TokenPercent {

		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}
	}

	return left, nil
}

// parseUnary parses arithmetic negation and absolute value: -x, @x.
// Unary operators nest, so '--x' and '-@x' parse naturally.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.current.Type == TokenMinus || p.current.Type == TokenAt {
		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &ast.UnaryOp{Op: op, Operand: operand, Pos: pos}, nil
	}

	return p.parsePow()
}

// parsePow parses exponentiation (right-associative, binds tighter than
// unary operators: '-2^2' is -(2^2))
func (p *Parser) parsePow() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenCaret {
		op := p.current.Value
		pos := p.currentPosition()
		p.advance()

		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}

		return &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}, nil
	}

	return left, nil
}

// parseFactor parses atoms: integer literals, variables, and
// parenthesized expressions
func (p *Parser) parseFactor() (ast.Expr, error) {
	pos := p.currentPosition()

	switch p.current.Type {
	case TokenInt:
		value, err := strconv.ParseInt(p.current.Value, 10, 64)
		if err != nil {
			// The lexer range-checks digit runs, so this indicates an
			// internal inconsistency rather than bad input
			return nil, icelerror.Wrap(err, "invalid integer literal").
				WithCode(icelerror.CodeInternal).
				WithOperation("parse").
				WithDetail("literal", p.current.Value)
		}
		p.advance()
		return &ast.IntLiteral{Value: value, Pos: pos}, nil

	case TokenIdent:
		name := p.current.Value
		p.advance()
		return &ast.Var{Name: name, Pos: pos}, nil

	case TokenLeftParen:
		p.advance() // consume '('

		expr, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		if p.current.Type != TokenRightParen {
			return nil, p.parseError("missing ')'", icelerror.CodeParseSyntax)
		}
		p.advance() // consume ')'

		return expr, nil

	default:
		code := icelerror.CodeParseUnexpectedToken
		switch p.current.Type {
		case TokenIllegal:
			code = icelerror.CodeLexIllegalChar
		case TokenIntRange:
			code = icelerror.CodeLexIntegerRange
		}
		return nil, p.parseError("expected int, variable, or '('", code)
	}
}

// advance moves to the next token
func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

// currentPosition returns the position of the current token
func (p *Parser) currentPosition() ast.Position {
	return ast.Position{
		Line:   p.current.Line,
		Column: p.current.Column,
		Offset: p.current.Position,
	}
}

// parseError creates a structured parse error at the current token
func (p *Parser) parseError(message string, code icelerror.Code) error {
	return icelerror.Newf("%s [next token: %s]", message, p.current).
		WithCode(code).
		WithOperation("parse").
		WithDetail("token", p.current.String()).
		WithDetail("line", p.current.Line).
		WithDetail("column", p.current.Column).
		WithDetail("offset", p.current.Position)
}

// ParseExpression is a convenience function that parses a single
// expression with default options
func ParseExpression(input string) (ast.Expr, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}
