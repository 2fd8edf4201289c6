// File: icel.go
// Title: ICEL Main Interface and Engine
// Description: Provides the main ICEL engine interface and high-level API
//              for parsing and evaluating integer expressions. Integrates
//              parser, AST, evaluator, session, and parse-cache components.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial ICEL engine implementation

package icel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	icellog "github.com/coxioxi/icel/foundation/core/log"
	"github.com/coxioxi/icel/foundation/icel/ast"
	"github.com/coxioxi/icel/foundation/icel/evaluator"
	"github.com/coxioxi/icel/foundation/icel/parser"
	"github.com/coxioxi/icel/foundation/icel/session"
	"github.com/coxioxi/icel/foundation/utils/cachex"
	icelstringx "github.com/coxioxi/icel/foundation/utils/stringx"
)

// Engine represents the main ICEL engine that coordinates parsing and
// evaluation against a session environment
type Engine struct {
	parser    *parser.Parser
	evaluator *evaluator.Evaluator
	session   *session.Session
	cache     *cachex.Cache[ast.Expr]
	logger    *icellog.Logger
	options   Options

	// The parser keeps token state between productions; parsing is
	// serialized while evaluation may run concurrently.
	parseMu sync.Mutex
}

// Options configures the ICEL engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *icellog.Logger

	// LogLevel for engine-specific logging (default: LevelInfo)
	LogLevel icellog.Level

	// MaxExpressionLength limits input expression length in bytes (default: 4096)
	MaxExpressionLength int

	// EnableCache enables caching of parse trees keyed by source text.
	// Cached trees are immutable, so sharing them across evaluations is
	// sound.
	EnableCache bool

	// CacheSize bounds the number of cached parse trees (default: 1024)
	CacheSize int

	// CacheTTL sets the lifetime of cached parse trees (default: 10m)
	CacheTTL time.Duration
}

// Result represents the result of an ICEL expression evaluation
type Result struct {
	// Value is the evaluated integer value
	Value int64

	// Source is the original expression text
	Source string

	// Tree is the parsed AST representation
	Tree ast.Expr

	// ExecutionTime is the time taken to evaluate the expression
	ExecutionTime time.Duration

	// Cached indicates the parse tree was served from the cache
	Cached bool
}

// String returns a string representation of the result
func (r *Result) String() string {
	return fmt.Sprintf("%s => %d", r.Source, r.Value)
}

// NewEngine creates a new ICEL engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:              icellog.GetDefault(),
		LogLevel:            icellog.LevelInfo,
		MaxExpressionLength: 4096,
		EnableCache:         true,
		CacheSize:           1024,
		CacheTTL:            10 * time.Minute,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.LogLevel != 0 {
			options.LogLevel = provided.LogLevel
		}
		if provided.MaxExpressionLength > 0 {
			options.MaxExpressionLength = provided.MaxExpressionLength
		}
		if provided.CacheSize > 0 {
			options.CacheSize = provided.CacheSize
		}
		if provided.CacheTTL > 0 {
			options.CacheTTL = provided.CacheTTL
		}
		options.EnableCache = provided.EnableCache
	}

	// Create logger with engine context
	logger := options.Logger.
		WithLevel(options.LogLevel).
		WithField("component", "icel-engine")

	p, err := parser.New(parser.Options{
		Logger:         logger,
		MaxInputLength: options.MaxExpressionLength,
	})
	if err != nil {
		return nil, icelerror.Wrap(err, "failed to initialize expression parser").
			WithCode(icelerror.CodeInternal)
	}

	ev, err := evaluator.New(evaluator.Options{
		Logger: logger,
	})
	if err != nil {
		return nil, icelerror.Wrap(err, "failed to initialize evaluator").
			WithCode(icelerror.CodeInternal)
	}

	sess, err := session.New(session.Options{
		Logger: logger,
	})
	if err != nil {
		return nil, icelerror.Wrap(err, "failed to initialize session").
			WithCode(icelerror.CodeInternal)
	}

	var cache *cachex.Cache[ast.Expr]
	if options.EnableCache {
		cache = cachex.New[ast.Expr](cachex.Config{
			MaxItems: options.CacheSize,
			TTL:      options.CacheTTL,
		})
	}

	engine := &Engine{
		parser:    p,
		evaluator: ev,
		session:   sess,
		cache:     cache,
		logger:    logger,
		options:   options,
	}

	logger.Info("engine initialized", icellog.Fields{
		"maxExpressionLength": options.MaxExpressionLength,
		"cacheEnabled":        options.EnableCache,
		"cacheSize":           options.CacheSize,
		"cacheTTL":            options.CacheTTL,
		"sessionId":           sess.ID(),
	})

	return engine, nil
}

// Evaluate parses and evaluates an ICEL expression against the engine's
// session. Variable assignments made by the expression persist in the
// session.
func (e *Engine) Evaluate(ctx context.Context, source string) (*Result, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithField("requestId", requestID)

	// Create evaluation timer
	timer := logger.StartTimer("expression_evaluation")
	defer timer.Stop()

	logger.Info("evaluating expression", icellog.Fields{
		"source":    logSource(source),
		"sessionId": e.session.ID(),
	})

	if err := ctx.Err(); err != nil {
		wrapped := icelerror.Wrap(err, "evaluation aborted").
			WithCode(icelerror.CodeTimeout).
			WithOperation("evaluate").
			WithRequestID(requestID)
		timer.StopWithError(wrapped)
		return nil, wrapped
	}

	// Validate input
	if err := e.validateInput(source); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Checkpoint("input_validated")

	// Parse expression, preferring the cache
	tree, cached, err := e.parseSource(source)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Checkpoint("expression_parsed", icellog.Fields{
		"cached": cached,
	})

	// Evaluate against the session environment
	value, err := e.evaluator.Eval(tree, e.session)
	if err != nil {
		timer.StopWithError(err)
		logger.Warn("expression evaluation failed", icellog.Fields{
			"source": logSource(source),
			"error":  err.Error(),
		})
		return nil, err
	}

	timer.Checkpoint("expression_evaluated")

	result := &Result{
		Value:         value,
		Source:        source,
		Tree:          tree,
		ExecutionTime: timer.Elapsed(),
		Cached:        cached,
	}

	// Log successful evaluation
	logger.Info("expression evaluated", icellog.Fields{
		"source":    logSource(source),
		"value":     value,
		"duration":  result.ExecutionTime,
		"sessionId": e.session.ID(),
		"cached":    cached,
	})

	return result, nil
}

// Parse parses an ICEL expression without evaluating it
func (e *Engine) Parse(source string) (ast.Expr, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}

	tree, _, err := e.parseSource(source)
	return tree, err
}

// ValidateExpression checks if an expression is syntactically valid
func (e *Engine) ValidateExpression(source string) error {
	_, err := e.Parse(source)
	return err
}

// Session returns the engine's session environment
func (e *Engine) Session() *session.Session {
	return e.session
}

// CacheStats returns parse cache statistics. All values are zero when
// the cache is disabled.
func (e *Engine) CacheStats() (hits, misses int64, hitRate float64) {
	if e.cache == nil {
		return 0, 0, 0
	}
	return e.cache.Stats()
}

// Close releases engine resources. The engine must not be used after
// Close.
func (e *Engine) Close() {
	if e.cache != nil {
		hits, misses, hitRate := e.cache.Stats()
		e.logger.Debug("engine closed", icellog.Fields{
			"cacheHits":    hits,
			"cacheMisses":  misses,
			"cacheHitRate": hitRate,
		})
		e.cache.Close()
	}
}

// parseSource parses an expression, consulting the parse cache when
// enabled. The boolean reports whether the tree came from the cache.
func (e *Engine) parseSource(source string) (ast.Expr, bool, error) {
	if e.cache != nil {
		if tree, ok := e.cache.Get(source); ok {
			return tree, true, nil
		}
	}

	e.parseMu.Lock()
	tree, err := e.parser.Parse(source)
	e.parseMu.Unlock()
	if err != nil {
		return nil, false, err
	}

	if e.cache != nil {
		e.cache.Set(source, tree)
	}

	return tree, false, nil
}

// maxLoggedSourceLength bounds expression text in log fields; full
// expressions can be several kilobytes.
const maxLoggedSourceLength = 120

// logSource shortens expression source for log output
func logSource(source string) string {
	return icelstringx.Truncate(source, maxLoggedSourceLength, "...")
}

// validateInput validates the input expression string
func (e *Engine) validateInput(source string) error {
	if icelstringx.IsBlank(source) {
		return icelerror.New("expression input cannot be empty").
			WithCode(icelerror.CodeInvalidInput).
			WithOperation("evaluate")
	}

	if len(source) > e.options.MaxExpressionLength {
		return icelerror.Newf("expression input exceeds maximum length: %d > %d",
			len(source), e.options.MaxExpressionLength).
			WithCode(icelerror.CodeInvalidLength).
			WithOperation("evaluate").
			WithDetail("length", len(source)).
			WithDetail("maxLength", e.options.MaxExpressionLength)
	}

	return nil
}
