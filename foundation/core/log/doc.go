// Package log provides structured logging for the ICEL toolkit.
//
// Package: log
// Title: ICEL Structured Logging
// Description: Implements an immutable structured logger with leveled
//              filtering, text and JSON output, and operation timers used
//              to instrument the parser and evaluator. Integrates with the
//              ICEL error package so structured errors log with their code,
//              severity, and details.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation
//
// Loggers are immutable: the With* methods derive configured copies,
// and every copy descending from one logger shares a single write path
// so concurrent output never interleaves. Logs default to stderr; the
// calculator's results own stdout.
//
// Usage:
//
//	import icellog "github.com/coxioxi/icel/foundation/core/log"
//
//	logger := icellog.New().
//	    WithLevel(icellog.LevelDebug).
//	    WithFormat(icellog.FormatJSON).
//	    WithField("component", "parser")
//
//	logger.Info("expression parsed", icellog.Fields{
//	    "source": "x = 2 + 3",
//	    "tokens": 5,
//	})
//
//	timer := logger.StartTimer("expression_evaluation")
//	// ... parse and evaluate ...
//	timer.Stop()
package log
