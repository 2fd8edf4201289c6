// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of engine operations and logs the
//              outcome. Durations are reported in microseconds because a
//              single expression round trip completes well below a
//              millisecond.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with operation timing

package log

import (
	"time"
)

// Timer measures one operation from construction to Stop. A timer logs
// exactly once; after Stop or StopWithError further calls are no-ops,
// so a deferred Stop can back up an explicit error path.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	done      bool
}

// NewTimer starts a timer for the named operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
	}
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Checkpoint logs an intermediate mark at debug level without stopping
// the timer
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.done || t.logger == nil {
		return
	}

	elapsed := t.Elapsed()
	marks := Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed_us": elapsed.Microseconds(),
	}

	t.logger.Debug(t.operation+" checkpoint", marks.merged(fields...))
}

// Stop stops the timer and logs the duration at debug level. It
// returns the elapsed time, or 0 when the timer was already stopped.
func (t *Timer) Stop() time.Duration {
	if t.done {
		return 0
	}
	t.done = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.Debug(t.operation+" completed", Fields{
			"operation":   t.operation,
			"duration":    elapsed.String(),
			"duration_us": elapsed.Microseconds(),
		})
	}

	return elapsed
}

// StopWithError stops the timer and logs the failure at warn level.
// Failures here are usually bad input rather than engine faults, so
// they do not log at error level.
func (t *Timer) StopWithError(err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		fields := Fields{
			"operation":   t.operation,
			"duration":    elapsed.String(),
			"duration_us": elapsed.Microseconds(),
		}
		if err != nil {
			fields["error"] = err.Error()
		}
		t.logger.Warn(t.operation+" failed", fields)
	}

	return elapsed
}
