// File: level.go
// Title: Log Level Definitions
// Description: Defines the severity levels that filter log output and the
//              parsing of level names from configuration values.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with standard log levels

package log

import (
	"strings"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
)

// Level classifies log messages by severity. A logger drops every
// message below its configured level.
type Level int8

const (
	// LevelTrace logs each fine-grained step, down to individual
	// session variable writes
	LevelTrace Level = iota

	// LevelDebug logs development detail such as timer checkpoints
	LevelDebug

	// LevelInfo logs normal operation
	LevelInfo

	// LevelWarn logs recoverable problems
	LevelWarn

	// LevelError logs failures that need attention
	LevelError

	// LevelFatal logs unrecoverable failures; the Fatal method also
	// terminates the process
	LevelFatal
)

// levelNames holds the canonical configuration names, indexed by Level.
var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal"}

// String returns the canonical lowercase name of the level
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return "unknown"
	}
	return levelNames[l]
}

// ShouldLog reports whether a message at this level passes the given
// minimum level
func (l Level) ShouldLog(min Level) bool {
	return l >= min
}

// AllLevels returns every level, ordered from most to least verbose
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// DefaultLevel returns the level a fresh logger starts with
func DefaultLevel() Level {
	return LevelInfo
}

// ParseLevel maps a configuration value to a Level. Matching ignores
// case and surrounding whitespace; "warning" is accepted for "warn".
// Unknown names return DefaultLevel and an error.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}

	return DefaultLevel(), icelerror.Newf("unknown log level: %q", name).
		WithCode(icelerror.CodeInvalidInput)
}
