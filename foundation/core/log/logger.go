// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the structured Logger. Loggers are immutable;
//              the With* methods derive configured copies, and all copies
//              descending from one logger share a single write path so
//              concurrent output does not interleave.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
)

// Logger is an immutable structured logger. Deriving methods return
// copies, so a Logger can be shared across goroutines freely.
type Logger struct {
	level  Level
	fields Fields
	sink   *sink
}

// sink is the write path shared by a logger and everything derived
// from it. Formatting happens outside the lock; the lock only
// serializes the final write so lines from concurrent loggers do not
// interleave.
type sink struct {
	mu        sync.Mutex
	out       io.Writer
	formatter Formatter
}

// write formats the entry and writes it. Entries that cannot be
// formatted are dropped; logging must never take the process down.
func (s *sink) write(entry *Entry) {
	data, err := s.formatter.Format(entry)
	if err != nil {
		return
	}

	s.mu.Lock()
	_, _ = s.out.Write(data)
	s.mu.Unlock()
}

// New creates a logger at the default level writing text lines to
// stderr. Stdout is left to the calling program's own output.
func New() *Logger {
	return &Logger{
		level:  DefaultLevel(),
		fields: Fields{},
		sink: &sink{
			out:       os.Stderr,
			formatter: NewTextFormatter(),
		},
	}
}

// derive copies the logger. The copy shares the parent's sink unless a
// With* method replaces it.
func (l *Logger) derive() *Logger {
	return &Logger{
		level:  l.level,
		fields: l.fields.Clone(),
		sink:   l.sink,
	}
}

// WithLevel returns a copy of the logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.derive()
	clone.level = level
	return clone
}

// WithFormat returns a copy of the logger rendering entries in the
// given format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.derive()
	clone.sink = &sink{
		out:       l.sink.out,
		formatter: formatterFor(format),
	}
	return clone
}

// WithOutput returns a copy of the logger writing to the given
// destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.derive()
	clone.sink = &sink{
		out:       output,
		formatter: l.sink.formatter,
	}
	return clone
}

// WithField returns a copy of the logger that adds the field to every
// entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.derive()
	clone.fields[key] = value
	return clone
}

// WithFields returns a copy of the logger that adds all given fields
// to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.derive()
	for k, v := range fields {
		clone.fields[k] = v
	}
	return clone
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.emit(LevelTrace, message, nil, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.emit(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.emit(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.emit(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.emit(LevelError, message, nil, fields...)
}

// ErrorWithErr logs a message at error level together with the error
// that caused it
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.emit(LevelError, message, err, fields...)
}

// Fatal logs a message at fatal level and terminates the process
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.emit(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// LogError logs a structured error at the level matching its severity,
// carrying the error's code, operation, and details as fields. Plain
// errors log at error level with no extra context.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	structured, ok := err.(*icelerror.Error)
	if !ok {
		l.emit(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"code":     structured.Code(),
		"severity": structured.Severity().String(),
	}
	if op := structured.Operation(); op != "" {
		fields["operation"] = op
	}
	for k, v := range structured.Details() {
		fields["detail_"+k] = v
	}

	l.emit(severityLevel(structured.Severity()), err.Error(), err, fields)
}

// StartTimer starts a timer that logs the duration of the named
// operation when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// emit builds the entry and hands it to the sink. Per-call fields win
// over the logger's context fields on key collisions.
func (l *Logger) emit(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	l.sink.write(&Entry{
		Time:    time.Now(),
		Level:   level,
		Message: message,
		Fields:  l.fields.merged(fields...),
		Err:     err,
	})
}

// severityLevel maps an error severity to the log level it reports at
func severityLevel(severity icelerror.Severity) Level {
	switch severity {
	case icelerror.SeverityLow:
		return LevelInfo
	case icelerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// defaultLogger serves code paths that have no configured logger.
var defaultLogger = New()

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide default logger. Intended for
// program initialization, not for concurrent use.
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Trace logs at trace level on the default logger
func Trace(message string, fields ...Fields) {
	defaultLogger.Trace(message, fields...)
}

// Debug logs at debug level on the default logger
func Debug(message string, fields ...Fields) {
	defaultLogger.Debug(message, fields...)
}

// Info logs at info level on the default logger
func Info(message string, fields ...Fields) {
	defaultLogger.Info(message, fields...)
}

// Warn logs at warn level on the default logger
func Warn(message string, fields ...Fields) {
	defaultLogger.Warn(message, fields...)
}

// Error logs at error level on the default logger
func Error(message string, fields ...Fields) {
	defaultLogger.Error(message, fields...)
}

// Fatal logs at fatal level on the default logger and terminates the
// process
func Fatal(message string, fields ...Fields) {
	defaultLogger.Fatal(message, fields...)
}
