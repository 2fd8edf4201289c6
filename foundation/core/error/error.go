// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used across the ICEL
//              toolchain. An Error carries a machine-readable code, a
//              severity, free-form details, and the stack at construction
//              time, while staying a plain Go error for callers that only
//              ever unwrap and print.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with contextual errors

package error

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
)

// Error is a structured error. All fields are private; construction goes
// through New, Newf, or Wrap, and metadata is attached with the fluent
// With* methods before the error leaves the failing function.
type Error struct {
	message   string
	cause     error
	timestamp time.Time

	code     Code
	severity Severity

	context   string
	operation string
	requestID string
	details   map[string]interface{}

	stack []StackFrame
}

// StackFrame is one call site in a captured stack.
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxErrorChainDepth caps how many times an error can be wrapped.
	// Wrap flattens chains that reach this depth.
	MaxErrorChainDepth = 15

	// MaxStackFrames caps the number of frames captured per error.
	MaxStackFrames = 20
)

// newError is the common base of all constructors. The skip of 2 drops
// newError and the exported constructor above it, so traces start at
// that constructor's caller.
func newError(message string) *Error {
	return &Error{
		message:   message,
		timestamp: time.Now(),
		code:      CodeUnknown,
		severity:  SeverityMedium,
		details:   map[string]interface{}{},
		stack:     captureStack(2),
	}
}

// New creates an Error with the given message, CodeUnknown, and
// SeverityMedium. Callers normally chain WithCode immediately.
func New(message string) *Error {
	return newError(message)
}

// Newf creates an Error with a Sprintf-formatted message.
func Newf(format string, args ...interface{}) *Error {
	return newError(fmt.Sprintf(format, args...))
}

// Wrap layers a message over an existing error. A nil err yields nil, so
// call sites can wrap unconditionally. Wrapping a structured error keeps
// its code, severity, request ID, and details on the new layer; wrapping
// anything else starts from the New defaults. Chains that reach
// MaxErrorChainDepth are flattened into a single error that names the
// root cause.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		flat := newError(fmt.Sprintf("%s (chain truncated at depth %d): %s",
			message, MaxErrorChainDepth, deepestCause(err).Error()))
		flat.severity = SeverityHigh
		flat.details["truncated"] = true
		flat.details["original_depth"] = depth
		return flat
	}

	wrapped := newError(message)
	wrapped.cause = err

	if inner, ok := err.(*Error); ok {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.requestID = inner.requestID
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

// chainDepth counts the links in an error chain. A non-structured cause
// terminates the chain and counts as one link.
func chainDepth(err error) int {
	depth := 0
	for err != nil && depth < MaxErrorChainDepth*2 {
		depth++
		structured, ok := err.(*Error)
		if !ok {
			break
		}
		err = structured.cause
	}
	return depth
}

// deepestCause walks to the end of an error chain.
func deepestCause(err error) error {
	for {
		structured, ok := err.(*Error)
		if !ok || structured.cause == nil {
			return err
		}
		err = structured.cause
	}
}

// Error implements the error interface, rendering the chain as
// "outer: inner: ...: root".
func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.cause }

// WithCode sets the machine-readable code. Unless a severity was set
// explicitly, the severity is derived from the code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity overrides the severity derived from the code.
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches one key-value pair to the error.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails attaches every entry of the given map.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithContext names the subsystem the error surfaced in.
func (e *Error) WithContext(context string) *Error {
	e.context = context
	return e
}

// WithOperation names the operation that failed, e.g. "parse".
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithRequestID ties the error to one evaluation request.
func (e *Error) WithRequestID(requestID string) *Error {
	e.requestID = requestID
	return e
}

// Code returns the machine-readable code.
func (e *Error) Code() Code { return e.code }

// Severity returns the severity.
func (e *Error) Severity() Severity { return e.severity }

// Timestamp returns the construction time.
func (e *Error) Timestamp() time.Time { return e.timestamp }

// Context returns the subsystem name, if set.
func (e *Error) Context() string { return e.context }

// Operation returns the failed operation, if set.
func (e *Error) Operation() string { return e.operation }

// RequestID returns the evaluation request ID, if set.
func (e *Error) RequestID() string { return e.requestID }

// Details returns a copy of the detail map. Mutating the copy does not
// touch the error.
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// StackTrace returns a copy of the captured stack.
func (e *Error) StackTrace() []StackFrame {
	out := make([]StackFrame, len(e.stack))
	copy(out, e.stack)
	return out
}

// RootCause returns the deepest error in the chain, or the receiver when
// nothing was wrapped.
func (e *Error) RootCause() error {
	if e.cause == nil {
		return e
	}
	return deepestCause(e.cause)
}

// String renders the error with all metadata, one attribute per line.
// Detail keys are sorted so the output is stable.
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\nCode: %s\nSeverity: %s\nTimestamp: %s",
		e.message, e.code, e.severity, e.timestamp.Format(time.RFC3339))

	if e.context != "" {
		fmt.Fprintf(&b, "\nContext: %s", e.context)
	}
	if e.operation != "" {
		fmt.Fprintf(&b, "\nOperation: %s", e.operation)
	}
	if e.requestID != "" {
		fmt.Fprintf(&b, "\nRequestID: %s", e.requestID)
	}
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		fmt.Fprintf(&b, "\nDetails: {%s}", strings.Join(pairs, ", "))
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "\nCause: %s", e.cause.Error())
	}
	return b.String()
}

// jsonError is the wire shape of a marshaled Error. The details map is
// always present so log consumers can index it without existence checks.
type jsonError struct {
	Message    string                 `json:"message"`
	Code       Code                   `json:"code"`
	Severity   string                 `json:"severity"`
	Timestamp  string                 `json:"timestamp"`
	Details    map[string]interface{} `json:"details"`
	Context    string                 `json:"context,omitempty"`
	Operation  string                 `json:"operation,omitempty"`
	RequestID  string                 `json:"request_id,omitempty"`
	Cause      string                 `json:"cause,omitempty"`
	StackTrace []StackFrame           `json:"stack_trace,omitempty"`
}

// MarshalJSON implements json.Marshaler for structured logging.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := jsonError{
		Message:    e.message,
		Code:       e.code,
		Severity:   e.severity.String(),
		Timestamp:  e.timestamp.Format(time.RFC3339),
		Details:    e.details,
		Context:    e.context,
		Operation:  e.operation,
		RequestID:  e.requestID,
		StackTrace: e.stack,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// captureStack records up to MaxStackFrames frames. skip counts the
// frames to drop on top of captureStack itself.
func captureStack(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	trace := make([]StackFrame, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		trace = append(trace, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			return trace
		}
	}
}

// HasCode reports whether err is a structured error carrying the given
// code.
func HasCode(err error, code Code) bool {
	structured, ok := err.(*Error)
	return ok && structured.code == code
}

// GetCode returns the code of a structured error, or CodeUnknown for any
// other error.
func GetCode(err error) Code {
	if structured, ok := err.(*Error); ok {
		return structured.code
	}
	return CodeUnknown
}

// IsParseError reports whether the error carries a lexical or parse code.
// Drivers use this to label a diagnostic as a parse failure.
func IsParseError(err error) bool {
	return GetCode(err).IsParseClass()
}

// IsEvalError reports whether the error carries an evaluation-time code.
func IsEvalError(err error) bool {
	return GetCode(err).IsEvalClass()
}
