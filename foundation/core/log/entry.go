// File: entry.go
// Title: Log Entry and Field Types
// Description: Defines the record handed to formatters and the Fields map
//              that carries structured key/value context through the logger.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with structured log entries

package log

import (
	"time"
)

// Entry is a single log record as handed to a Formatter. Loggers fill
// it completely before formatting; formatters must not mutate it.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  Fields
	Err     error
}

// Fields carries structured key/value context for log entries. By
// convention a logger bound to one subsystem tags itself with a
// "component" field.
type Fields map[string]interface{}

// Clone returns an independent copy of the fields. Cloning nil yields
// nil.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}

	clone := make(Fields, len(f))
	for k, v := range f {
		clone[k] = v
	}
	return clone
}

// merged combines the receiver with the given sets into a fresh map.
// Later sets win on key collisions, so per-call fields override the
// logger's context fields.
func (f Fields) merged(sets ...Fields) Fields {
	size := len(f)
	for _, set := range sets {
		size += len(set)
	}

	out := make(Fields, size)
	for k, v := range f {
		out[k] = v
	}
	for _, set := range sets {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}
