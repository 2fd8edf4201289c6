// File: format.go
// Title: Log Output Formats
// Description: Implements the text and JSON renderings of log entries.
//              Text lines keep field order deterministic by sorting keys;
//              JSON nests custom fields under their own key so they cannot
//              collide with the envelope.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with text and JSON output

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
)

// Format selects the output rendering of log entries
type Format int8

const (
	// FormatText renders single human-readable lines, the default for
	// terminal output
	FormatText Format = iota

	// FormatJSON renders one JSON object per line for log tooling
	FormatJSON
)

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps a configuration value to a Format. Unknown names
// return FormatText and an error.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}

	return FormatText, icelerror.Newf("unknown log format: %q", name).
		WithCode(icelerror.CodeInvalidInput)
}

// Formatter renders a log entry into the bytes written to the output.
// The returned slice must end with a newline.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// formatterFor returns the formatter implementing the given format
func formatterFor(format Format) Formatter {
	if format == FormatJSON {
		return NewJSONFormatter()
	}
	return NewTextFormatter()
}

// TextFormatter renders entries as single lines:
//
//	15:04:05.000 INFO  expression evaluated source="1 + 2" value=3
//
// Field keys are sorted so the same entry always renders the same line.
type TextFormatter struct {
	// TimestampFormat is the time layout for the leading timestamp
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with millisecond timestamps
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05.000"}
}

// Format renders the entry as a text line
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s %-5s %s",
		entry.Time.Format(f.TimestampFormat),
		strings.ToUpper(entry.Level.String()),
		entry.Message)

	for _, key := range sortedKeys(entry.Fields) {
		value := entry.Fields[key]
		if s, ok := value.(string); ok {
			fmt.Fprintf(&b, " %s=%q", key, s)
		} else {
			fmt.Fprintf(&b, " %s=%v", key, value)
		}
	}

	if entry.Err != nil {
		fmt.Fprintf(&b, " error=%q", entry.Err.Error())
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// JSONFormatter renders entries as one JSON object per line
type JSONFormatter struct {
	// TimestampFormat is the time layout for the "time" key
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC3339Nano timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.999999999Z07:00"}
}

// jsonEnvelope is the wire shape of a JSON log line. Custom fields stay
// nested under "fields" so they cannot shadow the envelope keys.
type jsonEnvelope struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Fields  Fields `json:"fields,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Format renders the entry as a JSON line
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	envelope := jsonEnvelope{
		Time:    entry.Time.Format(f.TimestampFormat),
		Level:   entry.Level.String(),
		Message: entry.Message,
		Fields:  entry.Fields,
	}
	if entry.Err != nil {
		envelope.Error = entry.Err.Error()
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, icelerror.Wrap(err, "log entry not representable as JSON").
			WithCode(icelerror.CodeInternal)
	}

	return append(data, '\n'), nil
}

// sortedKeys returns the field keys in lexical order
func sortedKeys(fields Fields) []string {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
