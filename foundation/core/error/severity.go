// File: severity.go
// Title: Error Severity Levels
// Description: Defines the severity scale for structured errors and the
//              mapping from error codes to severities. Mistakes in the
//              expression stay low; broken engine internals are critical.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with severity levels

package error

// Severity grades how bad an error is, from SeverityLow to
// SeverityCritical. The zero value is SeverityLow; constructors default
// to SeverityMedium and derive the real value from the code.
type Severity int

const (
	// SeverityLow marks failures in the expression itself, e.g. a syntax
	// error or a division by zero. The user fixes these.
	SeverityLow Severity = iota

	// SeverityMedium marks environment problems around the expression,
	// e.g. an unreadable file or a bad configuration value.
	SeverityMedium

	// SeverityHigh marks failures that degrade the toolchain, e.g. a
	// component that did not initialize.
	SeverityHigh

	// SeverityCritical marks internal inconsistencies. Results can no
	// longer be trusted.
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

// String returns the lowercase name of the severity, or "unknown" for
// values outside the defined scale.
func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// GetSeverityFromCode derives the severity a code implies. WithCode uses
// it whenever no explicit severity was set.
func GetSeverityFromCode(code Code) Severity {
	// Internal inconsistencies outrank everything else.
	if code == CodeInternal || code == CodeEvalInternal {
		return SeverityCritical
	}
	if code == CodeInvalidInput {
		return SeverityLow
	}

	switch code.Category() {
	case "lexical", "parse", "evaluation", "validation":
		// The expression is wrong; the user can correct it.
		return SeverityLow
	default:
		// Configuration, IO, timeouts, and anything unclassified.
		return SeverityMedium
	}
}
