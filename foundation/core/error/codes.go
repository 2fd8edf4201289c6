// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the ICEL toolchain. Codes group into
//              lexical, parse, evaluation, configuration, IO, and validation
//              classes so drivers can discriminate failure kinds.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the ICEL toolchain
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Lexical analysis
	CodeLexIllegalChar  Code = "LEX_ILLEGAL_CHAR"
	CodeLexIntegerRange Code = "LEX_INTEGER_RANGE"

	// Parsing
	CodeParseSyntax          Code = "PARSE_SYNTAX"
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseExtraneousInput Code = "PARSE_EXTRANEOUS_INPUT"

	// Evaluation
	CodeEvalDivisionByZero   Code = "EVAL_DIVISION_BY_ZERO"
	CodeEvalNegativeExponent Code = "EVAL_NEGATIVE_EXPONENT"
	CodeEvalInternal         Code = "EVAL_INTERNAL"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// File input/output
	CodeIOError      Code = "IO_ERROR"
	CodeFileNotFound Code = "FILE_NOT_FOUND"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidLength    Code = "INVALID_LENGTH"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeTimeout,
		CodeLexIllegalChar, CodeLexIntegerRange,
		CodeParseSyntax, CodeParseUnexpectedToken, CodeParseExtraneousInput,
		CodeEvalDivisionByZero, CodeEvalNegativeExponent, CodeEvalInternal,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOError, CodeFileNotFound,
		CodeValidationFailed, CodeInvalidLength, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexIllegalChar, CodeLexIntegerRange:
		return "lexical"
	case CodeParseSyntax, CodeParseUnexpectedToken, CodeParseExtraneousInput:
		return "parse"
	case CodeEvalDivisionByZero, CodeEvalNegativeExponent, CodeEvalInternal:
		return "evaluation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIOError, CodeFileNotFound:
		return "io"
	case CodeValidationFailed, CodeInvalidLength, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// IsParseClass reports whether the code describes a lexical or parse
// failure. Drivers use this to label diagnostics.
func (c Code) IsParseClass() bool {
	category := c.Category()
	return category == "lexical" || category == "parse"
}

// IsEvalClass reports whether the code describes an evaluation-time failure
func (c Code) IsEvalClass() bool {
	return c.Category() == "evaluation"
}
