// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validity, categorization, and the
//              parse/eval class predicates.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial test coverage

package error

import "testing"

func TestCodeString(t *testing.T) {
	if CodeParseSyntax.String() != "PARSE_SYNTAX" {
		t.Errorf("String() = %q, want %q", CodeParseSyntax.String(), "PARSE_SYNTAX")
	}
}

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeInvalidInput, CodeTimeout,
		CodeLexIllegalChar, CodeLexIntegerRange,
		CodeParseSyntax, CodeParseUnexpectedToken, CodeParseExtraneousInput,
		CodeEvalDivisionByZero, CodeEvalNegativeExponent, CodeEvalInternal,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOError, CodeFileNotFound,
		CodeValidationFailed, CodeInvalidLength, CodeValueOutOfRange,
	}
	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", code)
		}
	}

	invalid := []Code{"", "BOGUS", "parse_syntax", "EVAL"}
	for _, code := range invalid {
		if code.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", code)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeLexIllegalChar, "lexical"},
		{CodeLexIntegerRange, "lexical"},
		{CodeParseSyntax, "parse"},
		{CodeParseUnexpectedToken, "parse"},
		{CodeParseExtraneousInput, "parse"},
		{CodeEvalDivisionByZero, "evaluation"},
		{CodeEvalNegativeExponent, "evaluation"},
		{CodeEvalInternal, "evaluation"},
		{CodeConfigError, "configuration"},
		{CodeMissingConfig, "configuration"},
		{CodeIOError, "io"},
		{CodeFileNotFound, "io"},
		{CodeValidationFailed, "validation"},
		{CodeInvalidLength, "validation"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
		{Code("BOGUS"), "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeClassPredicates(t *testing.T) {
	parseClass := []Code{
		CodeLexIllegalChar, CodeLexIntegerRange,
		CodeParseSyntax, CodeParseUnexpectedToken, CodeParseExtraneousInput,
	}
	for _, code := range parseClass {
		if !code.IsParseClass() {
			t.Errorf("IsParseClass(%s) = false, want true", code)
		}
		if code.IsEvalClass() {
			t.Errorf("IsEvalClass(%s) = true, want false", code)
		}
	}

	evalClass := []Code{CodeEvalDivisionByZero, CodeEvalNegativeExponent, CodeEvalInternal}
	for _, code := range evalClass {
		if !code.IsEvalClass() {
			t.Errorf("IsEvalClass(%s) = false, want true", code)
		}
		if code.IsParseClass() {
			t.Errorf("IsParseClass(%s) = true, want false", code)
		}
	}

	neither := []Code{CodeUnknown, CodeConfigError, CodeIOError, CodeValidationFailed}
	for _, code := range neither {
		if code.IsParseClass() || code.IsEvalClass() {
			t.Errorf("code %s should be neither parse nor eval class", code)
		}
	}
}
