// File: integer.go
// Title: Integer Arithmetic Helpers
// Description: Implements the integer arithmetic primitives used by the
//              ICEL evaluator. Division and modulo use floor semantics
//              (quotient rounds toward negative infinity, remainder takes
//              the divisor's sign), and multiplication-based operations
//              wrap around in two's complement.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with floor division helpers

package mathx

import (
	"strconv"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
)

// FloorDiv returns the quotient of a and b rounded toward negative
// infinity. Go's native division truncates toward zero, so the quotient
// is corrected when the operands have different signs and the division
// is inexact.
//
// The divisor must be non-zero; callers are expected to check before
// calling.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod returns the remainder of floor division. The result is zero
// or takes the sign of the divisor, so FloorDiv and FloorMod satisfy
// a == FloorDiv(a, b)*b + FloorMod(a, b).
//
// The divisor must be non-zero; callers are expected to check before
// calling.
func FloorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// Pow returns base raised to exp using binary exponentiation.
// Intermediate products wrap around in two's complement like every
// other int64 multiplication. The exponent is expected to be
// non-negative; negative exponents return 0.
func Pow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}

	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Abs returns the absolute value of a. The minimum int64 has no positive
// counterpart and wraps to itself.
func Abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Sign returns -1, 0, or 1 depending on the sign of a
func Sign(a int64) int64 {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

// ParseInt64 parses a decimal string into an int64 with structured
// errors: values outside the int64 range report CodeValueOutOfRange,
// malformed input reports CodeInvalidInput.
func ParseInt64(s string) (int64, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		numErr, ok := err.(*strconv.NumError)
		if ok && numErr.Err == strconv.ErrRange {
			return 0, icelerror.Wrap(err, "integer value out of range").
				WithCode(icelerror.CodeValueOutOfRange).
				WithDetail("input", s)
		}
		return 0, icelerror.Wrap(err, "invalid integer").
			WithCode(icelerror.CodeInvalidInput).
			WithDetail("input", s)
	}
	return value, nil
}
