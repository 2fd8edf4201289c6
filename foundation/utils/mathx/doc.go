// File: doc.go
// Title: Math Extensions Package Documentation
// Description: Package documentation for the mathx integer arithmetic
//              helpers used throughout the ICEL toolkit.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation

/*
Package mathx provides integer arithmetic helpers for the ICEL toolkit.

ICEL arithmetic is defined over 64-bit signed integers with wrap-around
on overflow and floor semantics for division and modulo. Go's built-in
operators truncate toward zero, so this package supplies the corrected
primitives:

  • FloorDiv - quotient rounded toward negative infinity
  • FloorMod - remainder carrying the divisor's sign
  • Pow      - binary exponentiation with two's complement wrap-around
  • Abs      - absolute value
  • Sign     - sign extraction

FloorDiv and FloorMod are consistent with each other:

	a == FloorDiv(a, b)*b + FloorMod(a, b)

ParseInt64 converts decimal strings with structured range diagnostics.

Usage:

	quotient := mathx.FloorDiv(-7, 2)  // -4, not -3
	remainder := mathx.FloorMod(-7, 2) // 1, not -1
	power := mathx.Pow(2, 10)          // 1024
*/
package mathx
