// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string operations used across
//              the ICEL toolchain, from lexer character predicates to
//              REPL table formatting.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation

// Package stringx provides string operations used across the ICEL toolchain.
//
// The package deliberately stays small: it contains exactly the helpers the
// rest of the repository exercises rather than a general-purpose string
// library. All operations are Unicode-safe unless their name says ASCII.
//
// Key capabilities:
//   - Blank/empty checks for input validation (IsBlank, IsNotBlank)
//   - ASCII letter and digit predicates shared by the expression lexer and
//     variable name validation (IsASCIILetter, IsASCIIDigit, IsAlpha)
//   - Rune-safe truncation for log output (Truncate)
//   - Padding for aligned table output in the REPL (PadLeft, PadRight)
//   - Line splitting for the expression file runner (SplitLines)
package stringx
