// Package error provides structured error handling for the ICEL toolchain.
//
// Package: error
// Title: ICEL Error Handling Framework
// Description: This package implements a structured error handling system
//              with contextual information, error codes, stack traces, and
//              severity levels. Expression failures (lexical, parse, and
//              evaluation) are built on this type so drivers can
//              discriminate failure kinds by code class.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-08
// Modified: 2025-08-08
//
// Change History:
// - 2025-08-08 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes grouped into lexical, parse, evaluation,
//   configuration, IO, and validation classes
// - Stack trace capture for debugging
// - Error severity levels derived from codes
// - Parse/eval class predicates for diagnostic labeling
//
// Usage:
//   import icelerror "github.com/coxioxi/icel/foundation/core/error"
//
//   // Create a new error with context
//   err := icelerror.New("missing ')'").
//     WithCode(icelerror.CodeParseSyntax).
//     WithOperation("parse").
//     WithDetail("line", 1)
//
//   // Wrap an existing error with context
//   wrapped := icelerror.Wrap(err, "expression rejected").
//     WithDetail("source", "(1 + 2")
//
//   // Discriminate failure kinds
//   if icelerror.IsParseError(err) {
//     // Label the diagnostic as a parse failure
//   }
package error
