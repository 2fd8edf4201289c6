// File: doc.go
// Title: Session Package Documentation
// Description: Package documentation for the ICEL session environment.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial documentation

/*
Package session provides the mutable variable environment for ICEL
calculator sessions.

A session is the unit of state in ICEL: expressions evaluated against the
same session share variable bindings, while separate sessions are fully
isolated. Each session carries a UUID identifier that appears in log
output and diagnostics.

Key characteristics:
  - Reads of unset variables return 0 and never fail
  - Set stores a binding unconditionally; Define validates the name first
  - All access is guarded by a read-write mutex, so a session is safe for
    concurrent use
  - Snapshot and Names return copies, never internal state

Basic usage:

	sess, err := session.New(session.Options{})
	if err != nil {
		return err
	}

	sess.Set("x", 42)
	value := sess.Get("x") // 42
	_ = sess.Get("unset")  // 0

	// Validated definition for externally supplied names.
	if err := sess.Define("rate", 7); err != nil {
		return err
	}

Sessions implement the environment contract the evaluator expects, so a
session can be passed directly to evaluator.Eval.
*/
package session
