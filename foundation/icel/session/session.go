// File: session.go
// Title: ICEL Session Environment
// Description: Implements the mutable variable environment shared across
//              expressions within a calculator session. Access is guarded
//              by a read-write mutex so a session can back concurrent
//              lookups, and every session carries a unique identifier for
//              logging and diagnostics.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial session implementation

package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	icellog "github.com/coxioxi/icel/foundation/core/log"
	icelstringx "github.com/coxioxi/icel/foundation/utils/stringx"
)

// Session is a mutable name-to-integer store. Bindings persist across
// expressions until the session is cleared or discarded. Reads of unset
// names return 0 and never fail.
type Session struct {
	id        string
	createdAt time.Time
	logger    *icellog.Logger

	mu   sync.RWMutex
	vars map[string]int64
}

// Options contains configuration options for a session
type Options struct {
	// Logger for session diagnostics
	Logger *icellog.Logger

	// InitialVars seeds the environment with preset bindings
	InitialVars map[string]int64
}

// New creates a new session with a unique identifier
func New(opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = icellog.GetDefault()
	}

	s := &Session{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		vars:      make(map[string]int64, len(opts.InitialVars)),
	}
	s.logger = opts.Logger.
		WithField("component", "icel-session").
		WithField("sessionId", s.id)

	for name, value := range opts.InitialVars {
		s.vars[name] = value
	}

	s.logger.Debug("session created", icellog.Fields{
		"initialVars": len(opts.InitialVars),
	})

	return s, nil
}

// ID returns the unique session identifier
func (s *Session) ID() string {
	return s.id
}

// CreatedAt returns the session creation time
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Age returns how long the session has existed
func (s *Session) Age() time.Duration {
	return time.Since(s.createdAt)
}

// Get returns the value bound to name, or 0 when unset
func (s *Session) Get(name string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.vars[name]
}

// Lookup returns the value bound to name and whether the binding exists
func (s *Session) Lookup(name string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.vars[name]
	return value, ok
}

// Set binds name to value. Names arriving through evaluation are already
// lexically valid; use Define for externally supplied names.
func (s *Session) Set(name string, value int64) {
	s.mu.Lock()
	s.vars[name] = value
	s.mu.Unlock()

	s.logger.Trace("variable set", icellog.Fields{
		"name":  name,
		"value": value,
	})
}

// Define validates name as an ICEL variable (a run of ASCII letters)
// before binding it. Used for bindings that do not come from parsed
// expressions, such as command-line presets.
func (s *Session) Define(name string, value int64) error {
	if !icelstringx.IsAlpha(name) {
		return icelerror.Newf("invalid variable name: %q", name).
			WithCode(icelerror.CodeValidationFailed).
			WithDetail("name", name)
	}

	s.Set(name, value)
	return nil
}

// Has reports whether name is bound
func (s *Session) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.vars[name]
	return ok
}

// Delete removes a binding and reports whether it existed
func (s *Session) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.vars[name]
	if ok {
		delete(s.vars, name)
	}
	return ok
}

// Clear removes all bindings and returns how many were removed
func (s *Session) Clear() int {
	s.mu.Lock()
	cleared := len(s.vars)
	s.vars = make(map[string]int64)
	s.mu.Unlock()

	s.logger.Debug("session cleared", icellog.Fields{
		"cleared": cleared,
	})

	return cleared
}

// Len returns the number of bindings
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vars)
}

// Names returns all bound names in sorted order
func (s *Session) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Snapshot returns an independent copy of all bindings
func (s *Session) Snapshot() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]int64, len(s.vars))
	for name, value := range s.vars {
		snapshot[name] = value
	}

	return snapshot
}
