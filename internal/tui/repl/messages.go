package repl

import "time"

// EntryKind classifies a transcript entry
type EntryKind int

const (
	EntryResult EntryKind = iota
	EntryError
	EntryInfo
)

// Entry is one interaction in the session transcript
type Entry struct {
	Input     string        // what the user typed
	Output    string        // result value, error text, or command output
	AST       string        // indented tree dump, empty when disabled
	Kind      EntryKind     // how to render the output
	Cached    bool          // parse tree came from the cache
	Duration  time.Duration // evaluation time (results only)
	Timestamp time.Time     // when the entry was made
}
