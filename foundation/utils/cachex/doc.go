// File: doc.go
// Title: Cache Package Documentation
// Description: Package documentation for the cachex utilities.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial documentation

/*
Package cachex provides a concurrency-safe, generic in-memory cache with
per-entry time-to-live support.

The cache is bounded: when it reaches MaxItems, the entry closest to
expiring is evicted to make room. A background goroutine sweeps expired
entries at a configurable interval; expired entries are also removed
lazily when a lookup touches them.

Key characteristics:
  - Generic over the value type, with string keys
  - Safe for concurrent use by multiple goroutines
  - Per-entry TTL via SetWithTTL; a non-positive TTL stores forever
  - Hit/miss counters with a derived hit rate for diagnostics
  - Close stops the background sweep; the cache stays usable after

Basic usage:

	cache := cachex.New[string](cachex.DefaultConfig())
	defer cache.Close()

	cache.Set("key", "value")
	if v, ok := cache.Get("key"); ok {
		fmt.Println(v)
	}

	// Compute on miss, cache on success.
	v, err := cache.GetOrSet("expensive", func() (string, error) {
		return compute()
	})

Within ICEL the cache holds parsed expression trees keyed by their
source text, so repeated evaluation of the same expression skips the
parse step.
*/
package cachex
