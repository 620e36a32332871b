// Package array provides a generic, fluent Array type over the fixed-shape
// transformations in package fixedarr.
//
// # Overview
//
// The central type is [Array][T], an immutable wrapper around a slice of T
// whose methods mirror the fixedarr operations and chain naturally:
//
//	result := array.New(1, 2, 3).
//	    Push(4).
//	    Remove(1).
//	    Reverse() // → [4 3 1]
//
// # Immutability
//
// Every transformation method returns a *new* Array backed by fresh
// storage, leaving the original unchanged. Array values are therefore safe
// to read from multiple goroutines without locking.
//
// # Fault semantics
//
// Methods inherit the fault model of package fixedarr: shape-precondition
// violations (popping an empty array, removing at an out-of-range index,
// splitting past the end) panic with the corresponding fixedarr sentinel
// error. Accessors such as [Array.At], [Array.First] and [Array.Last] use
// the comma-ok form instead, since a missing element there is a lookup
// miss rather than a shape violation.
package array
