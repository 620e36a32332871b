package array

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-array-utils/fixedarr"
)

// Array is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the array returns a *new* Array backed by
// fresh storage, leaving the original unchanged. See the package
// documentation for the fault model.
type Array[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Array from a variadic list of items (copied).
func New[T any](items ...T) *Array[T] {
	return From(items)
}

// From creates an Array from a slice (the slice is copied).
func From[T any](items []T) *Array[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Array[T]{items: dst}
}

// Empty creates an empty Array of type T.
func Empty[T any]() *Array[T] {
	return &Array[T]{items: []T{}}
}

// Flatten creates an Array from uniform rows, concatenated in row-major
// order. Panics with [fixedarr.ErrRaggedRows] if rows differ in length.
func Flatten[T any](matrix [][]T) *Array[T] {
	return &Array[T]{items: fixedarr.Flatten(matrix)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (a *Array[T]) All() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// ToSlice is an alias for [Array.All].
func (a *Array[T]) ToSlice() []T { return a.All() }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.items) }

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool { return len(a.items) == 0 }

// At returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (a *Array[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(a.items) {
		return zero, false
	}
	return a.items[index], true
}

// First returns the first element, or the zero value and false when the
// array is empty.
func (a *Array[T]) First() (T, bool) { return a.At(0) }

// Last returns the last element, or the zero value and false when the
// array is empty.
func (a *Array[T]) Last() (T, bool) { return a.At(len(a.items) - 1) }

// Each calls fn(item, index) for every element in order.
func (a *Array[T]) Each(fn func(T, int)) {
	for i, item := range a.items {
		fn(item, i)
	}
}

// String returns a JSON representation of the array.
// It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	b, err := json.Marshal(a.items)
	if err != nil {
		return fmt.Sprintf("%v", a.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new Array of length N+1 with value appended.
func (a *Array[T]) Push(value T) *Array[T] {
	return &Array[T]{items: fixedarr.Push(a.items, value)}
}

// Pop returns a new Array of length N-1 with the last element removed.
// Panics with [fixedarr.ErrEmptyArray] if the array is empty.
func (a *Array[T]) Pop() *Array[T] {
	return &Array[T]{items: fixedarr.Pop(a.items)}
}

// Shift returns a new Array of length N-1 with the first element removed.
// Panics with [fixedarr.ErrEmptyArray] if the array is empty.
func (a *Array[T]) Shift() *Array[T] {
	return &Array[T]{items: fixedarr.Shift(a.items)}
}

// Insert returns a new Array of length N+1 with value placed at index and
// later elements shifted right. Panics with [fixedarr.ErrIndexOutOfRange]
// unless 0 <= index <= N.
func (a *Array[T]) Insert(index int, value T) *Array[T] {
	return &Array[T]{items: fixedarr.Insert(a.items, index, value)}
}

// Remove returns a new Array of length N-1 without the element at index,
// with later elements shifted left. Panics with
// [fixedarr.ErrIndexOutOfRange] unless 0 <= index < N.
func (a *Array[T]) Remove(index int) *Array[T] {
	return &Array[T]{items: fixedarr.Remove(a.items, index)}
}

// Reverse returns a new Array with the element order reversed.
func (a *Array[T]) Reverse() *Array[T] {
	return &Array[T]{items: fixedarr.Reverse(a.items)}
}

// Split divides the array at pos into two new Arrays holding indices
// [0, pos) and [pos, N). Panics with [fixedarr.ErrSplitBounds] unless
// 0 <= pos <= N.
func (a *Array[T]) Split(pos int) (*Array[T], *Array[T]) {
	head, tail := fixedarr.Split(a.items, pos)
	return &Array[T]{items: head}, &Array[T]{items: tail}
}

// Concat returns a new Array holding the elements of a followed by the
// elements of other.
func (a *Array[T]) Concat(other *Array[T]) *Array[T] {
	return &Array[T]{items: fixedarr.Concat(a.items, other.items)}
}

// Unflatten regroups the array into rows of width elements, preserving
// order. Panics with [fixedarr.ErrInvalidWidth] if width <= 0, or with
// [fixedarr.ErrIndivisible] if Len() is not a multiple of width.
func (a *Array[T]) Unflatten(width int) [][]T {
	return fixedarr.Unflatten(a.items, width)
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b have the same length and equal elements at
// every index. Go generics do not allow a method to add the comparable
// constraint, so Equal is a package-level function.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, v := range a.items {
		if b.items[i] != v {
			return false
		}
	}
	return true
}
