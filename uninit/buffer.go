package uninit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Buffer is a write-once builder for a slice of exactly n elements.
//
// A Buffer starts with every slot logically uninitialized. [Buffer.Set]
// writes a slot and records it as written; [Buffer.Finalize] releases the
// backing slice only after proving that every slot has been written, so the
// slice a caller receives is always fully initialized. A finalized Buffer
// is poisoned: any further use panics with [ErrFinalized], guaranteeing the
// released slice is never aliased by later writes.
//
// Buffer is a transient, single-goroutine value: create it, fill it, and
// finalize it within one operation. It is not safe for concurrent use.
type Buffer[T any] struct {
	slots   []T
	written *bitset.BitSet
	done    bool
}

// New allocates a Buffer of n uninitialized slots.
// Panics with [ErrNegativeLength] if n < 0.
func New[T any](n int) *Buffer[T] {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLength, n))
	}
	return &Buffer[T]{
		slots:   make([]T, n),
		written: bitset.New(uint(n)),
	}
}

// Len returns the number of slots in the buffer.
func (b *Buffer[T]) Len() int { return len(b.slots) }

// Filled returns the number of slots written so far.
func (b *Buffer[T]) Filled() int { return int(b.written.Count()) }

// Written reports whether slot i has been written.
// Panics with [ErrIndexOutOfRange] if i is outside [0, Len()).
func (b *Buffer[T]) Written(i int) bool {
	b.check(i)
	return b.written.Test(uint(i))
}

// Set writes value into slot i, marking it written. Writing the same slot
// more than once is allowed; the last value wins.
//
// Panics with [ErrIndexOutOfRange] if i is outside [0, Len()), or with
// [ErrFinalized] if the buffer has already been finalized.
func (b *Buffer[T]) Set(i int, value T) {
	if b.done {
		panic(ErrFinalized)
	}
	b.check(i)
	b.slots[i] = value
	b.written.Set(uint(i))
}

// Finalize proves every slot has been written and returns the backing
// slice. The buffer is poisoned afterwards: any further Set, Written or
// Finalize panics with [ErrFinalized].
//
// Panics with [ErrIncomplete], naming the first unwritten slot, if any slot
// was never written.
func (b *Buffer[T]) Finalize() []T {
	if b.done {
		panic(ErrFinalized)
	}
	if b.Filled() != len(b.slots) {
		gap, _ := b.written.NextClear(0)
		panic(fmt.Errorf("%w: slot %d of %d never written", ErrIncomplete, gap, len(b.slots)))
	}
	out := b.slots
	b.slots = nil
	b.written = nil
	b.done = true
	return out
}

func (b *Buffer[T]) check(i int) {
	if b.done {
		panic(ErrFinalized)
	}
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(b.slots)))
	}
}
