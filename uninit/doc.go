// Package uninit provides a write-once buffer for building a slice of
// exactly n elements when the fill order is data-dependent and the zero
// value of the element type must never leak to a caller.
//
// # The problem
//
// Building a fixed-length result element-by-element with a plain
// make([]T, n) silently hands out zero values for any slot the producer
// forgot to write. For element types where the zero value is meaningful
// (0, "", nil), such a bug is invisible until much later. Buffer makes it
// loud: every slot must be written before the backing slice can be
// obtained.
//
// # Usage
//
//	buf := uninit.New[string](3)
//	buf.Set(2, "c")
//	buf.Set(0, "a")
//	buf.Set(1, "b")
//	out := buf.Finalize() // → []string{"a", "b", "c"}
//
// [Buffer.Finalize] panics if any slot was never written, naming the first
// gap, and poisons the buffer so the released slice is never aliased by
// later writes. Writes are tracked per slot in a [bitset.BitSet], so the
// overhead is one bit per element.
//
// # Fault model
//
// All misuse (negative length, out-of-range slot, incomplete or repeated
// finalize) is a programming error, not an expected condition: the package
// panics with an error wrapping one of the sentinel values in errors.go
// rather than returning it. A recovering caller can still identify the
// fault with errors.Is.
package uninit
