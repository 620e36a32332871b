package fixedarr

import (
	"fmt"

	"github.com/hasbyte1/go-array-utils/uninit"
)

// ─────────────────────────────────────────────────────────────────────────────
// Nesting & flattening
// ─────────────────────────────────────────────────────────────────────────────

// Flatten concatenates A rows of B elements each into a single slice of
// length A*B, in row-major order: Flatten(m)[a*B+b] == m[a][b].
//
// Every row must have the same length; panics with [ErrRaggedRows]
// otherwise. Zero rows, or rows of width zero, yield an empty slice.
func Flatten[T any](matrix [][]T) []T {
	width := 0
	if len(matrix) > 0 {
		width = len(matrix[0])
	}
	for a, row := range matrix {
		if len(row) != width {
			panic(fmt.Errorf("%w: row 0 has %d elements, row %d has %d",
				ErrRaggedRows, width, a, len(row)))
		}
	}

	buf := uninit.New[T](len(matrix) * width)
	for a, row := range matrix {
		for b, v := range row {
			buf.Set(a*width+b, v)
		}
	}
	return buf.Finalize()
}

// Unflatten is the inverse of [Flatten]: it regroups a slice of length N
// into N/width rows of width elements each, preserving row-major order, so
// Flatten(Unflatten(items, w)) reproduces items.
//
// Panics with [ErrInvalidWidth] if width <= 0, or with [ErrIndivisible] if
// N is not a multiple of width.
func Unflatten[T any](items []T, width int) [][]T {
	if width <= 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidWidth, width))
	}
	if len(items)%width != 0 {
		panic(fmt.Errorf("%w: length %d, width %d", ErrIndivisible, len(items), width))
	}

	rows := len(items) / width
	out := make([][]T, rows)
	for a := range out {
		buf := uninit.New[T](width)
		for b := 0; b < width; b++ {
			buf.Set(b, items[a*width+b])
		}
		out[a] = buf.Finalize()
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Adding & removing elements
// ─────────────────────────────────────────────────────────────────────────────

// Pop returns a new slice of length N-1 with the last element removed.
// Panics with [ErrEmptyArray] if items is empty.
func Pop[T any](items []T) []T {
	if len(items) == 0 {
		panic(fmt.Errorf("%w: pop", ErrEmptyArray))
	}
	return Remove(items, len(items)-1)
}

// Shift returns a new slice of length N-1 with the first element removed.
// Panics with [ErrEmptyArray] if items is empty.
func Shift[T any](items []T) []T {
	if len(items) == 0 {
		panic(fmt.Errorf("%w: shift", ErrEmptyArray))
	}
	return Remove(items, 0)
}

// Push returns a new slice of length N+1 with value appended after the
// existing elements.
func Push[T any](items []T, value T) []T {
	buf := uninit.New[T](len(items) + 1)
	for pos, v := range items {
		buf.Set(pos, v)
	}
	buf.Set(len(items), value)
	return buf.Finalize()
}

// Insert returns a new slice of length N+1 with value placed at index and
// all elements from index onwards shifted one position right. Insert is
// the inverse of [Remove]: Remove(Insert(a, i, v), i) reproduces a.
// index == N appends, making Insert(a, len(a), v) equivalent to Push.
//
// Panics with [ErrIndexOutOfRange] unless 0 <= index <= N.
func Insert[T any](items []T, index int, value T) []T {
	if index < 0 || index > len(items) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(items)))
	}

	buf := uninit.New[T](len(items) + 1)
	i := 0
	for pos, v := range items {
		if pos == index {
			i++
		}
		buf.Set(i, v)
		i++
	}
	buf.Set(index, value)
	return buf.Finalize()
}

// Remove returns a new slice of length N-1 without the element at index;
// all elements after it shift one position left and the relative order of
// the rest is preserved.
//
// Panics with [ErrIndexOutOfRange] unless 0 <= index < N. This bounds
// check is the package's canonical runtime precondition: index is
// inherently a runtime value, unlike the shape constraints elsewhere.
func Remove[T any](items []T, index int) []T {
	if index < 0 || index >= len(items) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(items)))
	}

	buf := uninit.New[T](len(items) - 1)
	i := 0
	for pos, v := range items {
		if pos != index {
			buf.Set(i, v)
			i++
		}
	}
	return buf.Finalize()
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering & splitting
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a new slice of the same length with the element order
// reversed: Reverse(a)[i] == a[N-1-i]. Reversing twice reproduces the
// original order.
func Reverse[T any](items []T) []T {
	n := len(items)
	buf := uninit.New[T](n)
	for pos, v := range items {
		buf.Set(n-1-pos, v)
	}
	return buf.Finalize()
}

// Split divides items into two new slices at pos: the first holds indices
// [0, pos), the second indices [pos, N). Concatenating the two results in
// order reproduces the input.
//
// Panics with [ErrSplitBounds] unless 0 <= pos <= N.
func Split[T any](items []T, pos int) ([]T, []T) {
	if pos < 0 || pos > len(items) {
		panic(fmt.Errorf("%w: position %d, length %d", ErrSplitBounds, pos, len(items)))
	}

	head := uninit.New[T](pos)
	tail := uninit.New[T](len(items) - pos)
	for i, v := range items {
		if i < pos {
			head.Set(i, v)
		} else {
			tail.Set(i-pos, v)
		}
	}
	return head.Finalize(), tail.Finalize()
}

// Concat returns a new slice of length len(a)+len(b) holding the elements
// of a followed by the elements of b. Concat is the inverse of [Split]:
// Concat(Split(items, pos)) reproduces items for any valid pos.
func Concat[T any](a, b []T) []T {
	buf := uninit.New[T](len(a) + len(b))
	for i, v := range a {
		buf.Set(i, v)
	}
	for i, v := range b {
		buf.Set(len(a)+i, v)
	}
	return buf.Finalize()
}
