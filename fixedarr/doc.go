// Package fixedarr provides fixed-shape transformations on slices:
// operations whose result length is a fixed function of the input length
// (flatten → A*B, pop/remove → N-1, push/insert → N+1, reverse → N,
// split → POS and N-POS), with every shape precondition validated before a
// single output element is produced.
//
// # Shape contract
//
// Each function documents its length law and checks its preconditions at
// the call boundary. Violations are unrecoverable programming errors: the
// function panics with an error wrapping one of the sentinels in errors.go
// and never returns a partially built result. There are no error returns
// and no recovery paths.
//
//	flat := fixedarr.Flatten([][]int{{1, 2}, {3, 4}}) // → [1 2 3 4]
//	rest := fixedarr.Pop([]int{1, 2, 3})              // → [1 2]
//	more := fixedarr.Push([]int{1, 2}, 3)             // → [1 2 3]
//	less := fixedarr.Remove([]int{1, 2, 3}, 1)        // → [1 3]
//	rev  := fixedarr.Reverse([]int{1, 2, 3})          // → [3 2 1]
//	a, b := fixedarr.Split([]int{1, 2, 3}, 2)         // → [1 2], [3]
//
// # Value semantics
//
// Every function consumes its input logically and returns fresh storage:
// the result never aliases the input, and the input is never mutated.
// Elements are duplicated with plain Go assignment, so element types with
// reference semantics (slices, maps, pointers) share backing state between
// input and output; use value-semantic element types where that matters.
//
// # Construction discipline
//
// All operations build their result through [uninit.Buffer]: allocate a
// buffer of the computed output length, write each slot exactly once
// following the operation's index mapping, and finalize. Finalize proves
// every slot was written, so no caller can ever observe an output slot
// that the index mapping missed.
package fixedarr
