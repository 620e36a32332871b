package fixedarr

import "errors"

// Sentinel errors carried by panics raised on shape-precondition
// violations. None of these is ever returned; recover and errors.Is are
// the only way to observe them programmatically.
var (
	// ErrEmptyArray is carried by the panic raised when Pop or Shift is
	// called on an empty slice (there is no N-1 shape for N=0).
	ErrEmptyArray = errors.New("fixedarr: operation on empty array")

	// ErrIndexOutOfRange is carried by the panic raised when Remove is
	// called with an index outside [0, N), or Insert with an index outside
	// [0, N].
	ErrIndexOutOfRange = errors.New("fixedarr: index out of range")

	// ErrSplitBounds is carried by the panic raised when Split is called
	// with a position outside [0, N].
	ErrSplitBounds = errors.New("fixedarr: split position out of range")

	// ErrRaggedRows is carried by the panic raised when Flatten is given
	// rows of differing lengths.
	ErrRaggedRows = errors.New("fixedarr: rows must all have the same length")

	// ErrInvalidWidth is carried by the panic raised when Unflatten is
	// called with a row width <= 0.
	ErrInvalidWidth = errors.New("fixedarr: row width must be positive")

	// ErrIndivisible is carried by the panic raised when Unflatten is
	// called with a length that is not a multiple of the row width.
	ErrIndivisible = errors.New("fixedarr: length not divisible by row width")
)
