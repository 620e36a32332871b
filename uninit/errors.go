package uninit

import "errors"

// Sentinel errors carried by panics raised on Buffer misuse.
var (
	// ErrNegativeLength is carried by the panic raised when New is called
	// with a negative length.
	ErrNegativeLength = errors.New("uninit: buffer length must be non-negative")

	// ErrIndexOutOfRange is carried by the panic raised when a slot index
	// is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("uninit: slot index out of range")

	// ErrIncomplete is carried by the panic raised when Finalize is called
	// before every slot has been written.
	ErrIncomplete = errors.New("uninit: finalize of incompletely written buffer")

	// ErrFinalized is carried by the panic raised when a Buffer is used
	// after Finalize has released its backing slice.
	ErrFinalized = errors.New("uninit: buffer already finalized")
)
