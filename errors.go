package fmgo

import "errors"

var (
	// ErrLocateUnsupported is returned by locate operations on an index
	// that was built without suffix array sampling (count-only mode).
	ErrLocateUnsupported = errors.New("index built without suffix array samples: locate unsupported")

	// ErrTextTooLarge is returned when the input text exceeds MaxTextLen.
	ErrTextTooLarge = errors.New("text exceeds maximum indexable length")

	// ErrInvalidSamplingLevel is returned when a negative sampling level
	// is passed to a builder.
	ErrInvalidSamplingLevel = errors.New("sampling level must be non-negative")

	// ErrConverterMismatch is returned when loading a snapshot with a
	// converter whose alphabet size differs from the one the index was
	// built with.
	ErrConverterMismatch = errors.New("converter alphabet size does not match snapshot")
)

// MaxTextLen is the maximum number of symbols a single index can hold.
// The rank directories of the underlying bit vectors use 32-bit
// counters, which bounds the indexable length (including the implicit
// terminator) to 2^32-1 positions.
const MaxTextLen = 1<<32 - 2
