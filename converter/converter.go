// Package converter maps raw input symbols to the dense coded alphabet used
// by the index structures and back. Code 0 is reserved for the virtual text
// terminator; every real symbol encodes to a value in [1, Size()).
package converter

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned by Encode for symbols outside the declared
// range. Values are never clamped.
var ErrInvalidSymbol = errors.New("converter: symbol out of range")

// Symbol is the set of raw symbol types an index can be built over.
type Symbol interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int32
}

// Converter is the alphabet conversion layer the index depends on.
//
// Encode must be injective and order-preserving on its accepted range, and
// must never produce 0 (the terminator code). Decode must be total on
// [1, Size()).
type Converter[T Symbol] interface {
	// Encode converts a raw symbol to its code, failing with
	// ErrInvalidSymbol for values outside the supported range.
	Encode(v T) (uint64, error)
	// Decode converts a code back to the raw symbol.
	Decode(c uint64) T
	// Size returns the coded alphabet size, including the reserved
	// terminator code 0.
	Size() uint64
}

// RangeConverter encodes symbols from a contiguous range [min, max].
type RangeConverter[T Symbol] struct {
	min, max T
}

// NewRange creates a RangeConverter accepting symbols in [min, max].
func NewRange[T Symbol](min, max T) RangeConverter[T] {
	return RangeConverter[T]{min: min, max: max}
}

// Encode implements Converter.
func (r RangeConverter[T]) Encode(v T) (uint64, error) {
	if v < r.min || v > r.max {
		return 0, fmt.Errorf("symbol %v outside range [%v, %v]: %w", v, r.min, r.max, ErrInvalidSymbol)
	}
	return uint64(v) - uint64(r.min) + 1, nil
}

// Decode implements Converter.
func (r RangeConverter[T]) Decode(c uint64) T {
	return r.min + T(c-1)
}

// Size implements Converter.
func (r RangeConverter[T]) Size() uint64 {
	return uint64(r.max) - uint64(r.min) + 2
}

// IDConverter encodes symbols in [0, alphabetSize) by shifting them past the
// terminator code. Use it when the input is already densely coded.
type IDConverter[T Symbol] struct {
	alphabetSize uint64
}

// NewID creates an IDConverter accepting symbols in [0, alphabetSize).
func NewID[T Symbol](alphabetSize uint64) IDConverter[T] {
	return IDConverter[T]{alphabetSize: alphabetSize}
}

// Encode implements Converter.
func (id IDConverter[T]) Encode(v T) (uint64, error) {
	if uint64(v) >= id.alphabetSize {
		return 0, fmt.Errorf("symbol %v not below alphabet size %d: %w", v, id.alphabetSize, ErrInvalidSymbol)
	}
	return uint64(v) + 1, nil
}

// Decode implements Converter.
func (id IDConverter[T]) Decode(c uint64) T {
	return T(c - 1)
}

// Size implements Converter.
func (id IDConverter[T]) Size() uint64 {
	return id.alphabetSize + 1
}
