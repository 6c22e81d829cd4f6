package fmgo

import (
	"iter"

	"github.com/hupe1980/fmgo/converter"
)

// BackwardIterator walks the text leftwards from a matched occurrence
// by repeated LF-mapping, yielding one character per step. It stops at
// the start of the text. Iterators are cheap single-use cursors; a
// fresh one is obtained from Search.IterBackward.
type BackwardIterator[T converter.Symbol] struct {
	idx  *Index[T]
	i    int
	done bool
}

// Next returns the next character to the left, or false when the start
// of the text has been reached.
func (it *BackwardIterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}

	c := it.idx.back.access(it.i)
	if c == 0 {
		// The preceding symbol is the terminator: text start.
		it.done = true
		return zero, false
	}
	it.i = it.idx.back.lf(it.i)
	return it.idx.conv.Decode(c), true
}

// Seq adapts the iterator to a range-over-func sequence. It consumes
// the iterator.
func (it *BackwardIterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ForwardIterator walks the text rightwards from a matched occurrence
// by repeated inverse LF-mapping, yielding one character per step. It
// stops at the end of the text.
type ForwardIterator[T converter.Symbol] struct {
	idx  *Index[T]
	i    int
	done bool
}

// Next returns the next character to the right, or false when the end
// of the text has been reached.
func (it *ForwardIterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}

	c := it.idx.back.getF(it.i)
	if c == 0 {
		// Reached the terminator row: text end.
		it.done = true
		return zero, false
	}
	it.i = it.idx.back.fl(it.i)
	return it.idx.conv.Decode(c), true
}

// Seq adapts the iterator to a range-over-func sequence. It consumes
// the iterator.
func (it *ForwardIterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
