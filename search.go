package fmgo

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/fmgo/converter"
)

// Search is a match cursor: a half-open row range [lo, hi) of the
// conceptual suffix array matrix whose suffixes all start with the
// accumulated pattern. Cursors are immutable; refining a cursor
// returns a new one, so a cursor can be branched into several
// independent refinements.
type Search[T converter.Symbol] struct {
	idx     *Index[T]
	lo, hi  int
	pattern []T
}

// Count returns the number of matched occurrences.
func (s *Search[T]) Count() int {
	return s.hi - s.lo
}

// Range returns the matched half-open row range [lo, hi).
func (s *Search[T]) Range() (lo, hi int) {
	return s.lo, s.hi
}

// Pattern returns a copy of the accumulated pattern, i.e. the
// concatenation of every pattern passed to SearchBackward so far,
// latest first.
func (s *Search[T]) Pattern() []T {
	out := make([]T, len(s.pattern))
	copy(out, s.pattern)
	return out
}

// SearchBackward narrows the cursor to occurrences that are preceded
// by pattern, returning a new cursor for pattern + current pattern.
// An already empty cursor stays empty. Symbols the converter rejects
// cannot occur in the text, so the range collapses to empty.
func (s *Search[T]) SearchBackward(pattern []T) *Search[T] {
	lo, hi := s.lo, s.hi
	for i := len(pattern) - 1; i >= 0 && lo < hi; i-- {
		c, err := s.idx.conv.Encode(pattern[i])
		if err != nil {
			lo = hi
			break
		}
		lo = s.idx.back.lfWith(c, lo)
		hi = s.idx.back.lfWith(c, hi)
	}

	chained := make([]T, 0, len(pattern)+len(s.pattern))
	chained = append(chained, pattern...)
	chained = append(chained, s.pattern...)

	next := &Search[T]{idx: s.idx, lo: lo, hi: hi, pattern: chained}
	if s.idx.logger != nil {
		s.idx.logger.LogSearch(len(chained), next.Count())
	}
	return next
}

// Locate returns the text offset of every occurrence. The order of
// offsets is unspecified. It fails with ErrLocateUnsupported when the
// index was built in count-only mode.
func (s *Search[T]) Locate() ([]int, error) {
	if !s.idx.HasLocate() {
		return nil, ErrLocateUnsupported
	}

	out := make([]int, 0, s.Count())
	for i := s.lo; i < s.hi; i++ {
		pos, err := s.idx.position(i)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	if s.idx.logger != nil {
		s.idx.logger.LogLocate(len(out), nil)
	}
	return out, nil
}

// Occurrences returns the occurrence offsets as a compressed bitmap,
// which is convenient for set operations across several searches over
// the same index.
func (s *Search[T]) Occurrences() (*roaring64.Bitmap, error) {
	offsets, err := s.Locate()
	if err != nil {
		return nil, err
	}

	bm := roaring64.New()
	for _, off := range offsets {
		bm.Add(uint64(off))
	}
	return bm, nil
}

// IterBackward returns an iterator over the characters preceding the
// k-th matched occurrence, nearest first. k must be in [0, Count()).
func (s *Search[T]) IterBackward(k int) *BackwardIterator[T] {
	if k < 0 || k >= s.Count() {
		panic("fmgo: occurrence index out of range")
	}
	return &BackwardIterator[T]{idx: s.idx, i: s.lo + k}
}

// IterForward returns an iterator over the characters following the
// k-th matched occurrence, nearest first. k must be in [0, Count()).
func (s *Search[T]) IterForward(k int) *ForwardIterator[T] {
	if k < 0 || k >= s.Count() {
		panic("fmgo: occurrence index out of range")
	}
	it := &ForwardIterator[T]{idx: s.idx, i: s.lo + k}
	for range s.pattern {
		// Skip over the matched pattern itself.
		if _, ok := it.Next(); !ok {
			break
		}
	}
	return it
}
