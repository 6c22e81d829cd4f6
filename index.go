package fmgo

import (
	"github.com/hupe1980/fmgo/converter"
	"github.com/hupe1980/fmgo/internal/suffix"
)

// backendKind identifies the BWT representation backing an index.
type backendKind uint8

const (
	backendPlain backendKind = iota + 1
	backendRunLength
)

func (k backendKind) String() string {
	switch k {
	case backendPlain:
		return "plain"
	case backendRunLength:
		return "run-length"
	default:
		return "unknown"
	}
}

// backend is the queryable BWT representation an Index delegates to.
// Positions are rows of the conceptual suffix array matrix; symbols are
// internal codes (terminator = 0, real symbols >= 1).
type backend interface {
	// size returns the number of rows, i.e. text length plus the
	// implicit terminator.
	size() int

	// access returns the BWT symbol at row i.
	access(i int) uint64

	// lfWith returns occ(c) + rank(c, i): the row in the first column
	// where the i-th row would land if prefixed by symbol c. Defined
	// for i in [0, size].
	lfWith(c uint64, i int) int

	// lf returns lfWith(access(i), i), the row of the suffix that is
	// one position to the left in the text.
	lf(i int) int

	// fl is the inverse of lf: the row of the suffix one position to
	// the right in the text.
	fl(i int) int

	// getF returns the symbol in the first column at row i, i.e. the
	// first symbol of the i-th smallest suffix.
	getF(i int) uint64

	// bwt materializes the BWT symbol sequence. Used for snapshots.
	bwt() []uint64

	kind() backendKind
}

// Index is an FM-index over a symbol sequence. It answers occurrence
// counts in time proportional to the pattern length and, when built
// with suffix array sampling, reports occurrence positions.
//
// An Index is immutable after construction and safe for concurrent use.
type Index[T converter.Symbol] struct {
	back   backend
	conv   converter.Converter[T]
	sa     *suffix.Array // nil in count-only mode
	logger *Logger
}

// Len returns the number of indexed rows: the text length plus one for
// the implicit terminator.
func (idx *Index[T]) Len() int {
	return idx.back.size()
}

// HasLocate reports whether the index was built with suffix array
// samples and therefore supports Locate.
func (idx *Index[T]) HasLocate() bool {
	return idx.sa != nil
}

// Converter returns the symbol converter the index was built with.
func (idx *Index[T]) Converter() converter.Converter[T] {
	return idx.conv
}

// SearchBackward runs a backward search for pattern over the whole
// index and returns the resulting match cursor. An empty pattern
// matches every row. Symbols the converter rejects cannot occur in the
// text, so the result is an empty cursor.
func (idx *Index[T]) SearchBackward(pattern []T) *Search[T] {
	all := &Search[T]{idx: idx, lo: 0, hi: idx.back.size()}
	return all.SearchBackward(pattern)
}

// position recovers the text offset of the suffix at row i by walking
// LF until a sampled row is hit.
func (idx *Index[T]) position(i int) (int, error) {
	if idx.sa == nil {
		return 0, ErrLocateUnsupported
	}
	steps := 0
	for {
		if v, ok := idx.sa.Get(i); ok {
			return (v + steps) % idx.back.size(), nil
		}
		i = idx.back.lf(i)
		steps++
	}
}
