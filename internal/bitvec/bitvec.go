// Package bitvec implements an immutable bit vector with constant-time rank
// and logarithmic select, the base primitive for the wavelet matrix and the
// run-length backend boundary vectors.
package bitvec

import (
	"errors"
	"math/bits"
)

// ErrOutOfRange is returned by Select1/Select0 when the requested occurrence
// does not exist.
var ErrOutOfRange = errors.New("bitvec: select out of range")

const wordBits = 64

// Builder accumulates bits for a Vector of a fixed size.
type Builder struct {
	words []uint64
	size  int
}

// NewBuilder creates a builder for a bit vector of the given size.
// All bits start unset.
func NewBuilder(size int) *Builder {
	return &Builder{
		words: make([]uint64, (size+wordBits-1)/wordBits),
		size:  size,
	}
}

// Set sets the bit at position i.
func (b *Builder) Set(i int) {
	b.words[i/wordBits] |= 1 << (i % wordBits)
}

// Build finalizes the builder into an immutable Vector, precomputing the
// per-word rank prefix sums.
func (b *Builder) Build() *Vector {
	ranks := make([]uint32, len(b.words)+1)
	var ones uint32
	for i, w := range b.words {
		ranks[i] = ones
		ones += uint32(bits.OnesCount64(w))
	}
	ranks[len(b.words)] = ones

	return &Vector{
		words: b.words,
		ranks: ranks,
		size:  b.size,
		ones:  int(ones),
	}
}

// Vector is a fixed-length bit sequence supporting rank and select queries.
// It is immutable after construction and safe for concurrent readers.
type Vector struct {
	words []uint64
	ranks []uint32 // ranks[i] = ones in words[:i]
	size  int
	ones  int
}

// Len returns the number of bits in the vector.
func (v *Vector) Len() int { return v.size }

// Ones returns the total number of set bits.
func (v *Vector) Ones() int { return v.ones }

// Zeros returns the total number of unset bits.
func (v *Vector) Zeros() int { return v.size - v.ones }

// Get reports whether the bit at position i is set.
func (v *Vector) Get(i int) bool {
	return v.words[i/wordBits]>>(i%wordBits)&1 == 1
}

// Rank1 returns the number of set bits in [0, pos).
func (v *Vector) Rank1(pos int) int {
	w := pos / wordBits
	r := int(v.ranks[w])
	if rem := pos % wordBits; rem != 0 {
		r += bits.OnesCount64(v.words[w] & (1<<rem - 1))
	}
	return r
}

// Rank0 returns the number of unset bits in [0, pos).
func (v *Vector) Rank0(pos int) int {
	return pos - v.Rank1(pos)
}

// Select1 returns the position of the (k+1)-th set bit (k is 0-based).
// It fails with ErrOutOfRange if k >= Ones().
func (v *Vector) Select1(k int) (int, error) {
	if k < 0 || k >= v.ones {
		return 0, ErrOutOfRange
	}
	// Binary search the word whose prefix rank covers k, then walk the word.
	lo, hi := 0, len(v.words)
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if int(v.ranks[mid]) <= k {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo*wordBits + selectWord(v.words[lo], k-int(v.ranks[lo])), nil
}

// Select0 returns the position of the (k+1)-th unset bit (k is 0-based).
// It fails with ErrOutOfRange if k >= Zeros().
func (v *Vector) Select0(k int) (int, error) {
	if k < 0 || k >= v.size-v.ones {
		return 0, ErrOutOfRange
	}
	lo, hi := 0, len(v.words)
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if mid*wordBits-int(v.ranks[mid]) <= k {
			lo = mid
		} else {
			hi = mid
		}
	}
	zerosBefore := lo*wordBits - int(v.ranks[lo])
	return lo*wordBits + selectWord(^v.words[lo], k-zerosBefore), nil
}

// selectWord returns the position of the (k+1)-th set bit within w.
// The caller guarantees that w contains more than k set bits.
func selectWord(w uint64, k int) int {
	for ; k > 0; k-- {
		w &= w - 1
	}
	return bits.TrailingZeros64(w)
}
