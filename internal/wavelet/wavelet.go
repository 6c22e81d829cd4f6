// Package wavelet implements a wavelet matrix: a succinct representation of
// a symbol sequence over an alphabet of size sigma supporting access, rank
// and select in O(log sigma) bit vector operations.
package wavelet

import (
	"errors"
	"math/bits"

	"github.com/hupe1980/fmgo/internal/bitvec"
)

// ErrNotFound is returned by Select when the requested occurrence of a
// symbol does not exist in the sequence.
var ErrNotFound = errors.New("wavelet: occurrence not found")

// Matrix is an immutable wavelet matrix. Each level stores one bit of every
// symbol, most significant first, with the sequence stably reordered between
// levels so that positions carrying a 0-bit precede positions carrying a
// 1-bit. It is safe for concurrent readers.
type Matrix struct {
	levels []*bitvec.Vector
	zeros  []int // count of 0-bits per level
	nbits  int
	size   int
}

// New builds a wavelet matrix over data, whose values must all be below
// sigma. At least one level is always built so that the zero-symbol sequence
// remains queryable.
func New(data []uint64, sigma uint64) *Matrix {
	nbits := 1
	if sigma > 2 {
		nbits = bits.Len64(sigma - 1)
	}

	m := &Matrix{
		levels: make([]*bitvec.Vector, nbits),
		zeros:  make([]int, nbits),
		nbits:  nbits,
		size:   len(data),
	}

	cur := make([]uint64, len(data))
	next := make([]uint64, len(data))
	copy(cur, data)

	for lv := 0; lv < nbits; lv++ {
		shift := uint(nbits - 1 - lv)
		b := bitvec.NewBuilder(len(cur))

		// Stable partition: 0-bit positions first, then 1-bit positions.
		k := 0
		for i, val := range cur {
			if val>>shift&1 == 1 {
				b.Set(i)
			} else {
				next[k] = val
				k++
			}
		}
		m.zeros[lv] = k
		for _, val := range cur {
			if val>>shift&1 == 1 {
				next[k] = val
				k++
			}
		}

		m.levels[lv] = b.Build()
		cur, next = next, cur
	}

	return m
}

// Len returns the length of the represented sequence.
func (m *Matrix) Len() int { return m.size }

// Access returns the symbol at position i.
func (m *Matrix) Access(i int) uint64 {
	var c uint64
	for lv, bv := range m.levels {
		c <<= 1
		if bv.Get(i) {
			c |= 1
			i = m.zeros[lv] + bv.Rank1(i)
		} else {
			i = bv.Rank0(i)
		}
	}
	return c
}

// Rank returns the number of occurrences of symbol c in [0, pos).
func (m *Matrix) Rank(c uint64, pos int) int {
	s, e := m.interval(c, pos)
	return e - s
}

// Select returns the position of the (k+1)-th occurrence of symbol c
// (k is 0-based). It fails with ErrNotFound if fewer occurrences exist.
func (m *Matrix) Select(c uint64, k int) (int, error) {
	s, e := m.interval(c, m.size)
	if k < 0 || k >= e-s {
		return 0, ErrNotFound
	}

	pos := s + k
	for lv := m.nbits - 1; lv >= 0; lv-- {
		bv := m.levels[lv]
		var err error
		if c>>(uint(m.nbits-1-lv))&1 == 1 {
			pos, err = bv.Select1(pos - m.zeros[lv])
		} else {
			pos, err = bv.Select0(pos)
		}
		if err != nil {
			return 0, ErrNotFound
		}
	}
	return pos, nil
}

// interval walks the levels top-down and returns the pair
// (start of c's bucket at the bottom level, start + rank(c, pos)).
func (m *Matrix) interval(c uint64, pos int) (int, int) {
	s, e := 0, pos
	for lv, bv := range m.levels {
		if c>>(uint(m.nbits-1-lv))&1 == 1 {
			s = m.zeros[lv] + bv.Rank1(s)
			e = m.zeros[lv] + bv.Rank1(e)
		} else {
			s = bv.Rank0(s)
			e = bv.Rank0(e)
		}
	}
	return s, e
}
