package fmgo

import (
	"fmt"

	"github.com/hupe1980/fmgo/internal/wavelet"
)

// plainBackend stores the full BWT in a wavelet matrix together with a
// symbol count table. Space is O(n log sigma); every operation is
// O(log sigma).
type plainBackend struct {
	bw   *wavelet.Matrix
	occs []int // occs[c] = number of symbols smaller than c, len sigma+1
	n    int
}

func newPlainBackend(bwt []uint64, sigma uint64) *plainBackend {
	return &plainBackend{
		bw:   wavelet.New(bwt, sigma),
		occs: countTable(bwt, sigma),
		n:    len(bwt),
	}
}

// countTable builds the cumulative symbol counts over data: out[c] is
// the number of symbols strictly smaller than c, and out[sigma] is the
// total length.
func countTable(data []uint64, sigma uint64) []int {
	out := make([]int, sigma+1)
	for _, c := range data {
		out[c+1]++
	}
	for c := 1; c < len(out); c++ {
		out[c] += out[c-1]
	}
	return out
}

func (p *plainBackend) size() int {
	return p.n
}

func (p *plainBackend) access(i int) uint64 {
	return p.bw.Access(i)
}

func (p *plainBackend) lfWith(c uint64, i int) int {
	return p.occs[c] + p.bw.Rank(c, i)
}

func (p *plainBackend) lf(i int) int {
	return p.lfWith(p.bw.Access(i), i)
}

func (p *plainBackend) getF(i int) uint64 {
	// The first column is the sorted symbol sequence, so the symbol at
	// row i is the greatest c with occs[c] <= i.
	lo, hi := 0, len(p.occs)
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if p.occs[mid] <= i {
			lo = mid
		} else {
			hi = mid
		}
	}
	return uint64(lo)
}

func (p *plainBackend) fl(i int) int {
	c := p.getF(i)
	pos, err := p.bw.Select(c, i-p.occs[c])
	if err != nil {
		panic(fmt.Sprintf("fmgo: inverse LF out of range at row %d: %v", i, err))
	}
	return pos
}

func (p *plainBackend) bwt() []uint64 {
	out := make([]uint64, p.n)
	for i := range out {
		out[i] = p.bw.Access(i)
	}
	return out
}

func (p *plainBackend) kind() backendKind {
	return backendPlain
}
