package fmgo

import (
	"fmt"

	"github.com/hupe1980/fmgo/internal/bitvec"
	"github.com/hupe1980/fmgo/internal/wavelet"
)

// rlBackend stores the BWT run-length compressed. Runs of equal
// symbols are collapsed to their head symbol; two bit vectors mark run
// boundaries in BWT order and in first-column order, which is enough
// to answer rank-style queries over the full sequence. Space is
// O(r log sigma + n) bits for r runs.
type rlBackend struct {
	heads *wavelet.Matrix // head symbol per run, length r
	b     *bitvec.Vector  // run start positions, BWT order
	bp    *bitvec.Vector  // run start positions, first-column order
	cs    []int           // cs[c] = number of runs with head smaller than c
	n     int
	r     int
}

func newRunLengthBackend(bwt []uint64, sigma uint64) *rlBackend {
	n := len(bwt)

	var headSyms []uint64
	var runLens []int
	bb := bitvec.NewBuilder(n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && bwt[j] == bwt[i] {
			j++
		}
		bb.Set(i)
		headSyms = append(headSyms, bwt[i])
		runLens = append(runLens, j-i)
		i = j
	}
	r := len(headSyms)

	cs := countTable(headSyms, sigma)

	// Counting sort of runs by head symbol gives the run order of the
	// first column; run lengths are preserved, so prefix sums of the
	// reordered lengths mark the run starts in first-column order.
	next := make([]int, sigma)
	copy(next, cs[:sigma])
	ordered := make([]int, r)
	for k, h := range headSyms {
		ordered[next[h]] = k
		next[h]++
	}

	bpb := bitvec.NewBuilder(n)
	pos := 0
	for _, k := range ordered {
		bpb.Set(pos)
		pos += runLens[k]
	}

	return &rlBackend{
		heads: wavelet.New(headSyms, sigma),
		b:     bb.Build(),
		bp:    bpb.Build(),
		cs:    cs,
		n:     n,
		r:     r,
	}
}

func (p *rlBackend) size() int {
	return p.n
}

// runs returns the number of BWT runs.
func (p *rlBackend) runs() int {
	return p.r
}

// runStartF returns the position in the first column where the f-th
// run (in first-column order) starts. f == r addresses the position
// one past the last run, i.e. n.
func (p *rlBackend) runStartF(f int) int {
	if f == p.r {
		return p.n
	}
	pos, err := p.bp.Select1(f)
	if err != nil {
		panic(fmt.Sprintf("fmgo: run %d out of range: %v", f, err))
	}
	return pos
}

// runStart returns the BWT position where run k starts.
func (p *rlBackend) runStart(k int) int {
	pos, err := p.b.Select1(k)
	if err != nil {
		panic(fmt.Sprintf("fmgo: run %d out of range: %v", k, err))
	}
	return pos
}

func (p *rlBackend) access(i int) uint64 {
	k := p.b.Rank1(i+1) - 1
	return p.heads.Access(k)
}

func (p *rlBackend) lfWith(c uint64, i int) int {
	if i == 0 {
		return p.runStartF(p.cs[c])
	}

	k := p.b.Rank1(i) - 1 // run containing position i-1
	q := p.heads.Rank(c, k)
	base := p.runStartF(p.cs[c] + q)
	if p.heads.Access(k) == c {
		// Positions runStart(k)..i-1 all carry c; the first of them
		// maps to base, so i maps base plus the run prefix further.
		return base + (i - p.runStart(k))
	}
	return base
}

func (p *rlBackend) lf(i int) int {
	return p.lfWith(p.access(i), i)
}

func (p *rlBackend) getF(i int) uint64 {
	f := p.bp.Rank1(i+1) - 1
	return p.headOfF(f)
}

// headOfF returns the head symbol of the f-th run in first-column
// order: the greatest c with cs[c] <= f.
func (p *rlBackend) headOfF(f int) uint64 {
	lo, hi := 0, len(p.cs)
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if p.cs[mid] <= f {
			lo = mid
		} else {
			hi = mid
		}
	}
	return uint64(lo)
}

func (p *rlBackend) fl(i int) int {
	f := p.bp.Rank1(i+1) - 1
	c := p.headOfF(f)
	k, err := p.heads.Select(c, f-p.cs[c])
	if err != nil {
		panic(fmt.Sprintf("fmgo: inverse LF out of range at row %d: %v", i, err))
	}
	return p.runStart(k) + (i - p.runStartF(f))
}

func (p *rlBackend) bwt() []uint64 {
	out := make([]uint64, p.n)
	for k := 0; k < p.r; k++ {
		start := p.runStart(k)
		end := p.n
		if k+1 < p.r {
			end = p.runStart(k + 1)
		}
		c := p.heads.Access(k)
		for i := start; i < end; i++ {
			out[i] = c
		}
	}
	return out
}

func (p *rlBackend) kind() backendKind {
	return backendRunLength
}
