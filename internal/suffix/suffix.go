// Package suffix implements the sampled suffix array used for locate
// queries. Sampling is suffix-order based: level L retains SA[i] for every
// BWT-order index i divisible by 2^L, so each level halves the memory and
// doubles the worst-case LF-walk length during position recovery.
package suffix

// Array is an immutable suffix-order sampled suffix array.
type Array struct {
	level  uint
	values []int
}

// Sample retains every 2^level-th entry of sa. Level 0 retains everything.
func Sample(sa []int, level int) *Array {
	step := 1 << level
	values := make([]int, 0, (len(sa)+step-1)/step)
	for i := 0; i < len(sa); i += step {
		values = append(values, sa[i])
	}
	return &Array{level: uint(level), values: values}
}

// FromValues reassembles an Array from previously retained values, as
// produced by Values. Used when loading snapshots.
func FromValues(values []int, level int) *Array {
	return &Array{level: uint(level), values: values}
}

// Values returns the retained suffix array entries in BWT order.
// The returned slice must not be modified.
func (a *Array) Values() []int { return a.values }

// Level returns the sampling level the array was built with.
func (a *Array) Level() int { return int(a.level) }

// Len returns the number of retained entries.
func (a *Array) Len() int { return len(a.values) }

// Get returns the suffix array value at BWT-order index i if it was
// retained, and reports whether it was.
func (a *Array) Get(i int) (int, bool) {
	if i&(1<<a.level-1) != 0 {
		return 0, false
	}
	return a.values[i>>a.level], true
}
