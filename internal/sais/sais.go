// Package sais implements linear-time suffix array construction using the
// SA-IS algorithm (induced sorting of LMS substrings).
package sais

// Build returns the suffix array of text, a permutation of [0, len(text))
// such that the suffixes starting at the resulting indices are in ascending
// lexicographic order. All symbols must be below sigma, and the final symbol
// must be a sentinel that is strictly smaller than every other symbol and
// occurs exactly once.
func Build(text []uint64, sigma uint64) []int {
	sa := make([]int, len(text))
	if len(text) > 0 {
		build(text, int(sigma), sa)
	}
	return sa
}

func build(text []uint64, sigma int, sa []int) {
	n := len(text)
	if n == 1 {
		sa[0] = 0
		return
	}

	// Classify suffixes: stype[i] reports whether suffix i is S-type
	// (smaller than its successor). The sentinel is S-type by definition.
	stype := make([]bool, n)
	stype[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case text[i] < text[i+1]:
			stype[i] = true
		case text[i] > text[i+1]:
			stype[i] = false
		default:
			stype[i] = stype[i+1]
		}
	}

	lms := make([]int, 0, n/2)
	for i := 1; i < n; i++ {
		if isLMS(stype, i) {
			lms = append(lms, i)
		}
	}

	freq := frequencies(text, sigma)

	// First induction: LMS positions in text order produce an approximate
	// suffix array whose LMS subsequence is sorted by LMS substring.
	induce(text, sa, stype, freq, lms)

	sortedLMS := make([]int, 0, len(lms))
	for _, pos := range sa {
		if pos > 0 && isLMS(stype, pos) {
			sortedLMS = append(sortedLMS, pos)
		}
	}

	// Name distinct LMS substrings in sorted order.
	names := make([]int, n)
	name := 0
	prev := -1
	for _, pos := range sortedLMS {
		if prev >= 0 && !lmsEqual(text, stype, prev, pos) {
			name++
		}
		names[pos] = name
		prev = pos
	}

	if name+1 < len(lms) {
		// Duplicate names: recurse on the reduced sequence of names taken
		// in text order. Its last element is the sentinel's unique name 0.
		reduced := make([]uint64, len(lms))
		for i, pos := range lms {
			reduced[i] = uint64(names[pos])
		}
		reducedSA := make([]int, len(reduced))
		build(reduced, name+1, reducedSA)

		ordered := make([]int, len(lms))
		for i, r := range reducedSA {
			ordered[i] = lms[r]
		}
		lms = ordered
	} else {
		// All names unique: the name order is the sorted LMS order.
		ordered := make([]int, len(lms))
		for _, pos := range lms {
			ordered[names[pos]] = pos
		}
		lms = ordered
	}

	// Final induction from the fully sorted LMS order.
	induce(text, sa, stype, freq, lms)
}

// induce fills sa from scratch: sorted (or approximate) LMS suffixes are
// placed at their bucket tails, then one left-to-right pass induces L-type
// suffixes at bucket heads and one right-to-left pass induces S-type
// suffixes at bucket tails.
func induce(text []uint64, sa []int, stype []bool, freq []int, lms []int) {
	for i := range sa {
		sa[i] = -1
	}

	tails := bucketTails(freq)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := text[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketHeads(freq)
	for i := 0; i < len(sa); i++ {
		pos := sa[i]
		if pos > 0 && !stype[pos-1] {
			c := text[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketTails(freq)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && stype[pos-1] {
			c := text[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
}

func isLMS(stype []bool, i int) bool {
	return i > 0 && stype[i] && !stype[i-1]
}

// lmsEqual reports whether the LMS substrings starting at a and b are equal,
// i.e. they match symbol for symbol up to and including their next LMS
// position.
func lmsEqual(text []uint64, stype []bool, a, b int) bool {
	if text[a] != text[b] {
		return false
	}
	n := len(text)
	for i := 1; ; i++ {
		if a+i == n || b+i == n {
			return false
		}
		aLMS := isLMS(stype, a+i)
		bLMS := isLMS(stype, b+i)
		if aLMS && bLMS {
			return true
		}
		if aLMS != bLMS || text[a+i] != text[b+i] {
			return false
		}
	}
}

func frequencies(text []uint64, sigma int) []int {
	freq := make([]int, sigma)
	for _, c := range text {
		freq[c]++
	}
	return freq
}

func bucketHeads(freq []int) []int {
	heads := make([]int, len(freq))
	sum := 0
	for c, f := range freq {
		heads[c] = sum
		sum += f
	}
	return heads
}

func bucketTails(freq []int) []int {
	tails := make([]int, len(freq))
	sum := 0
	for c, f := range freq {
		sum += f
		tails[c] = sum - 1
	}
	return tails
}
