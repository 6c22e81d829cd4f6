// Package testutil provides deterministic random text generation and
// brute-force search oracles shared by the test suites.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomText returns n symbols drawn uniformly from alphabet.
func (r *RNG) RandomText(n int, alphabet []byte) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return out
}

// RepetitiveText returns roughly n symbols built by repeating randomly
// chosen short chunks over alphabet. The result compresses well under
// run-length encoding of its BWT.
func (r *RNG) RepetitiveText(n int, alphabet []byte) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	chunk := make([]byte, 4+r.rand.Intn(8))
	for i := range chunk {
		chunk[i] = alphabet[r.rand.Intn(len(alphabet))]
	}

	out := make([]byte, 0, n)
	for len(out) < n {
		repeats := 1 + r.rand.Intn(20)
		for j := 0; j < repeats && len(out) < n; j++ {
			out = append(out, chunk...)
		}
		// Mutate one position so the text is not a pure repeat.
		if len(chunk) > 0 {
			chunk[r.rand.Intn(len(chunk))] = alphabet[r.rand.Intn(len(alphabet))]
		}
	}
	return out[:n]
}

// CountOccurrences returns the number of (possibly overlapping)
// occurrences of pattern in text. The empty pattern occurs at every
// position plus once past the end.
func CountOccurrences[T comparable](text, pattern []T) int {
	return len(FindOccurrences(text, pattern))
}

// FindOccurrences returns the start offsets of every (possibly
// overlapping) occurrence of pattern in text, in ascending order.
func FindOccurrences[T comparable](text, pattern []T) []int {
	out := []int{}
	for i := 0; i+len(pattern) <= len(text); i++ {
		match := true
		for j := range pattern {
			if text[i+j] != pattern[j] {
				match = false
				break
			}
		}
		if match {
			out = append(out, i)
		}
	}
	return out
}
