// Package fmgo provides a compressed full-text index (FM-index) for
// counting and locating pattern occurrences in a static symbol
// sequence.
//
// This file implements backend-specific fluent builder APIs for
// creating and configuring indexes. Builders are immutable - each
// method returns a new builder with the updated configuration.
package fmgo

import (
	"fmt"
	"time"

	"github.com/hupe1980/fmgo/converter"
	"github.com/hupe1980/fmgo/internal/sais"
	"github.com/hupe1980/fmgo/internal/suffix"
	"golang.org/x/sync/errgroup"
)

// DefaultSamplingLevel is the suffix array sampling level builders
// start from: every 2^level-th suffix array value is retained. Level 0
// keeps the full suffix array.
const DefaultSamplingLevel = 0

// =============================================================================
// FM-Index Builder (Immutable)
// =============================================================================

// FMIndex creates a builder for an index storing the full BWT in a
// wavelet matrix. This is the fastest backend; space is O(n log sigma).
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	idx, err := fmgo.FMIndex[byte](converter.NewRange[byte](' ', '~')).
//	    SamplingLevel(2).
//	    Build([]byte("mississippi"))
func FMIndex[T converter.Symbol](conv converter.Converter[T]) FMIndexBuilder[T] {
	return FMIndexBuilder[T]{
		conv:          conv,
		samplingLevel: DefaultSamplingLevel,
	}
}

// FMIndexBuilder is an immutable fluent builder for wavelet matrix
// backed indexes. Each method returns a new builder with the updated
// configuration.
type FMIndexBuilder[T converter.Symbol] struct {
	conv          converter.Converter[T]
	samplingLevel int
	countOnly     bool
	logger        *Logger
}

// SamplingLevel sets the suffix array sampling level: every 2^level-th
// suffix array value is retained. Higher levels save space at the cost
// of up to 2^level-1 extra LF steps per located occurrence.
// Default: 0 (full suffix array).
func (b FMIndexBuilder[T]) SamplingLevel(level int) FMIndexBuilder[T] {
	b.samplingLevel = level
	return b
}

// CountOnly drops the suffix array samples entirely. The index still
// answers Count in full; Locate fails with ErrLocateUnsupported.
func (b FMIndexBuilder[T]) CountOnly() FMIndexBuilder[T] {
	b.countOnly = true
	return b
}

// Logger sets the structured logger for operation tracing.
func (b FMIndexBuilder[T]) Logger(l *Logger) FMIndexBuilder[T] {
	b.logger = l
	return b
}

// Build constructs the index over text.
func (b FMIndexBuilder[T]) Build(text []T) (*Index[T], error) {
	return buildIndex(b.conv, text, backendPlain, b.samplingLevel, b.countOnly, b.logger)
}

// MustBuild constructs the index, panicking on error.
func (b FMIndexBuilder[T]) MustBuild(text []T) *Index[T] {
	idx, err := b.Build(text)
	if err != nil {
		panic(err)
	}
	return idx
}

// =============================================================================
// RLFM-Index Builder (Immutable)
// =============================================================================

// RLFMIndex creates a builder for an index storing the BWT run-length
// compressed. Highly repetitive texts produce few BWT runs, making this
// backend much smaller than FMIndex at a modest query-time cost.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
func RLFMIndex[T converter.Symbol](conv converter.Converter[T]) RLFMIndexBuilder[T] {
	return RLFMIndexBuilder[T]{
		conv:          conv,
		samplingLevel: DefaultSamplingLevel,
	}
}

// RLFMIndexBuilder is an immutable fluent builder for run-length
// backed indexes. Each method returns a new builder with the updated
// configuration.
type RLFMIndexBuilder[T converter.Symbol] struct {
	conv          converter.Converter[T]
	samplingLevel int
	countOnly     bool
	logger        *Logger
}

// SamplingLevel sets the suffix array sampling level: every 2^level-th
// suffix array value is retained.
// Default: 0 (full suffix array).
func (b RLFMIndexBuilder[T]) SamplingLevel(level int) RLFMIndexBuilder[T] {
	b.samplingLevel = level
	return b
}

// CountOnly drops the suffix array samples entirely. The index still
// answers Count in full; Locate fails with ErrLocateUnsupported.
func (b RLFMIndexBuilder[T]) CountOnly() RLFMIndexBuilder[T] {
	b.countOnly = true
	return b
}

// Logger sets the structured logger for operation tracing.
func (b RLFMIndexBuilder[T]) Logger(l *Logger) RLFMIndexBuilder[T] {
	b.logger = l
	return b
}

// Build constructs the index over text.
func (b RLFMIndexBuilder[T]) Build(text []T) (*Index[T], error) {
	return buildIndex(b.conv, text, backendRunLength, b.samplingLevel, b.countOnly, b.logger)
}

// MustBuild constructs the index, panicking on error.
func (b RLFMIndexBuilder[T]) MustBuild(text []T) *Index[T] {
	idx, err := b.Build(text)
	if err != nil {
		panic(err)
	}
	return idx
}

// =============================================================================
// Construction core
// =============================================================================

func buildIndex[T converter.Symbol](conv converter.Converter[T], text []T, kind backendKind, samplingLevel int, countOnly bool, logger *Logger) (*Index[T], error) {
	start := time.Now()

	idx, err := buildIndexInner(conv, text, kind, samplingLevel, countOnly, logger)
	if logger != nil {
		logger.LogBuild(kind.String(), len(text), conv.Size(), time.Since(start), err)
	}
	return idx, err
}

func buildIndexInner[T converter.Symbol](conv converter.Converter[T], text []T, kind backendKind, samplingLevel int, countOnly bool, logger *Logger) (*Index[T], error) {
	if samplingLevel < 0 {
		return nil, ErrInvalidSamplingLevel
	}
	if len(text) > MaxTextLen {
		return nil, fmt.Errorf("%w: %d symbols", ErrTextTooLarge, len(text))
	}

	// Encode to internal codes; the terminator 0 is appended so that
	// every real symbol sorts after it.
	encoded := make([]uint64, len(text)+1)
	for i, v := range text {
		c, err := conv.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("encode symbol at offset %d: %w", i, err)
		}
		encoded[i] = c
	}

	sigma := conv.Size()
	sa := sais.Build(encoded, sigma)
	bwt := deriveBWT(encoded, sa)

	// Backend and suffix array samples are independent; build them in
	// parallel.
	var (
		back    backend
		sampled *suffix.Array
		g       errgroup.Group
	)
	g.Go(func() error {
		switch kind {
		case backendRunLength:
			back = newRunLengthBackend(bwt, sigma)
		default:
			back = newPlainBackend(bwt, sigma)
		}
		return nil
	})
	if !countOnly {
		g.Go(func() error {
			sampled = suffix.Sample(sa, samplingLevel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Index[T]{
		back:   back,
		conv:   conv,
		sa:     sampled,
		logger: logger,
	}, nil
}

// deriveBWT permutes the encoded text by the suffix array: row i of
// the BWT is the symbol preceding the i-th smallest suffix, wrapping
// around at the text start.
func deriveBWT(encoded []uint64, sa []int) []uint64 {
	n := len(encoded)
	bwt := make([]uint64, n)
	for i, p := range sa {
		bwt[i] = encoded[(p+n-1)%n]
	}
	return bwt
}
