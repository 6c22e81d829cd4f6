package fmgo

import (
	"testing"

	"github.com/hupe1980/fmgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBackends(t *testing.T, text []byte) (backend, backend) {
	t.Helper()

	plain, err := FMIndex[byte](asciiConverter()).Build(text)
	require.NoError(t, err)
	rl, err := RLFMIndex[byte](asciiConverter()).Build(text)
	require.NoError(t, err)
	return plain.back, rl.back
}

func TestBackendEquivalence(t *testing.T) {
	rng := testutil.NewRNG(7)

	texts := map[string][]byte{
		"Banana":     []byte("banana"),
		"Lorem":      []byte(loremIpsum),
		"Repetitive": rng.RepetitiveText(400, []byte("ab")),
		"Single":     []byte("a"),
	}

	for name, text := range texts {
		t.Run(name, func(t *testing.T) {
			plain, rl := buildBackends(t, text)
			n := plain.size()
			require.Equal(t, n, rl.size())

			for i := 0; i < n; i++ {
				assert.Equal(t, plain.access(i), rl.access(i), "access(%d)", i)
				assert.Equal(t, plain.getF(i), rl.getF(i), "getF(%d)", i)
				assert.Equal(t, plain.lf(i), rl.lf(i), "lf(%d)", i)
				assert.Equal(t, plain.fl(i), rl.fl(i), "fl(%d)", i)
			}
			for c := uint64(0); c < asciiConverter().Size(); c++ {
				for i := 0; i <= n; i++ {
					assert.Equal(t, plain.lfWith(c, i), rl.lfWith(c, i), "lfWith(%d, %d)", c, i)
				}
			}
			assert.Equal(t, plain.bwt(), rl.bwt())
		})
	}
}

func TestLFIsSingleCycle(t *testing.T) {
	for _, text := range [][]byte{[]byte("banana"), []byte("mississippi"), []byte(loremIpsum)} {
		plain, rl := buildBackends(t, text)

		for _, back := range []backend{plain, rl} {
			n := back.size()
			seen := make([]bool, n)

			i := 0
			for step := 0; step < n; step++ {
				require.False(t, seen[i], "row %d visited twice", i)
				seen[i] = true
				i = back.lf(i)
			}
			// A full walk returns to the start: LF is one n-cycle.
			assert.Equal(t, 0, i)
		}
	}
}

func TestFLInvertsLF(t *testing.T) {
	rng := testutil.NewRNG(11)
	text := rng.RandomText(300, []byte("abcd"))

	plain, rl := buildBackends(t, text)
	for _, back := range []backend{plain, rl} {
		for i := 0; i < back.size(); i++ {
			assert.Equal(t, i, back.fl(back.lf(i)), "fl(lf(%d))", i)
			assert.Equal(t, i, back.lf(back.fl(i)), "lf(fl(%d))", i)
		}
	}
}

func TestBWTReconstructsText(t *testing.T) {
	// Walking LF from row 0 (the terminator row) spells the text
	// backwards, one symbol per step.
	text := []byte("banana")
	plain, _ := buildBackends(t, text)

	conv := asciiConverter()
	got := make([]byte, 0, len(text))
	i := 0
	for {
		c := plain.access(i)
		if c == 0 {
			break
		}
		got = append(got, conv.Decode(c))
		i = plain.lf(i)
	}
	assert.Equal(t, []byte("ananab"), got)
}

func TestRunLengthRunCount(t *testing.T) {
	idx, err := RLFMIndex[byte](asciiConverter()).Build([]byte("banana"))
	require.NoError(t, err)

	rl, ok := idx.back.(*rlBackend)
	require.True(t, ok)
	// BWT of "banana\0" is "annb\0aa": 5 runs.
	assert.Equal(t, 5, rl.runs())
	assert.Equal(t, 7, rl.size())
}
