package bitvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFromBits(bits []bool) *Vector {
	b := NewBuilder(len(bits))
	for i, set := range bits {
		if set {
			b.Set(i)
		}
	}
	return b.Build()
}

func TestVector(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		v := NewBuilder(0).Build()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Rank1(0))
		assert.Equal(t, 0, v.Rank0(0))

		_, err := v.Select1(0)
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = v.Select0(0)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("AllZero", func(t *testing.T) {
		v := NewBuilder(100).Build()
		assert.Equal(t, 0, v.Ones())
		assert.Equal(t, 100, v.Zeros())
		assert.Equal(t, 0, v.Rank1(100))
		assert.Equal(t, 100, v.Rank0(100))

		pos, err := v.Select0(99)
		require.NoError(t, err)
		assert.Equal(t, 99, pos)

		_, err = v.Select1(0)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("AllOne", func(t *testing.T) {
		b := NewBuilder(130)
		for i := 0; i < 130; i++ {
			b.Set(i)
		}
		v := b.Build()
		assert.Equal(t, 130, v.Ones())
		assert.Equal(t, 130, v.Rank1(130))

		pos, err := v.Select1(129)
		require.NoError(t, err)
		assert.Equal(t, 129, pos)

		_, err = v.Select0(0)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("WordBoundaries", func(t *testing.T) {
		bits := make([]bool, 256)
		for _, i := range []int{0, 63, 64, 127, 128, 191, 192, 255} {
			bits[i] = true
		}
		v := buildFromBits(bits)

		assert.Equal(t, 1, v.Rank1(64))
		assert.Equal(t, 2, v.Rank1(65))
		assert.Equal(t, 8, v.Rank1(256))

		pos, err := v.Select1(2)
		require.NoError(t, err)
		assert.Equal(t, 64, pos)
	})

	t.Run("AgainstBruteForce", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for _, size := range []int{1, 63, 64, 65, 1000, 4096} {
			bits := make([]bool, size)
			for i := range bits {
				bits[i] = rng.Intn(3) == 0
			}
			v := buildFromBits(bits)

			ones := 0
			for pos := 0; pos <= size; pos++ {
				assert.Equal(t, ones, v.Rank1(pos), "size=%d pos=%d", size, pos)
				assert.Equal(t, pos-ones, v.Rank0(pos))
				if pos < size {
					assert.Equal(t, bits[pos], v.Get(pos))
					if bits[pos] {
						got, err := v.Select1(ones)
						require.NoError(t, err)
						assert.Equal(t, pos, got)
						ones++
					} else {
						got, err := v.Select0(pos - ones)
						require.NoError(t, err)
						assert.Equal(t, pos, got)
					}
				}
			}

			_, err := v.Select1(v.Ones())
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = v.Select0(v.Zeros())
			assert.ErrorIs(t, err, ErrOutOfRange)
		}
	})
}
