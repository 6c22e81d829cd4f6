package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeConverter(t *testing.T) {
	conv := NewRange[byte]('a', 'z')

	t.Run("RoundTrip", func(t *testing.T) {
		for v := byte('a'); v <= 'z'; v++ {
			c, err := conv.Encode(v)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, c, uint64(1))
			assert.Less(t, c, conv.Size())
			assert.Equal(t, v, conv.Decode(c))
		}
	})

	t.Run("OrderPreserving", func(t *testing.T) {
		prev, err := conv.Encode('a')
		require.NoError(t, err)
		for v := byte('b'); v <= 'z'; v++ {
			c, err := conv.Encode(v)
			require.NoError(t, err)
			assert.Greater(t, c, prev)
			prev = c
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := conv.Encode('A')
		assert.ErrorIs(t, err, ErrInvalidSymbol)

		_, err = conv.Encode(0)
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})

	t.Run("Size", func(t *testing.T) {
		assert.Equal(t, uint64(27), conv.Size()) // 26 letters + terminator
	})

	t.Run("Runes", func(t *testing.T) {
		rc := NewRange[rune]('あ', 'ん')
		c, err := rc.Encode('み')
		require.NoError(t, err)
		assert.Equal(t, 'み', rc.Decode(c))
	})
}

func TestIDConverter(t *testing.T) {
	conv := NewID[uint16](100)

	t.Run("RoundTrip", func(t *testing.T) {
		for _, v := range []uint16{0, 1, 42, 99} {
			c, err := conv.Encode(v)
			require.NoError(t, err)
			assert.Equal(t, uint64(v)+1, c)
			assert.Equal(t, v, conv.Decode(c))
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := conv.Encode(100)
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})

	t.Run("Size", func(t *testing.T) {
		assert.Equal(t, uint64(101), conv.Size())
	})
}
