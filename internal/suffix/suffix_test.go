package suffix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	sa := []int{7, 0, 5, 3, 1, 6, 4, 2}

	t.Run("LevelZeroRetainsAll", func(t *testing.T) {
		a := Sample(sa, 0)
		assert.Equal(t, len(sa), a.Len())
		for i, want := range sa {
			got, ok := a.Get(i)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}
	})

	t.Run("LevelTwo", func(t *testing.T) {
		a := Sample(sa, 2)
		assert.Equal(t, 2, a.Len())

		got, ok := a.Get(0)
		assert.True(t, ok)
		assert.Equal(t, 7, got)

		got, ok = a.Get(4)
		assert.True(t, ok)
		assert.Equal(t, 1, got)

		for _, i := range []int{1, 2, 3, 5, 6, 7} {
			_, ok := a.Get(i)
			assert.False(t, ok, "index %d must not be sampled", i)
		}
	})

	t.Run("OddLength", func(t *testing.T) {
		a := Sample([]int{4, 2, 0, 1, 3}, 1)
		assert.Equal(t, 3, a.Len())

		got, ok := a.Get(4)
		assert.True(t, ok)
		assert.Equal(t, 3, got)
	})
}
