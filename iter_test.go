package fmgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](next func() (T, bool)) []T {
	var out []T
	for {
		v, ok := next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestIterBackward(t *testing.T) {
	buildBoth(t, []byte(loremIpsum), func(t *testing.T, idx *Index[byte]) {
		s := idx.SearchBackward([]byte("sit "))
		require.Equal(t, 1, s.Count())

		it := s.IterBackward(0)
		got := collect(it.Next)
		// Characters preceding the occurrence, nearest first.
		assert.Equal(t, []byte(" rolod muspi meroL"), got)

		// Exhausted iterators stay exhausted.
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

func TestIterForward(t *testing.T) {
	buildBoth(t, []byte("banana"), func(t *testing.T, idx *Index[byte]) {
		s := idx.SearchBackward([]byte("ban"))
		require.Equal(t, 1, s.Count())

		it := s.IterForward(0)
		// Characters following the matched pattern, in text order.
		assert.Equal(t, []byte("ana"), collect(it.Next))
	})
}

func TestIterForwardAtTextEnd(t *testing.T) {
	buildBoth(t, []byte("banana"), func(t *testing.T, idx *Index[byte]) {
		s := idx.SearchBackward([]byte("nana"))
		require.Equal(t, 1, s.Count())

		it := s.IterForward(0)
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

func TestIterBackwardAtTextStart(t *testing.T) {
	buildBoth(t, []byte("banana"), func(t *testing.T, idx *Index[byte]) {
		s := idx.SearchBackward([]byte("ban"))
		require.Equal(t, 1, s.Count())

		it := s.IterBackward(0)
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

func TestIterPerOccurrence(t *testing.T) {
	buildBoth(t, []byte("banana"), func(t *testing.T, idx *Index[byte]) {
		s := idx.SearchBackward([]byte("ana"))
		require.Equal(t, 2, s.Count())

		// Each occurrence index yields an independent context; collect
		// the first preceding character of each.
		var firsts []byte
		for k := 0; k < s.Count(); k++ {
			c, ok := s.IterBackward(k).Next()
			require.True(t, ok)
			firsts = append(firsts, c)
		}
		// One occurrence is preceded by 'b' (b|ana..), the other by
		// 'n' (bana|na -> preceded by 'n').
		assert.ElementsMatch(t, []byte{'b', 'n'}, firsts)
	})
}

func TestIterSeq(t *testing.T) {
	buildBoth(t, []byte(loremIpsum), func(t *testing.T, idx *Index[byte]) {
		s := idx.SearchBackward([]byte("Duis"))
		require.Equal(t, 1, s.Count())

		var got []byte
		for c := range s.IterForward(0).Seq() {
			got = append(got, c)
			if len(got) == 10 {
				break
			}
		}
		assert.Equal(t, []byte(" aute irur"), got)
	})
}

func TestIterOutOfRangePanics(t *testing.T) {
	buildBoth(t, []byte("banana"), func(t *testing.T, idx *Index[byte]) {
		s := idx.SearchBackward([]byte("ana"))
		assert.Panics(t, func() { s.IterBackward(2) })
		assert.Panics(t, func() { s.IterForward(-1) })
	})
}
