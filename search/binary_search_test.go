package search

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBinarySearch(t *testing.T) {
	assert := assert.New(t)

	s := []uint64{1, 3, 4, 5}
	var i int
	var ok bool
	i, ok = BinarySearch(s, 2)
	assert.False(ok)
	assert.Equal(1, i, "insertion point")

	i, ok = BinarySearch(s, 1)
	assert.Equal(0, i)
	assert.True(ok)

	i, ok = BinarySearch(s, 5)
	assert.Equal(3, i)
	assert.True(ok)

	i, ok = BinarySearch(s, 6)
	assert.False(ok)
	assert.Equal(4, i)

	_, ok = BinarySearch([]uint64{}, 1)
	assert.False(ok)
}

func TestBinarySearchRecursive(t *testing.T) {
	assert := assert.New(t)

	s := []int{1, 3, 5, 7, 9}
	for want, x := range s {
		i, ok := BinarySearchRecursive(s, x, 0, len(s)-1)
		assert.True(ok, "missing %d", x)
		assert.Equal(want, i)
	}
	for _, x := range []int{0, 2, 100} {
		_, ok := BinarySearchRecursive(s, x, 0, len(s)-1)
		assert.False(ok, "found %d", x)
	}

	// 1 is outside the searched range
	_, ok := BinarySearchRecursive(s, 1, 1, 4)
	assert.False(ok)
}

func TestBinarySearchProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		s := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "s")
		slices.Sort(s)
		needle := rapid.IntRange(-60, 60).Draw(t, "needle")

		i, ok := BinarySearch(s, needle)
		want, wantOk := slices.BinarySearch(s, needle)
		assert.Equal(wantOk, ok)
		assert.Equal(want, i)

		j, ok := BinarySearchRecursive(s, needle, 0, len(s)-1)
		assert.Equal(wantOk, ok)
		if ok {
			assert.Equal(needle, s[j])
		}
	})
}
