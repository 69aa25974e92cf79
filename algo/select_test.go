package algo_test

import (
	"slices"
	"testing"

	"search_algo_code/algo"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestKthElement(t *testing.T) {
	assert := assert.New(t)

	s := []int{7, 2, 9, 4, 1}
	assert.Equal(1, algo.KthElement(slices.Clone(s), 0))
	assert.Equal(4, algo.KthElement(slices.Clone(s), 2))
	assert.Equal(9, algo.KthElement(slices.Clone(s), 4))

	assert.Panics(func() {
		algo.KthElement(s, 5)
	})
}

func TestKthElementProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		s := rapid.SliceOfN(rapid.IntRange(-20, 20), 1, 50).Draw(t, "s")
		k := rapid.IntRange(0, len(s)-1).Draw(t, "k")

		sorted := slices.Clone(s)
		slices.Sort(sorted)

		x := algo.KthElement(s, k)
		assert.Equal(sorted[k], x)
		assert.Equal(x, s[k])
		for _, y := range s[:k] {
			assert.LessOrEqual(y, x)
		}
		for _, y := range s[k+1:] {
			assert.GreaterOrEqual(y, x)
		}
	})
}

func TestOddsFirst(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		s := rapid.SliceOf(rapid.IntRange(-10, 10)).Draw(t, "s")
		input := slices.Clone(s)

		algo.OddsFirst(s)
		assert.ElementsMatch(input, s)
		// once an even element appears, no odd one follows
		seenEven := false
		for _, x := range s {
			if x%2 == 0 {
				seenEven = true
			} else {
				assert.False(seenEven, "odd %d after an even element in %v", x, s)
			}
		}
	})
}

func TestDutchFlag(t *testing.T) {
	assert := assert.New(t)

	s := []algo.Color{algo.Blue, algo.Red, algo.White, algo.Blue, algo.Red, algo.White}
	algo.DutchFlag(s)
	assert.Equal([]algo.Color{algo.Red, algo.Red, algo.White, algo.White, algo.Blue, algo.Blue}, s)

	algo.DutchFlag(nil)
}

func TestDutchFlagProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.SliceOf(rapid.SampledFrom([]algo.Color{algo.Red, algo.White, algo.Blue})).Draw(t, "s")
		expected := slices.Clone(s)
		slices.Sort(expected)

		algo.DutchFlag(s)
		assert.Equal(t, expected, s)
	})
}

func TestSplitMaxDiff(t *testing.T) {
	assert := assert.New(t)

	lo, hi, diff := algo.SplitMaxDiff([]int{5, 1, 4, 2, 3})
	assert.ElementsMatch([]int{1, 2}, lo)
	assert.ElementsMatch([]int{3, 4, 5}, hi)
	assert.Equal(9, diff)

	lo, hi, diff = algo.SplitMaxDiff([]int{})
	assert.Empty(lo)
	assert.Empty(hi)
	assert.Equal(0, diff)
}

func TestSplitMaxDiffProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		s := rapid.SliceOf(rapid.IntRange(-100, 100)).Draw(t, "s")

		sorted := slices.Clone(s)
		slices.Sort(sorted)
		var expected int
		for i, x := range sorted {
			if i < len(s)/2 {
				expected -= x
			} else {
				expected += x
			}
		}

		lo, hi, diff := algo.SplitMaxDiff(s)
		assert.Len(lo, len(s)/2)
		assert.Len(hi, len(s)-len(s)/2)
		assert.Equal(expected, diff)
	})
}
