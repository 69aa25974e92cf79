package algo

import (
	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"
)

// KthElement returns the k-th smallest element of s (k is 0-based) in
// expected O(n) time, by partitioning and continuing only on the side that
// contains position k. s is reordered so that s[k] holds the result, with
// s[:k] <= s[k] <= s[k+1:].
//
// k must be a valid index of s.
func KthElement[K constraints.Ordered](s []K, k int) K {
	primitive.Assert(0 <= k && k < len(s))
	var lo, hi = 0, len(s) - 1
	for {
		p := partition(s, lo, hi)
		if p == k {
			return s[p]
		}
		if p > k {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
}

// OddsFirst moves every odd element in front of every even one, in a single
// partition-style pass. The order within each group is not preserved.
func OddsFirst[K constraints.Integer](s []K) {
	var lo, hi = 0, len(s) - 1
	for lo < hi {
		for lo < hi && s[lo]%2 != 0 {
			lo++
		}
		for lo < hi && s[hi]%2 == 0 {
			hi--
		}
		if lo < hi {
			s[lo], s[hi] = s[hi], s[lo]
		}
	}
}

type Color uint8

const (
	Red Color = iota
	White
	Blue
)

// DutchFlag sorts s into reds, then whites, then blues in one pass. s[:i] is
// red, s[i:j] white, s[k+1:] blue, and s[j:k+1] not yet examined.
func DutchFlag(s []Color) {
	var i, j, k = 0, 0, len(s) - 1
	for j <= k {
		switch s[j] {
		case Red:
			s[i], s[j] = s[j], s[i]
			i++
			j++
		case White:
			j++
		default:
			primitive.Assert(s[j] == Blue)
			s[j], s[k] = s[k], s[j]
			k--
		}
	}
}

type Number interface {
	constraints.Integer | constraints.Float
}

// SplitMaxDiff splits s into lo, of size len(s)/2, and hi, holding the rest,
// so that sum(hi) - sum(lo) is as large as possible; that is, lo gets the
// smallest half of the elements. It returns the split and the difference.
//
// lo and hi are sub-slices of s, which is reordered.
func SplitMaxDiff[K Number](s []K) (lo []K, hi []K, diff K) {
	l := len(s)
	if l == 0 {
		return s, s, 0
	}
	KthElement(s, l/2)
	lo, hi = s[:l/2], s[l/2:]
	for _, x := range hi {
		diff += x
	}
	for _, x := range lo {
		diff -= x
	}
	return lo, hi, diff
}
