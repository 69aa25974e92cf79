package search

import "golang.org/x/exp/constraints"

// BinarySearch looks for needle in the sorted slice s. It returns (index, found)
// where if found = false, needle is not present in s and index is where it
// would be inserted, and if found = true, s[index] == needle.
//
// If needle appears multiple times in s, the first occurrence is returned.
func BinarySearch[K constraints.Ordered](s []K, needle K) (int, bool) {
	var i = 0
	var j = len(s)
	for i < j {
		mid := i + (j-i)/2
		if s[mid] < needle {
			i = mid + 1
		} else {
			j = mid
		}
	}
	if i < len(s) {
		return i, s[i] == needle
	}
	return i, false
}

// BinarySearchRecursive searches the closed range s[low..high] of a sorted
// slice. It returns the index of some occurrence of needle, or (0, false) if
// there is none in that range.
func BinarySearchRecursive[K constraints.Ordered](s []K, needle K, low int, high int) (int, bool) {
	if low > high {
		return 0, false
	}
	mid := low + (high-low)/2
	if s[mid] == needle {
		return mid, true
	}
	if s[mid] < needle {
		return BinarySearchRecursive(s, needle, mid+1, high)
	}
	return BinarySearchRecursive(s, needle, low, mid-1)
}
