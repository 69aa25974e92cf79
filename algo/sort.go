// Package algo implements the classic in-place comparison sorts, plus a few
// partition-based selection and rearrangement routines built on the same
// ideas.
//
// Every sort orders its slice ascending, in place.
package algo

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

type Person struct {
	Name string
	Age  uint64
}

// Sort sorts arr by increasing Age. People of the same age keep their
// relative order.
func Sort(arr []Person) {
	InsertionSortFunc(arr, func(a, b Person) bool {
		return a.Age < b.Age
	})
}

// InsertionSortFunc is InsertionSort with a caller-supplied less. It is stable.
func InsertionSortFunc[T any](s []T, less func(a, b T) bool) {
	l := len(s)
	for i := 1; i < l; i++ {
		x := s[i]
		var j = i - 1
		for j >= 0 && less(x, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = x
	}
}

func InsertionSort[K constraints.Ordered](s []K) {
	l := len(s)
	for i := 1; i < l; i++ {
		x := s[i]
		var j = i - 1
		for j >= 0 && s[j] > x {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = x
	}
}

// BinaryInsertionSort is insertion sort that finds each insertion point by
// binary search over the sorted prefix. It saves comparisons but still moves
// O(n^2) elements.
func BinaryInsertionSort[K constraints.Ordered](s []K) {
	l := len(s)
	for i := 1; i < l; i++ {
		x := s[i]
		// upper bound, so equal elements stay in order
		var lo, hi = 0, i - 1
		for lo <= hi {
			mid := lo + (hi-lo)/2
			if s[mid] > x {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		}
		copy(s[lo+1:i+1], s[lo:i])
		s[lo] = x
	}
}

// ShellSort runs insertion sort over elements gap apart, halving the gap
// (n/2, n/4, ..., 1) until the last pass is a plain insertion sort.
func ShellSort[K constraints.Ordered](s []K) {
	l := len(s)
	for gap := l / 2; gap >= 1; gap /= 2 {
		for i := gap; i < l; i++ {
			if s[i] >= s[i-gap] {
				continue
			}
			x := s[i]
			var j = i - gap
			for j >= 0 && x < s[j] {
				s[j+gap] = s[j]
				j -= gap
			}
			s[j+gap] = x
		}
	}
}

// BubbleSort bubbles the smallest remaining element to the front on each
// pass, and stops after the first pass without a swap.
func BubbleSort[K constraints.Ordered](s []K) {
	l := len(s)
	for i := 0; i < l-1; i++ {
		swapped := false
		for j := l - 1; j > i; j-- {
			if s[j-1] > s[j] {
				s[j-1], s[j] = s[j], s[j-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// CocktailSort is a bidirectional bubble sort: passes alternate between
// moving the largest element to the back and the smallest to the front.
func CocktailSort[K constraints.Ordered](s []K) {
	var lo, hi = 0, len(s) - 1
	var swapped = true
	for lo < hi && swapped {
		swapped = false
		for i := lo; i < hi; i++ {
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		hi--
		for i := hi; i > lo; i-- {
			if s[i] < s[i-1] {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}
		lo++
	}
}

func SelectionSort[K constraints.Ordered](s []K) {
	l := len(s)
	for i := 0; i < l-1; i++ {
		var min = i
		for j := i + 1; j < l; j++ {
			if s[j] < s[min] {
				min = j
			}
		}
		if min != i {
			s[i], s[min] = s[min], s[i]
		}
	}
}

// partition uses s[lo] as the pivot and moves it to its final position p
// within s[lo..hi], with s[lo..p-1] <= pivot <= s[p+1..hi]. It returns p.
func partition[K constraints.Ordered](s []K, lo int, hi int) int {
	pivot := s[lo]
	for lo < hi {
		for lo < hi && s[hi] >= pivot {
			hi--
		}
		s[lo] = s[hi]
		for lo < hi && s[lo] <= pivot {
			lo++
		}
		s[hi] = s[lo]
	}
	s[lo] = pivot
	return lo
}

// QuickSort sorts s using the first element of each range as the pivot.
// Already sorted input is its worst case (O(n^2), recursion depth n).
func QuickSort[K constraints.Ordered](s []K) {
	quickSort(s, 0, len(s)-1, nil)
}

// RandomizedQuickSort is QuickSort with a pivot drawn uniformly from each
// range using rng, which makes the O(n^2) case unlikely for any input.
func RandomizedQuickSort[K constraints.Ordered](s []K, rng *rand.Rand) {
	quickSort(s, 0, len(s)-1, rng)
}

func quickSort[K constraints.Ordered](s []K, lo int, hi int, rng *rand.Rand) {
	if lo >= hi {
		return
	}
	if rng != nil {
		i := lo + rng.Intn(hi-lo+1)
		s[lo], s[i] = s[i], s[lo]
	}
	p := partition(s, lo, hi)
	quickSort(s, lo, p-1, rng)
	quickSort(s, p+1, hi, rng)
}

// siftDown restores the max-heap property for the subtree at k of the heap
// s[:n], assuming both child subtrees are already heaps.
func siftDown[K constraints.Ordered](s []K, k int, n int) {
	x := s[k]
	for child := 2*k + 1; child < n; child = 2*k + 1 {
		if child+1 < n && s[child] < s[child+1] {
			child++
		}
		if x >= s[child] {
			break
		}
		s[k] = s[child]
		k = child
	}
	s[k] = x
}

func HeapSort[K constraints.Ordered](s []K) {
	l := len(s)
	for i := l/2 - 1; i >= 0; i-- {
		siftDown(s, i, l)
	}
	for i := l - 1; i > 0; i-- {
		// s[0] is the largest of s[:i+1]
		s[0], s[i] = s[i], s[0]
		siftDown(s, 0, i)
	}
}

func IsSorted[K constraints.Ordered](s []K) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
