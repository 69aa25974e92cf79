// Package search implements sequential and binary search over slices.
package search

// Sequential returns the index of the first element of s equal to key.
func Sequential[K comparable](s []K, key K) (int, bool) {
	for i, x := range s {
		if x == key {
			return i, true
		}
	}
	return 0, false
}

// SequentialSentinel searches s[1:] from the back, using s[0] as a sentinel
// so the loop needs no bounds check. It returns the index of the last match,
// or 0 if key is not in s[1:].
//
// s[0] is overwritten with key. s must not be empty.
func SequentialSentinel[K comparable](s []K, key K) int {
	s[0] = key
	var i = len(s) - 1
	for s[i] != key {
		i--
	}
	return i
}

// SelfOrganizing finds key and moves it one place towards the front by
// swapping it with its predecessor, so frequently searched keys drift to the
// front. It returns the key's index after the move, or -1 if it is absent.
func SelfOrganizing[K comparable](s []K, key K) int {
	i, ok := Sequential(s, key)
	if !ok {
		return -1
	}
	if i == 0 {
		return 0
	}
	s[i-1], s[i] = s[i], s[i-1]
	return i - 1
}
