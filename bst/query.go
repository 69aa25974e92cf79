package bst

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// IsValid reports whether the tree satisfies the search-tree order.
func (t *Tree[K]) IsValid() bool {
	return IsValidBST(t.root)
}

// IsValidBST checks the search-tree order for the whole structure under root,
// not just between parents and their immediate children: every key must lie
// strictly between the nearest ancestors it sits to the right and to the left
// of. An empty tree is valid.
func IsValidBST[K constraints.Ordered](root *Node[K]) bool {
	return validWithin(root, nil, nil)
}

// validWithin checks that every key under n lies in the open interval
// (lo, hi); a nil bound is unbounded.
func validWithin[K constraints.Ordered](n *Node[K], lo *K, hi *K) bool {
	if n == nil {
		return true
	}
	if lo != nil && !(*lo < n.key) {
		return false
	}
	if hi != nil && !(n.key < *hi) {
		return false
	}
	return validWithin(n.left, lo, &n.key) && validWithin(n.right, &n.key, hi)
}

// SizesConsistent reports whether every node's size annotation equals
// 1 + size(left) + size(right).
func SizesConsistent[K constraints.Ordered](root *Node[K]) bool {
	_, ok := countNodes(root)
	return ok
}

func countNodes[K constraints.Ordered](n *Node[K]) (uint64, bool) {
	if n == nil {
		return 0, true
	}
	l, okL := countNodes(n.left)
	r, okR := countNodes(n.right)
	count := l + r + 1
	return count, okL && okR && n.size == count
}

// Level returns the depth of key in the tree, counting the root as level 1. It
// returns 0 if key is not present.
func (t *Tree[K]) Level(key K) int {
	var level = 1
	var n = t.root
	for n != nil {
		if key == n.key {
			return level
		}
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
		level++
	}
	return 0
}

// MinMax returns the smallest and largest keys. It fails with ErrEmptyTree if
// the tree has no nodes.
func (t *Tree[K]) MinMax() (min K, max K, err error) {
	if t.root == nil {
		return min, max, errors.Wrap(ErrEmptyTree, "min/max")
	}
	return t.root.min().key, t.root.max().key, nil
}

func (t *Tree[K]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, errors.Wrap(ErrEmptyTree, "min")
	}
	return t.root.min().key, nil
}

func (t *Tree[K]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, errors.Wrap(ErrEmptyTree, "max")
	}
	return t.root.max().key, nil
}

// CollectAtLeast returns every key >= threshold, largest first.
func (t *Tree[K]) CollectAtLeast(threshold K) []K {
	var keys []K
	descendAtLeast(t.root, threshold, func(k K) {
		keys = append(keys, k)
	})
	return keys
}

// descendAtLeast calls yield on the keys >= threshold under n in descending
// order (right subtree, node, left subtree). A node below threshold has only
// smaller keys on its left, so that subtree is never entered. It returns the
// number of nodes examined.
func descendAtLeast[K constraints.Ordered](n *Node[K], threshold K, yield func(K)) int {
	if n == nil {
		return 0
	}
	visited := 1 + descendAtLeast(n.right, threshold, yield)
	if n.key < threshold {
		return visited
	}
	yield(n.key)
	return visited + descendAtLeast(n.left, threshold, yield)
}

// KthSmallest returns the node holding the k-th smallest key (k is 1-based),
// in O(height) steps using the subtree sizes. It fails with ErrEmptyTree on an
// empty tree and with ErrOutOfRange if k is not in [1, Size()].
func (t *Tree[K]) KthSmallest(k int) (*Node[K], error) {
	if t.root == nil {
		return nil, errors.Wrapf(ErrEmptyTree, "kth smallest (k=%d)", k)
	}
	if k < 1 || uint64(k) > t.root.size {
		return nil, errors.Wrapf(ErrOutOfRange, "k=%d, size=%d", k, t.root.size)
	}
	var rank = uint64(k)
	var n = t.root
	for {
		leftSize := n.left.Size()
		if rank == leftSize+1 {
			return n, nil
		}
		if rank <= leftSize {
			n = n.left
		} else {
			rank = rank - leftSize - 1
			n = n.right
		}
		if n == nil {
			// only reachable if the size annotations are corrupt
			return nil, errors.Wrapf(ErrOutOfRange, "k=%d: sizes inconsistent", k)
		}
	}
}

// Rank returns the 1-based position of key in ascending order, the inverse
// of KthSmallest. The boolean is false if key is not present.
func (t *Tree[K]) Rank(key K) (int, bool) {
	var rank = uint64(0)
	var n = t.root
	for n != nil {
		if key < n.key {
			n = n.left
		} else if n.key < key {
			rank += n.left.Size() + 1
			n = n.right
		} else {
			return int(rank + n.left.Size() + 1), true
		}
	}
	return 0, false
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Size())
	todo := newStack[*Node[K]]()
	var n = t.root
	for n != nil || todo.len() > 0 {
		for n != nil {
			todo.push(n)
			n = n.left
		}
		n, _ = todo.pop()
		keys = append(keys, n.key)
		n = n.right
	}
	return keys
}

// Levels returns the keys grouped by depth, root first, each level ordered
// left to right.
func (t *Tree[K]) Levels() [][]K {
	var levels [][]K
	if t.root == nil {
		return levels
	}
	q := newQueue[*Node[K]]()
	q.push(t.root)
	for q.len() > 0 {
		width := q.len()
		level := make([]K, 0, width)
		for i := 0; i < width; i++ {
			n, _ := q.pop()
			level = append(level, n.key)
			if n.left != nil {
				q.push(n.left)
			}
			if n.right != nil {
				q.push(n.right)
			}
		}
		levels = append(levels, level)
	}
	return levels
}
