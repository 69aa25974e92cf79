// Package bst implements an unbalanced binary search tree whose nodes carry
// subtree sizes, supporting order-statistic queries.
//
// A Tree is not safe for concurrent use; callers sharing one across goroutines
// must serialize all access themselves.
package bst

import (
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// Tree is a handle to the root of a binary search tree. The zero value is an
// empty tree ready to use.
//
// Keys are unique: every key in a node's left subtree is strictly less than
// the node's key and every key in its right subtree strictly greater. The tree
// is never rebalanced, so its shape depends on insertion order.
type Tree[K constraints.Ordered] struct {
	root *Node[K]
}

func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// FromRoot wraps an existing node structure (for example one assembled with
// NewNode) in a Tree. The structure is used as is, not validated.
func FromRoot[K constraints.Ordered](root *Node[K]) *Tree[K] {
	return &Tree[K]{root: root}
}

// Build creates a tree by inserting keys in order. Duplicate keys are skipped.
func Build[K constraints.Ordered](keys []K) *Tree[K] {
	t := New[K]()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

func (t *Tree[K]) Size() uint64 {
	return t.root.Size()
}

func (t *Tree[K]) Empty() bool {
	return t.root == nil
}

// Height returns the number of levels in the tree (0 for an empty tree).
func (t *Tree[K]) Height() int {
	return t.root.height()
}

// Clear drops every node from the tree.
func (t *Tree[K]) Clear() {
	t.root = nil
}

// Insert adds key to the tree as a new leaf. It returns false, leaving the
// tree untouched, if key is already present.
func (t *Tree[K]) Insert(key K) bool {
	if t.Search(key) != nil {
		return false
	}
	if t.root == nil {
		t.root = newLeaf(key)
		return true
	}
	// key is known to be absent, so every node on the path gains a
	// descendant
	var n = t.root
	for {
		n.size = std.SumAssumeNoOverflow(n.size, 1)
		if key < n.key {
			if n.left == nil {
				n.left = newLeaf(key)
				return true
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = newLeaf(key)
				return true
			}
			n = n.right
		}
	}
}

// Search returns the node holding key, or nil if key is not in the tree. The
// node still belongs to the tree.
func (t *Tree[K]) Search(key K) *Node[K] {
	var n = t.root
	for n != nil {
		if key == n.key {
			return n
		}
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

func (t *Tree[K]) Contains(key K) bool {
	return t.Search(key) != nil
}

// Delete removes key from the tree, returning false if it was not present.
func (t *Tree[K]) Delete(key K) bool {
	if t.Search(key) == nil {
		return false
	}
	t.root = t.root.delete(key)
	return true
}
