package bst

import (
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// Node holds one key of a Tree. Each node exclusively owns its children.
//
// size is the number of nodes in the subtree rooted here, including the node
// itself; it always equals 1 + left.Size() + right.Size().
type Node[K constraints.Ordered] struct {
	key   K
	left  *Node[K]
	right *Node[K]
	size  uint64
}

func newLeaf[K constraints.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, size: 1}
}

// NewNode creates a node with the given children. The children are not
// checked, so this can build trees that violate the search order (IsValidBST
// will report them).
func NewNode[K constraints.Ordered](key K, left, right *Node[K]) *Node[K] {
	size := std.SumAssumeNoOverflow(left.Size(), right.Size())
	return &Node[K]{key: key, left: left, right: right, size: std.SumAssumeNoOverflow(size, 1)}
}

func (n *Node[K]) Key() K {
	return n.key
}

func (n *Node[K]) Left() *Node[K] {
	return n.left
}

func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Size returns the number of nodes in the subtree rooted at n; a nil node has
// size 0.
func (n *Node[K]) Size() uint64 {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *Node[K]) min() *Node[K] {
	var cur = n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

func (n *Node[K]) max() *Node[K] {
	var cur = n
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}

func (n *Node[K]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// delete removes key from the subtree rooted at n and returns the new subtree
// root. key must be present in the subtree.
func (n *Node[K]) delete(key K) *Node[K] {
	if key < n.key {
		n.left = n.left.delete(key)
	} else if n.key < key {
		n.right = n.right.delete(key)
	} else {
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// two children: take over the in-order successor's key, then remove
		// the successor from the right subtree
		succ := n.right.min()
		n.key = succ.key
		n.right = n.right.delete(succ.key)
	}
	n.size--
	return n
}
