package bst

import "github.com/pkg/errors"

var (
	// ErrEmptyTree is returned by queries that have no answer on a tree with
	// no nodes (MinMax, KthSmallest).
	ErrEmptyTree = errors.New("bst: empty tree")
	// ErrOutOfRange is returned by KthSmallest when k is not in [1, Size()].
	ErrOutOfRange = errors.New("bst: rank out of range")
)
