package bintree

import "errors"

var (
	// ErrNoKeys is returned by InsertAll when it is given no keys.
	ErrNoKeys = errors.New("bintree: at least one key should be given to insert")

	// ErrNotChild signals a broken tree: a node was to be replaced in a
	// parent that does not hold it as a direct child.
	ErrNotChild = errors.New("bintree: node to replace is not a direct child of its parent")

	// ErrInvalidOrder is returned by Walk when the order is not a permutation
	// of Self, LeftSubtree and RightSubtree.
	ErrInvalidOrder = errors.New("bintree: traversal order must be a permutation of self, left and right")
)
