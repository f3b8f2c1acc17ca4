package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/jmcomets/cs-exercises/bintree"
)

func TreeSort[T constraints.Ordered](s []T) []T {
	return TreeSortFunc(s, Less[T])
}

// TreeSortFunc returns the elements of s sorted by less, leaving s alone. The
// elements are inserted one by one into a search tree ordered by less and read
// back in order; equal elements keep their relative order.
func TreeSortFunc[T any](s []T, less func(a, b T) bool) []T {
	tree := bintree.NewFunc(less, s)
	return bintree.Keys(tree.InOrder(false))
}
