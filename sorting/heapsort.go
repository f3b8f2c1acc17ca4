package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/jmcomets/cs-exercises/heap"
)

func HeapSort[T constraints.Ordered](s []T) {
	HeapSortFunc(s, Less[T])
}

// HeapSortFunc sorts s in place: it builds a heap with the last element in
// sort order on top, then repeatedly swaps the top to the end of the shrinking
// heap.
func HeapSortFunc[T any](s []T, less func(a, b T) bool) {
	after := func(a, b T) bool { return less(b, a) }
	for start := (len(s) - 2) / 2; start >= 0; start-- {
		heap.SiftDown(s, after, start, len(s)-1)
	}
	for end := len(s) - 1; end > 0; end-- {
		s[end], s[0] = s[0], s[end]
		heap.SiftDown(s, after, 0, end-1)
	}
}
