package sorting

import (
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

func MergeSort[T constraints.Ordered](s []T) {
	MergeSortFunc(s, Less[T])
}

// MergeSortFunc sorts s in place. The sort is stable.
func MergeSortFunc[T any](s []T, less func(a, b T) bool) {
	buf := make([]T, len(s))
	mergeSort(s, buf, less, 0)
}

// ParallelMergeSortFunc is MergeSortFunc, sorting both halves of any range
// longer than threshold on their own threads.
func ParallelMergeSortFunc[T any](s []T, less func(a, b T) bool, threshold int) {
	buf := make([]T, len(s))
	mergeSort(s, buf, less, max(threshold, 1))
}

// mergeSort sorts s using buf (same length) as scratch space. A threshold of
// 0 never spawns.
func mergeSort[T any](s, buf []T, less func(a, b T) bool, threshold int) {
	if len(s) <= 1 {
		return
	}
	mid := len(s) / 2
	if threshold > 0 && len(s) > threshold {
		h := std.Spawn(func() {
			mergeSort(s[:mid], buf[:mid], less, threshold)
		})
		mergeSort(s[mid:], buf[mid:], less, threshold)
		h.Join()
	} else {
		mergeSort(s[:mid], buf[:mid], less, threshold)
		mergeSort(s[mid:], buf[mid:], less, threshold)
	}
	merge(s, buf, less, mid)
}

// merge combines the sorted runs s[:mid] and s[mid:].
func merge[T any](s, buf []T, less func(a, b T) bool, mid int) {
	copy(buf, s)
	var i, j, k = 0, mid, 0
	for i < mid && j < len(s) {
		// take from the right run only when strictly smaller, for stability
		if less(buf[j], buf[i]) {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid])
	copy(s[k:], buf[j:])
}
