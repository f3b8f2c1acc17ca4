package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/jmcomets/cs-exercises/internal/queue"
)

func QuickSort[T constraints.Ordered](s []T) {
	QuickSortFunc(s, Less[T])
}

type span struct {
	lo, hi int
}

// QuickSortFunc sorts s in place. Pending ranges are kept on an explicit
// stack, smaller range on top, so the stack stays logarithmic in len(s).
func QuickSortFunc[T any](s []T, less func(a, b T) bool) {
	pending := queue.NewStack[span]()
	pending.Push(span{0, len(s) - 1})
	for {
		r, ok := pending.Pop()
		if !ok {
			break
		}
		if r.lo >= r.hi {
			continue
		}
		p := partition(s, less, r.lo, r.hi)
		left, right := span{r.lo, p - 1}, span{p + 1, r.hi}
		if left.hi-left.lo < right.hi-right.lo {
			pending.Push(right)
			pending.Push(left)
		} else {
			pending.Push(left)
			pending.Push(right)
		}
	}
}

// partition places the median of s[lo], s[mid], s[hi] at its final index p,
// with smaller elements before it and the rest after, and returns p.
func partition[T any](s []T, less func(a, b T) bool, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if less(s[mid], s[lo]) {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if less(s[hi], s[lo]) {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if less(s[mid], s[hi]) {
		s[mid], s[hi] = s[hi], s[mid]
	}
	pivot := s[hi]
	var i = lo
	for j := lo; j < hi; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}
