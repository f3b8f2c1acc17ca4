// Package sorting implements comparison sorts over slices.
//
// Every sort comes in two forms: one for ordered element types, sorting in
// increasing order, and a Func form taking a less predicate. Passing Greater
// sorts in decreasing order.
package sorting

import "golang.org/x/exp/constraints"

func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

func Greater[T constraints.Ordered](a, b T) bool {
	return a > b
}
