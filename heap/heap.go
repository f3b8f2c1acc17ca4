// Package heap builds binary heaps in place over slices.
//
// A heap is described by a predicate before(a, b) that holds when a belongs
// closer to the top than b: greater-than for a max-heap, less-than for a
// min-heap. Element i has children 2i+1 and 2i+2.
package heap

import (
	"errors"

	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"
)

var (
	// ErrBadKind is returned by Heapify for a Kind other than Max or Min.
	ErrBadKind = errors.New("heap: kind should be one of (max, min)")

	// ErrBadMethod is returned for a Method other than Down or Up.
	ErrBadMethod = errors.New("heap: method should be one of (up, down)")
)

// Kind selects which element ends up at the top of the heap.
type Kind int

const (
	Max Kind = iota
	Min
)

// Method selects how a heap is built.
//
// Down – sift every internal node down, last one first (linear time).
// Up   – grow the heap one element at a time, sifting each new one up.
type Method int

const (
	Down Method = iota
	Up
)

func parent(child int) int {
	return (child - 1) / 2
}

// SiftUp moves s[end] up towards s[start] until its parent comes before it.
func SiftUp[T any](s []T, before func(a, b T) bool, start, end int) {
	primitive.Assert(end < len(s))
	var child = end
	for child > start {
		p := parent(child)
		if !before(s[child], s[p]) {
			break
		}
		s[p], s[child] = s[child], s[p]
		child = p
	}
}

// SiftDown moves s[start] down within s[start:end+1] until both of its
// children come after it.
func SiftDown[T any](s []T, before func(a, b T) bool, start, end int) {
	primitive.Assert(end < len(s))
	var root = start
	for root*2+1 <= end {
		child := root*2 + 1
		swap := root
		if before(s[child], s[swap]) {
			swap = child
		}
		if child+1 <= end && before(s[child+1], s[swap]) {
			swap = child + 1
		}
		if swap == root {
			break
		}
		s[root], s[swap] = s[swap], s[root]
		root = swap
	}
}

// HeapifyFunc rearranges s into a heap ordered by before.
func HeapifyFunc[T any](s []T, before func(a, b T) bool, method Method) error {
	switch method {
	case Down:
		end := len(s) - 1
		for start := (len(s) - 2) / 2; start >= 0; start-- {
			SiftDown(s, before, start, end)
		}
	case Up:
		for end := 1; end < len(s); end++ {
			SiftUp(s, before, 0, end)
		}
	default:
		return ErrBadMethod
	}
	return nil
}

// Heapify rearranges s into a max-heap or a min-heap.
func Heapify[T constraints.Ordered](s []T, kind Kind, method Method) error {
	switch kind {
	case Max:
		return HeapifyFunc(s, func(a, b T) bool { return a > b }, method)
	case Min:
		return HeapifyFunc(s, func(a, b T) bool { return a < b }, method)
	}
	return ErrBadKind
}

// IsHeap reports whether no element of s comes before its parent.
func IsHeap[T any](s []T, before func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if before(s[i], s[parent(i)]) {
			return false
		}
	}
	return true
}
