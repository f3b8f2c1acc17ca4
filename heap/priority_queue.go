package heap

// PriorityQueue pops elements in heap order: the element that comes before
// all others first. Elements that tie come out in no particular order.
type PriorityQueue[T any] struct {
	elements []T
	before   func(a, b T) bool
}

func NewPriorityQueue[T any](before func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		elements: []T{},
		before:   before,
	}
}

func (q *PriorityQueue[T]) Len() int {
	return len(q.elements)
}

func (q *PriorityQueue[T]) Push(x T) {
	q.elements = append(q.elements, x)
	SiftUp(q.elements, q.before, 0, len(q.elements)-1)
}

// Peek returns the top element without removing it. The boolean is false if
// the queue is empty.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if len(q.elements) == 0 {
		var zero T
		return zero, false
	}
	return q.elements[0], true
}

// Pop removes and returns the top element. The boolean is false if the queue
// is empty.
func (q *PriorityQueue[T]) Pop() (T, bool) {
	var zero T
	if len(q.elements) == 0 {
		return zero, false
	}
	last := len(q.elements) - 1
	top := q.elements[0]
	q.elements[0] = q.elements[last]
	q.elements[last] = zero
	q.elements = q.elements[:last]
	if last > 0 {
		SiftDown(q.elements, q.before, 0, last-1)
	}
	return top, true
}
