package bintree

import (
	"iter"

	"github.com/jmcomets/cs-exercises/internal/queue"
)

// Position names one of the three parts of a subtree visited by a traversal.
type Position uint8

const (
	Self Position = iota
	LeftSubtree
	RightSubtree
)

// Order lists, for every node, in which sequence the node itself and its two
// subtrees are visited.
type Order [3]Position

var (
	PreOrder       = Order{Self, LeftSubtree, RightSubtree}
	InOrder        = Order{LeftSubtree, Self, RightSubtree}
	ReverseInOrder = Order{RightSubtree, Self, LeftSubtree}
	PostOrder      = Order{LeftSubtree, RightSubtree, Self}

	// TopDown visits parents before their children.
	TopDown = PreOrder
	// BottomUp visits children before their parents.
	BottomUp = PostOrder
)

// Valid reports whether o mentions each position exactly once.
func (o Order) Valid() bool {
	var seen [3]bool
	for _, p := range o {
		if p > RightSubtree || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// Walk returns the nodes of the subtree rooted at start in the given order.
// The sequence is lazy and can be ranged over any number of times; breaking
// out of it early has no side effects. A nil start yields nothing.
func Walk[K any](order Order, start *Node[K]) (iter.Seq[*Node[K]], error) {
	if !order.Valid() {
		return nil, ErrInvalidOrder
	}
	return walkSeq(order, start), nil
}

func walkSeq[K any](order Order, start *Node[K]) iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		walk(order, start, yield)
	}
}

// walk returns false once yield asked to stop.
func walk[K any](order Order, n *Node[K], yield func(*Node[K]) bool) bool {
	if n == nil {
		return true
	}
	for _, p := range order {
		var ok bool
		switch p {
		case Self:
			ok = yield(n)
		case LeftSubtree:
			ok = walk(order, n.left, yield)
		case RightSubtree:
			ok = walk(order, n.right, yield)
		}
		if !ok {
			return false
		}
	}
	return true
}

// LevelOrder returns the nodes of the subtree rooted at start breadth-first,
// left to right within a level.
func LevelOrder[K any](start *Node[K]) iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		if start == nil {
			return
		}
		pending := queue.NewQueue[*Node[K]]()
		pending.Push(start)
		for {
			n, ok := pending.Pop()
			if !ok {
				return
			}
			if !yield(n) {
				return
			}
			if n.left != nil {
				pending.Push(n.left)
			}
			if n.right != nil {
				pending.Push(n.right)
			}
		}
	}
}

// Keys collects the keys of a node sequence.
func Keys[K any](nodes iter.Seq[*Node[K]]) []K {
	var keys = []K{}
	for n := range nodes {
		keys = append(keys, n.key)
	}
	return keys
}

// Height returns the number of nodes on the longest path from start down to a
// leaf; an empty subtree has height 0.
func Height[K any](start *Node[K]) int {
	if start == nil {
		return 0
	}
	return 1 + max(Height(start.left), Height(start.right))
}
