package bintree

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Less reports whether a strictly precedes b.
type Less[K any] func(a, b K) bool

// Tree is a binary search tree: for every node, keys in its left subtree are
// less than its key and keys in its right subtree are not.
type Tree[K any] struct {
	root        *Node[K]
	less        Less[K]
	parentLinks bool
}

// New returns a tree ordered by the natural < of K, holding keys inserted one
// at a time in the given order.
func New[K constraints.Ordered](keys []K, opts ...Option) *Tree[K] {
	return NewFunc(func(a, b K) bool { return a < b }, keys, opts...)
}

// NewFunc returns a tree ordered by less, holding keys inserted one at a time
// in the given order. The resulting shape only depends on the key sequence.
func NewFunc[K any](less Less[K], keys []K, opts ...Option) *Tree[K] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[K]{less: less, parentLinks: o.ParentLinks}
	for _, key := range keys {
		t.Insert(key)
	}
	return t
}

func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

func (t *Tree[K]) Less() Less[K] {
	return t.less
}

func (t *Tree[K]) ParentLinks() bool {
	return t.parentLinks
}

func (t *Tree[K]) Empty() bool {
	return t.root == nil
}

// Len counts the nodes of the tree.
func (t *Tree[K]) Len() int {
	var n = 0
	for range walkSeq(PreOrder, t.root) {
		n++
	}
	return n
}

func (t *Tree[K]) Height() int {
	return Height(t.root)
}

// Search returns a node holding key, or nil if there is none.
func (t *Tree[K]) Search(key K) *Node[K] {
	return t.SearchFrom(key, t.root)
}

// SearchFrom looks for key in the subtree rooted at start, which may belong
// to any tree ordered compatibly with t.
func (t *Tree[K]) SearchFrom(key K, start *Node[K]) *Node[K] {
	n := start
	for n != nil {
		if t.less(key, n.key) {
			n = n.left
		} else if t.less(n.key, key) {
			n = n.right
		} else {
			return n
		}
	}
	return nil
}

// Insert adds key as a new leaf and returns that node. A key equal to an
// existing one goes to its right.
func (t *Tree[K]) Insert(key K) *Node[K] {
	n := newNode(key, t.parentLinks)
	if t.root == nil {
		t.root = n
		return n
	}
	t.insert(n, t.root)
	return n
}

func (t *Tree[K]) insert(n, at *Node[K]) {
	if t.less(n.key, at.key) {
		if at.left == nil {
			at.setLeft(n)
			return
		}
		t.insert(n, at.left)
		return
	}
	if at.right == nil {
		at.setRight(n)
		return
	}
	t.insert(n, at.right)
}

// InsertAll inserts keys in order and returns the new nodes, one per key,
// even for a single key. Use Insert to get the one node back directly.
func (t *Tree[K]) InsertAll(keys ...K) ([]*Node[K], error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	nodes := make([]*Node[K], 0, len(keys))
	for _, key := range keys {
		nodes = append(nodes, t.Insert(key))
	}
	return nodes, nil
}

// Delete removes one node holding key and reports whether there was one.
// Deleting an absent key leaves the tree untouched.
func (t *Tree[K]) Delete(key K) (bool, error) {
	var parent *Node[K]
	n := t.root
	for n != nil {
		if t.less(key, n.key) {
			parent, n = n, n.left
		} else if t.less(n.key, key) {
			parent, n = n, n.right
		} else {
			break
		}
	}
	if n == nil {
		return false, nil
	}
	if err := t.remove(n, parent); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteAll deletes each key in turn and returns how many nodes were removed.
// It stops at the first error.
func (t *Tree[K]) DeleteAll(keys ...K) (int, error) {
	var removed = 0
	for _, key := range keys {
		ok, err := t.Delete(key)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// remove unlinks n, whose parent is given (nil when n is the root).
func (t *Tree[K]) remove(n, parent *Node[K]) error {
	if n.left != nil && n.right != nil {
		// the in-order successor has no left child, so removing it falls in
		// one of the simpler cases below
		succ, succParent := n.right, n
		for succ.left != nil {
			succ, succParent = succ.left, succ
		}
		n.key = succ.key
		return t.remove(succ, succParent)
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	if err := t.replace(parent, n, child); err != nil {
		return err
	}
	n.release()
	return nil
}

// replace puts child where n was below parent.
func (t *Tree[K]) replace(parent, n, child *Node[K]) error {
	if parent == nil {
		if t.root != n {
			return fmt.Errorf("%w: node %v has no parent but is not the root", ErrNotChild, n.key)
		}
		t.root = child
		if child != nil && child.linked {
			child.parent = nil
		}
		return nil
	}
	switch n {
	case parent.left:
		parent.setLeft(child)
	case parent.right:
		parent.setRight(child)
	default:
		return fmt.Errorf("%w: node %v, parent %v", ErrNotChild, n.key, parent.key)
	}
	return nil
}

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[K]) Min() *Node[K] {
	return t.MinFrom(t.root)
}

// MinFrom returns the node with the smallest key below start.
func (t *Tree[K]) MinFrom(start *Node[K]) *Node[K] {
	return first(t.InOrderFrom(start, false))
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree[K]) Max() *Node[K] {
	return t.MaxFrom(t.root)
}

// MaxFrom returns the node with the largest key below start.
func (t *Tree[K]) MaxFrom(start *Node[K]) *Node[K] {
	return first(t.InOrderFrom(start, true))
}

func first[K any](nodes iter.Seq[*Node[K]]) *Node[K] {
	for n := range nodes {
		return n
	}
	return nil
}

// InOrder walks the tree in key order, or in reverse key order.
func (t *Tree[K]) InOrder(reverse bool) iter.Seq[*Node[K]] {
	return t.InOrderFrom(t.root, reverse)
}

func (t *Tree[K]) InOrderFrom(start *Node[K], reverse bool) iter.Seq[*Node[K]] {
	if reverse {
		return walkSeq(ReverseInOrder, start)
	}
	return walkSeq(InOrder, start)
}

func (t *Tree[K]) PreOrder() iter.Seq[*Node[K]] {
	return t.PreOrderFrom(t.root)
}

func (t *Tree[K]) PreOrderFrom(start *Node[K]) iter.Seq[*Node[K]] {
	return walkSeq(PreOrder, start)
}

func (t *Tree[K]) PostOrder() iter.Seq[*Node[K]] {
	return t.PostOrderFrom(t.root)
}

func (t *Tree[K]) PostOrderFrom(start *Node[K]) iter.Seq[*Node[K]] {
	return walkSeq(PostOrder, start)
}

// TopDown is PreOrder: every node comes before its children.
func (t *Tree[K]) TopDown() iter.Seq[*Node[K]] {
	return t.PreOrder()
}

// BottomUp is PostOrder: every node comes after its children.
func (t *Tree[K]) BottomUp() iter.Seq[*Node[K]] {
	return t.PostOrder()
}

func (t *Tree[K]) LevelOrder() iter.Seq[*Node[K]] {
	return LevelOrder(t.root)
}
