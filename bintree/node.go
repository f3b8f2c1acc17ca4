package bintree

// Node is a binary tree node. Its children are owned by it; its parent (only
// tracked for trees built WithParentLinks) is a back-reference used for
// upward navigation.
type Node[K any] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	parent *Node[K]

	// linked is set on nodes that maintain the parent back-reference
	linked bool
}

func newNode[K any](key K, linked bool) *Node[K] {
	return &Node[K]{key: key, linked: linked}
}

func (n *Node[K]) Key() K {
	return n.key
}

func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the node holding n as a child. It is nil for a root, for a
// detached node, and for every node of a tree without parent links.
func (n *Node[K]) Parent() *Node[K] {
	if n == nil {
		return nil
	}
	return n.parent
}

func (n *Node[K]) setLeft(child *Node[K]) {
	n.attach(&n.left, child)
}

func (n *Node[K]) setRight(child *Node[K]) {
	n.attach(&n.right, child)
}

// attach stores child in one of n's slots, detaching whatever the slot held.
func (n *Node[K]) attach(slot **Node[K], child *Node[K]) {
	if n.linked {
		if old := *slot; old != nil && old.parent == n {
			old.parent = nil
		}
		if child != nil {
			child.parent = n
		}
	}
	*slot = child
}

// release forgets n's children without touching their parent links, for a
// node that has just been spliced out and whose children now belong to
// someone else.
func (n *Node[K]) release() {
	n.left = nil
	n.right = nil
}
