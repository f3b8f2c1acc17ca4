package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jmcomets/cs-exercises/bintree"
)

// DeleteSuite runs the deletion cases on both node variants.
type DeleteSuite struct {
	suite.Suite
	opts []bintree.Option
}

func (s *DeleteSuite) newTree(keys ...int) *bintree.Tree[int] {
	return bintree.New(keys, s.opts...)
}

func (s *DeleteSuite) check(tree *bintree.Tree[int]) {
	checkInvariant(s.T(), tree.Less(), tree.Root())
	if tree.ParentLinks() {
		checkParents(s.T(), tree)
	}
}

// TestEmpty verifies deleting from an empty tree is a no-op.
func (s *DeleteSuite) TestEmpty() {
	tree := s.newTree()
	ok, err := tree.Delete(1)
	require.NoError(s.T(), err)
	s.False(ok)
	s.True(tree.Empty())
}

// TestSingleRoot verifies deleting the only node empties the tree.
func (s *DeleteSuite) TestSingleRoot() {
	tree := s.newTree(42)
	ok, err := tree.Delete(42)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Nil(tree.Root())
}

// TestLeaf detaches a leaf from its parent.
func (s *DeleteSuite) TestLeaf() {
	tree := s.newTree(2, 1, 3)
	leaf := tree.Search(1)

	ok, err := tree.Delete(1)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Nil(tree.Root().Left())
	s.Nil(leaf.Parent())
	s.Equal([]int{2, 3}, bintree.Keys(tree.InOrder(false)))
	s.check(tree)
}

// TestOneChild splices the only child into the deleted node's place.
func (s *DeleteSuite) TestOneChild() {
	//   5
	//  3
	//   4
	tree := s.newTree(5, 3, 4)
	four := tree.Search(4)

	ok, err := tree.Delete(3)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Same(four, tree.Root().Left())
	if tree.ParentLinks() {
		s.Same(tree.Root(), four.Parent())
	}
	s.check(tree)
}

// TestRootWithOneChild promotes the child to root.
func (s *DeleteSuite) TestRootWithOneChild() {
	tree := s.newTree(1, 2, 3)
	two := tree.Search(2)

	ok, err := tree.Delete(1)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Same(two, tree.Root())
	s.Nil(two.Parent())
	s.Equal([]int{2, 3}, bintree.Keys(tree.PreOrder()))
	s.check(tree)
}

// TestTwoChildren replaces the key with the in-order successor.
func (s *DeleteSuite) TestTwoChildren() {
	//        8
	//    4       12
	//  2   6   10  14
	//         9  11
	tree := s.newTree(8, 4, 12, 2, 6, 10, 14, 9, 11)
	root := tree.Root()

	ok, err := tree.Delete(8)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Same(root, tree.Root(), "root node is reused")
	s.Equal(9, tree.Root().Key())
	s.Nil(tree.Search(10).Left())
	s.Equal(8, tree.Len())
	s.Equal([]int{2, 4, 6, 9, 10, 11, 12, 14}, bintree.Keys(tree.InOrder(false)))
	s.check(tree)
}

// TestTwoChildrenSuccessorIsRightChild covers a successor with no left
// subtree directly below the deleted node.
func (s *DeleteSuite) TestTwoChildrenSuccessorIsRightChild() {
	tree := s.newTree(4, 2, 6, 7)

	ok, err := tree.Delete(4)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Equal(6, tree.Root().Key())
	s.Equal(7, tree.Root().Right().Key())
	s.Nil(tree.Root().Right().Right())
	s.check(tree)
}

// TestAbsent leaves the structure untouched.
func (s *DeleteSuite) TestAbsent() {
	tree := s.newTree(4, 2, 6, 1, 3)
	before := shape(tree.Root())

	ok, err := tree.Delete(5)
	require.NoError(s.T(), err)
	s.False(ok)
	s.Equal(before, shape(tree.Root()))
}

// TestDuplicate removes a single instance of a repeated key.
func (s *DeleteSuite) TestDuplicate() {
	tree := s.newTree(3, 3, 1, 3)

	ok, err := tree.Delete(3)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Equal([]int{1, 3, 3}, bintree.Keys(tree.InOrder(false)))
	s.NotNil(tree.Search(3))
	s.check(tree)
}

func TestDeleteSuite(t *testing.T) {
	suite.Run(t, new(DeleteSuite))
}

func TestDeleteSuiteWithParentLinks(t *testing.T) {
	suite.Run(t, &DeleteSuite{opts: []bintree.Option{bintree.WithParentLinks()}})
}
