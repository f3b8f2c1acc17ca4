package bintree_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/jmcomets/cs-exercises/bintree"
)

// small keys make duplicates likely
func keysGenerator() *rapid.Generator[[]int] {
	return rapid.SliceOf(rapid.IntRange(-20, 20))
}

func optionsGenerator() *rapid.Generator[[]bintree.Option] {
	return rapid.Custom(func(t *rapid.T) []bintree.Option {
		if rapid.Bool().Draw(t, "parentLinks") {
			return []bintree.Option{bintree.WithParentLinks()}
		}
		return nil
	})
}

func TestInvariantProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		keys := keysGenerator().Draw(t, "keys")
		tree := bintree.New(keys, optionsGenerator().Draw(t, "opts")...)

		checkInvariant(t, tree.Less(), tree.Root())
		assert.Equal(len(keys), tree.Len())

		inOrder := bintree.Keys(tree.InOrder(false))
		assert.ElementsMatch(keys, inOrder)
		assert.True(slices.IsSorted(inOrder), "in-order traversal is not sorted")

		reversed := bintree.Keys(tree.InOrder(true))
		slices.Reverse(reversed)
		assert.Equal(inOrder, reversed)

		if tree.ParentLinks() {
			checkParents(t, tree)
		}
	})
}

func TestCustomComparatorProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := keysGenerator().Draw(t, "keys")
		desc := func(a, b int) bool { return a > b }
		tree := bintree.NewFunc(desc, keys)

		checkInvariant(t, tree.Less(), tree.Root())
		inOrder := bintree.Keys(tree.InOrder(false))
		assert.True(t, slices.IsSortedFunc(inOrder, func(a, b int) int { return b - a }),
			"in-order traversal is not non-increasing: %v", inOrder)
	})
}

func TestMinMaxProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		keys := keysGenerator().Draw(t, "keys")
		tree := bintree.New(keys)

		if len(keys) == 0 {
			assert.Nil(tree.Min())
			assert.Nil(tree.Max())
			return
		}
		inOrder := bintree.Keys(tree.InOrder(false))
		assert.Equal(inOrder[0], tree.Min().Key())
		assert.Equal(inOrder[len(inOrder)-1], tree.Max().Key())
		assert.Equal(slices.Min(keys), tree.Min().Key())
		assert.Equal(slices.Max(keys), tree.Max().Key())
	})
}

func TestInsertAllProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		keys := rapid.SliceOfN(rapid.IntRange(-20, 20), 1, -1).Draw(t, "keys")
		tree := bintree.New[int](nil)

		nodes, err := tree.InsertAll(keys...)
		assert.NoError(err)
		var got []int
		for _, n := range nodes {
			got = append(got, n.Key())
		}
		assert.Equal(keys, got)
	})
}

func TestDeleteProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		keys := keysGenerator().Draw(t, "keys")
		tree := bintree.New(keys, optionsGenerator().Draw(t, "opts")...)
		key := rapid.IntRange(-25, 25).Draw(t, "key")

		before := shape(tree.Root())
		present := slices.Contains(keys, key)
		ok, err := tree.Delete(key)
		assert.NoError(err)
		assert.Equal(present, ok)

		if !present {
			assert.Equal(before, shape(tree.Root()), "deleting an absent key changed the tree")
			return
		}
		assert.Equal(len(keys)-1, tree.Len())
		checkInvariant(t, tree.Less(), tree.Root())
		if tree.ParentLinks() {
			checkParents(t, tree)
		}

		want := slices.Clone(keys)
		want = slices.Delete(want, slices.Index(want, key), slices.Index(want, key)+1)
		assert.ElementsMatch(want, bintree.Keys(tree.InOrder(false)))
	})
}

func TestDeleteEverythingProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := keysGenerator().Draw(t, "keys")
		tree := bintree.New(keys, bintree.WithParentLinks())
		order := rapid.Permutation(keys).Draw(t, "order")

		for i, key := range order {
			ok, err := tree.Delete(key)
			assert.NoError(t, err)
			assert.True(t, ok, "key %d", key)
			assert.Equal(t, len(keys)-i-1, tree.Len())
			checkInvariant(t, tree.Less(), tree.Root())
			checkParents(t, tree)
		}
		assert.True(t, tree.Empty())
	})
}
