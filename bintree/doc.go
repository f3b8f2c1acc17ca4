// Package bintree implements binary search trees keyed by an injected
// ordering predicate, with an order-parameterized traversal engine.
//
// A Tree owns its root and every node owns its children. Trees built with
// WithParentLinks additionally keep a non-owning parent back-reference on
// each node, maintained whenever a child slot is assigned or cleared.
//
// Keys that compare equal are kept: they are inserted to the right of the
// first equal key on the search path, so Search and Delete act on a single,
// unspecified instance of a duplicated key.
//
// Trees are not safe for concurrent use. Mutating a tree (Insert, Delete)
// while ranging over one of its traversals is not allowed.
package bintree
