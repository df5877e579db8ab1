// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avl implements the height-balanced binary search tree that backs
// the ordered containers in github.com/jba/ordered.
//
// A [Tree] stores key/value pairs under a comparison function and either
// rejects or accepts duplicate keys, according to its [Policy].
// Nodes carry parent pointers, so in-order traversal in either direction
// steps from node to node without an auxiliary stack.
//
// Rotations exchange the key/value payload between two nodes and then
// rewire links, so a node object always keeps its structural position while
// the data it holds may move. Consequently a *[Node] obtained from the tree
// names a position, not a key: after any Insert or Erase it may hold a
// different key, or have been detached. Do not hold a *Node, or an iterator
// derived from one, across a mutation of its tree.
//
// A Tree is not safe for concurrent use. Callers that share a Tree between
// goroutines must synchronize access themselves.
package avl

// See Adelson-Velsky & Landis, "An algorithm for the organization of
// information", and Wirth, Algorithms + Data Structures = Programs.

import "cmp"

// A Policy selects how Insert treats a key that is already present.
type Policy int

const (
	// Unique rejects a key equal to one already in the tree.
	Unique Policy = iota
	// Multi admits equal keys; they are kept adjacent in order of insertion.
	Multi
)

func (p Policy) String() string {
	switch p {
	case Unique:
		return "unique"
	case Multi:
		return "multi"
	default:
		return "Policy(?)"
	}
}

// A Tree is an AVL tree of nodes holding keys of type K and values of type V.
// Use [New] or [NewFunc] to create one.
type Tree[K, V any] struct {
	root   *Node[K, V]
	cmp    func(K, K) int
	policy Policy

	// track follows the payload of the node being inserted
	// through the payload swaps of the rotations.
	track *Node[K, V]
}

// A Node is a node in the tree.
type Node[K, V any] struct {
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	key    K
	val    V
	height int // 0 for a leaf; nil subtrees have height -1
}

// New returns an empty tree ordered according to K's standard Go ordering.
func New[K cmp.Ordered, V any](p Policy) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], p)
}

// NewFunc returns an empty tree ordered according to cmp.
// cmp(a, b) must be negative, zero or positive when a orders before,
// with, or after b.
func NewFunc[K, V any](cmp func(K, K) int, p Policy) *Tree[K, V] {
	if cmp == nil {
		panic("avl: nil comparison function")
	}
	return &Tree[K, V]{cmp: cmp, policy: p}
}

// Policy returns the insertion policy of t.
func (t *Tree[K, V]) Policy() Policy { return t.policy }

// Compare orders two keys the way t does.
func (t *Tree[K, V]) Compare(a, b K) int { return t.cmp(a, b) }

// Root returns the root node of t, or nil if t is empty.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.root }

// Empty reports whether t has no nodes.
func (t *Tree[K, V]) Empty() bool { return t.root == nil }

// Len returns the number of nodes in t.
// The tree keeps no count, so Len takes time proportional to the size of t.
func (t *Tree[K, V]) Len() int { return t.root.size() }

func (x *Node[K, V]) size() int {
	if x == nil {
		return 0
	}
	return 1 + x.left.size() + x.right.size()
}

// Height returns the height of t: -1 when empty, 0 for a single node.
func (t *Tree[K, V]) Height() int { return t.root.safeHeight() }

// Key returns the key held by x.
func (x *Node[K, V]) Key() K { return x.key }

// Value returns the value held by x.
func (x *Node[K, V]) Value() V { return x.val }

// SetValue replaces the value held by x.
func (x *Node[K, V]) SetValue(v V) { x.val = v }

// ValuePtr returns a pointer to the value held by x.
// It remains meaningful only until the next mutation of the tree.
func (x *Node[K, V]) ValuePtr() *V { return &x.val }

// Parent returns the parent of x, or nil if x is the root or detached.
func (x *Node[K, V]) Parent() *Node[K, V] { return x.parent }

// Left returns the left child of x.
func (x *Node[K, V]) Left() *Node[K, V] { return x.left }

// Right returns the right child of x.
func (x *Node[K, V]) Right() *Node[K, V] { return x.right }

// Height returns the cached height of the subtree rooted at x.
func (x *Node[K, V]) Height() int { return x.height }
