// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

import "github.com/jba/ordered/rng"

// Find returns a node whose key equals key, or nil if there is none.
// When t holds several equal keys, any one of them may be returned.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	x := t.root
	for x != nil {
		c := t.cmp(key, x.key)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// Seek returns the first node in order whose key b admits, or nil.
func (t *Tree[K, V]) Seek(b rng.Bound[K]) *Node[K, V] {
	var found *Node[K, V]
	x := t.root
	for x != nil {
		if b.Admits(t.cmp, x.key) {
			found = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return found
}

// LowerBound returns the first node with a key ≥ key, or nil.
func (t *Tree[K, V]) LowerBound(key K) *Node[K, V] {
	return t.Seek(rng.From(key))
}

// UpperBound returns the first node with a key > key, or nil.
func (t *Tree[K, V]) UpperBound(key K) *Node[K, V] {
	return t.Seek(rng.Above(key))
}

// Count returns the number of nodes whose key equals key.
// It visits every node of t.
func (t *Tree[K, V]) Count(key K) int {
	return t.root.count(t.cmp, key)
}

func (x *Node[K, V]) count(cmp func(K, K) int, key K) int {
	if x == nil {
		return 0
	}
	n := x.left.count(cmp, key) + x.right.count(cmp, key)
	if cmp(x.key, key) == 0 {
		n++
	}
	return n
}

// First returns the node with the smallest key, or nil if t is empty.
func (t *Tree[K, V]) First() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.minNode()
}

// Last returns the node with the largest key, or nil if t is empty.
func (t *Tree[K, V]) Last() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.maxNode()
}

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *Node[K, V]) minNode() *Node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *Node[K, V]) maxNode() *Node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}
