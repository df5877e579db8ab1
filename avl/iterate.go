// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

import "iter"

// Next returns the in-order successor of x, or nil if x is the last node
// or has been removed from its tree.
func (x *Node[K, V]) Next() *Node[K, V] {
	if x.detached() {
		return nil
	}
	if x.right == nil {
		for x.parent != nil && x.parent.right == x {
			x = x.parent
		}
		return x.parent
	}
	return x.right.minNode()
}

// Prev returns the in-order predecessor of x, or nil if x is the first node
// or has been removed from its tree.
func (x *Node[K, V]) Prev() *Node[K, V] {
	if x.detached() {
		return nil
	}
	if x.left == nil {
		for x.parent != nil && x.parent.left == x {
			x = x.parent
		}
		return x.parent
	}
	return x.left.maxNode()
}

// All returns an iterator over t from smallest to largest key.
// Equal keys are visited in insertion order.
// t must not be modified during the iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := t.First(); x != nil && yield(x.key, x.val); {
			x = x.Next()
		}
	}
}

// Backward returns an iterator over t from largest to smallest key.
// t must not be modified during the iteration.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := t.Last(); x != nil && yield(x.key, x.val); {
			x = x.Prev()
		}
	}
}
