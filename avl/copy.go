// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

// Clone returns a deep copy of t. The copy shares no nodes with t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{root: t.root.clone(nil), cmp: t.cmp, policy: t.policy}
}

func (x *Node[K, V]) clone(parent *Node[K, V]) *Node[K, V] {
	if x == nil {
		return nil
	}
	c := *x
	x2 := &c
	x2.left = x.left.clone(x2)
	x2.right = x.right.clone(x2)
	x2.parent = parent
	return x2
}

// Clear removes every node from t.
// The nodes are detached children first, so that outstanding
// nodes report no neighbors.
func (t *Tree[K, V]) Clear() {
	t.root.destroy()
	t.root = nil
}

func (x *Node[K, V]) destroy() {
	if x == nil {
		return
	}
	x.left.destroy()
	x.right.destroy()
	x.detach()
}
