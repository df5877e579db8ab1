// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

// Insert adds key with value val according to t's policy.
// It returns the node holding the new entry and true; or, if the policy is
// [Unique] and key is already present, the existing node and false.
// In the latter case the existing value is left unchanged.
func (t *Tree[K, V]) Insert(key K, val V) (*Node[K, V], bool) {
	return t.insertNode(key, val, t.policy == Multi)
}

// InsertUnique inserts as if t's policy were [Unique].
func (t *Tree[K, V]) InsertUnique(key K, val V) (*Node[K, V], bool) {
	return t.insertNode(key, val, false)
}

// InsertMulti inserts as if t's policy were [Multi]. It always adds a node.
func (t *Tree[K, V]) InsertMulti(key K, val V) *Node[K, V] {
	x, _ := t.insertNode(key, val, true)
	return x
}

func (t *Tree[K, V]) insertNode(key K, val V, multi bool) (*Node[K, V], bool) {
	n := &Node[K, V]{key: key, val: val}
	t.track = n
	root, found := t.insert(t.root, n, multi)
	t.setRoot(root)
	x := t.track
	t.track = nil
	if found != nil {
		return found, false
	}
	return x, true
}

// insert attaches n below x and rebalances x on the way back up.
// It returns the root of the subtree, which is x unless x is nil.
// If multi is false and a node with n's key exists, that node is
// returned as found and the tree is left unchanged.
func (t *Tree[K, V]) insert(x, n *Node[K, V], multi bool) (root, found *Node[K, V]) {
	if x == nil {
		return n, nil
	}
	c := t.cmp(n.key, x.key)
	if c == 0 && !multi {
		return x, x
	}
	if c < 0 {
		var l *Node[K, V]
		l, found = t.insert(x.left, n, multi)
		x.setLeft(l)
	} else {
		var r *Node[K, V]
		r, found = t.insert(x.right, n, multi)
		x.setRight(r)
	}
	if found != nil {
		return x, found
	}
	t.rebalance(x)
	return x, nil
}
