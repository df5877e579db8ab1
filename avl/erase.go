// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

// Erase removes one node whose key equals key and reports whether it did.
// Erasing an absent key leaves t unchanged.
func (t *Tree[K, V]) Erase(key K) bool {
	root, removed := t.erase(t.root, key)
	t.setRoot(root)
	if removed == nil {
		return false
	}
	removed.detach()
	return true
}

// erase removes a node with key from the subtree at x and returns the new
// subtree root together with the node object that left the tree.
// A node with two children is not itself unlinked: its in-order successor
// is, and the successor's payload moves into it.
func (t *Tree[K, V]) erase(x *Node[K, V], key K) (root, removed *Node[K, V]) {
	if x == nil {
		return nil, nil
	}
	switch c := t.cmp(key, x.key); {
	case c < 0:
		var l *Node[K, V]
		l, removed = t.erase(x.left, key)
		x.setLeft(l)
	case c > 0:
		var r *Node[K, V]
		r, removed = t.erase(x.right, key)
		x.setRight(r)
	default:
		if x.left == nil {
			return x.right, x
		}
		if x.right == nil {
			return x.left, x
		}
		r, succ := t.eraseMin(x.right)
		x.setRight(r)
		x.key, x.val = succ.key, succ.val
		removed = succ
	}
	if removed == nil {
		return x, nil
	}
	t.rebalance(x)
	return x, removed
}

// eraseMin unlinks the leftmost node of the subtree at x,
// which has no left child, promoting its right child.
func (t *Tree[K, V]) eraseMin(x *Node[K, V]) (root, least *Node[K, V]) {
	if x.left == nil {
		return x.right, x
	}
	l, least := t.eraseMin(x.left)
	x.setLeft(l)
	t.rebalance(x)
	return x, least
}

// detach clears the links of a node that has left the tree.
// Its height becomes -1, marking it deleted.
func (x *Node[K, V]) detach() {
	x.parent = nil
	x.left = nil
	x.right = nil
	x.height = -1
}

func (x *Node[K, V]) detached() bool { return x.height < 0 }
