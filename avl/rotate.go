// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

// safeHeight returns the cached height of x, or -1 if x is nil.
func (x *Node[K, V]) safeHeight() int {
	if x == nil {
		return -1
	}
	return x.height
}

// fix recomputes the cached height of x from its children.
func (x *Node[K, V]) fix() {
	x.height = 1 + max(x.left.safeHeight(), x.right.safeHeight())
}

// balance returns height(right) - height(left).
func (x *Node[K, V]) balance() int {
	if x == nil {
		return 0
	}
	return x.right.safeHeight() - x.left.safeHeight()
}

func (x *Node[K, V]) setLeft(y *Node[K, V]) {
	x.left = y
	if y != nil {
		y.parent = x
	}
}

func (x *Node[K, V]) setRight(y *Node[K, V]) {
	x.right = y
	if y != nil {
		y.parent = x
	}
}

func (t *Tree[K, V]) setRoot(x *Node[K, V]) {
	t.root = x
	if x != nil {
		x.parent = nil
	}
}

// swapPayload exchanges the keys and values of a and b.
func (t *Tree[K, V]) swapPayload(a, b *Node[K, V]) {
	a.key, b.key = b.key, a.key
	a.val, b.val = b.val, a.val
	switch t.track {
	case a:
		t.track = b
	case b:
		t.track = a
	}
}

// rotateRight rotates the subtree at y,
// turning (y (x a b) c) into (x a (y b c)).
// The node object at y's position stays there and takes over x's payload;
// the node object x moves down to the right and takes over y's payload.
func (t *Tree[K, V]) rotateRight(y *Node[K, V]) {
	x := y.left
	if x == nil {
		panic("corrupt avl")
	}
	t.swapPayload(y, x)
	a, b, c := x.left, x.right, y.right
	y.setLeft(a)
	x.setLeft(b)
	x.setRight(c)
	y.setRight(x)
	x.fix()
	y.fix()
}

// rotateLeft rotates the subtree at x,
// turning (x a (y b c)) into (y (x a b) c).
// As with rotateRight, node objects keep their positions' identity
// and the payloads move.
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	y := x.right
	if y == nil {
		panic("corrupt avl")
	}
	t.swapPayload(x, y)
	a, b, c := x.left, y.left, y.right
	x.setRight(c)
	y.setLeft(a)
	y.setRight(b)
	x.setLeft(y)
	y.fix()
	x.fix()
}

// rebalance recomputes the height of x and restores the AVL condition at x
// with a single or double rotation. The children of x must already be balanced.
func (t *Tree[K, V]) rebalance(x *Node[K, V]) {
	x.fix()
	switch x.balance() {
	case -2:
		if x.left.balance() > 0 {
			t.rotateLeft(x.left)
		}
		t.rotateRight(x)
	case +2:
		if x.right.balance() < 0 {
			t.rotateRight(x.right)
		}
		t.rotateLeft(x)
	}
}
