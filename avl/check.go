// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by the errors that Check returns.
var ErrCorrupt = errors.New("avl: corrupt tree")

// Check verifies the structure of t: parent links, cached heights,
// the AVL balance condition and the ordering of keys.
// It returns nil if t is well formed.
func (t *Tree[K, V]) Check() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrCorrupt, t.root.key, t.root.parent.key)
	}
	if _, err := t.root.check(nil); err != nil {
		return err
	}
	var prev *Node[K, V]
	for x := t.First(); x != nil; x = x.Next() {
		if prev != nil && t.cmp(prev.key, x.key) > 0 {
			return fmt.Errorf("%w: key %v precedes %v", ErrCorrupt, prev.key, x.key)
		}
		prev = x
	}
	return nil
}

// check verifies the subtree at x and returns its height.
func (x *Node[K, V]) check(parent *Node[K, V]) (int, error) {
	if x == nil {
		return -1, nil
	}
	if x.parent != parent {
		return 0, fmt.Errorf("%w: node %v has wrong parent", ErrCorrupt, x.key)
	}
	lh, err := x.left.check(x)
	if err != nil {
		return 0, err
	}
	rh, err := x.right.check(x)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(lh, rh); x.height != h {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrCorrupt, x.key, x.height, h)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: node %v has balance %d", ErrCorrupt, x.key, b)
	}
	return x.height, nil
}

// Dump returns t as an s-expression: each node is written (key left right)
// and an empty subtree is written nil.
func (t *Tree[K, V]) Dump() string {
	var buf bytes.Buffer
	var walk func(*Node[K, V])
	walk = func(x *Node[K, V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%v ", x.key)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(t.root)
	return buf.String()
}
