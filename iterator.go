// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered

import "github.com/jba/ordered/avl"

// An Iterator is a position in an ordered container.
// The zero Iterator, like the one returned by End, is past the last element.
//
// An Iterator is invalidated by any insertion or erasure in its container.
type Iterator[K, V any] struct {
	t *avl.Tree[K, V]
	x *avl.Node[K, V]
}

func iterator[K, V any](t *avl.Tree[K, V], x *avl.Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{t: t, x: x}
}

// Valid reports whether it refers to an element.
func (it Iterator[K, V]) Valid() bool { return it.x != nil }

// Key returns the key at it. It panics if it is not valid.
func (it Iterator[K, V]) Key() K { return it.x.Key() }

// Value returns the value at it. It panics if it is not valid.
func (it Iterator[K, V]) Value() V { return it.x.Value() }

// Next returns the iterator for the following element.
// Next of an invalid iterator is itself.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.x == nil {
		return it
	}
	return iterator(it.t, it.x.Next())
}

// Prev returns the iterator for the preceding element.
// Prev of the end iterator is the last element;
// Prev of the first element is the end iterator.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.x == nil {
		if it.t == nil {
			return it
		}
		return iterator(it.t, it.t.Last())
	}
	return iterator(it.t, it.x.Prev())
}

// Equal reports whether it and other refer to the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.x == other.x
}
