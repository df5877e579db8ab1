// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordered implements in-memory ordered containers:
// [Map], [Set] and [MultiSet].
// All three are backed by the AVL tree in package [github.com/jba/ordered/avl].
//
// Containers are created with NewX for keys with a standard Go ordering
// ([cmp.Ordered]) or NewXFunc for arbitrary keys and a comparison function.
// Their zero values are not ready to use.
//
// An [Iterator] refers to a position in the tree. Inserting or erasing
// elements may rotate the tree, which moves elements between positions,
// so an Iterator must not be used after its container has been modified.
// Replacing a value with [Map.Set] or through [Map.Index] is not a
// modification in this sense.
//
// The containers are not safe for concurrent use.
package ordered

import "errors"

var (
	// ErrKeyNotFound is returned when a lookup requires a key that is absent.
	ErrKeyNotFound = errors.New("ordered: key not found")

	// ErrEmpty is returned when an operation requires an element
	// and the container has none.
	ErrEmpty = errors.New("ordered: container is empty")
)
