// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/jba/ordered/avl"
)

// An Entry is a key/value pair, used to populate a [Map].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// A Map is a map[K]V ordered by its keys. Each key appears at most once.
type Map[K, V any] struct {
	t *avl.Tree[K, V]
}

// NewMap returns a Map ordered according to K's standard Go ordering,
// holding entries. Later entries with a key already seen are ignored.
func NewMap[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	return newMap(avl.New[K, V](avl.Unique), entries)
}

// NewMapFunc returns a Map ordered according to cmp, holding entries.
// Later entries with a key already seen are ignored.
func NewMapFunc[K, V any](cmp func(K, K) int, entries ...Entry[K, V]) *Map[K, V] {
	return newMap(avl.NewFunc[K, V](cmp, avl.Unique), entries)
}

func newMap[K, V any](t *avl.Tree[K, V], entries []Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{t: t}
	for _, e := range entries {
		m.t.Insert(e.Key, e.Value)
	}
	return m
}

// Insert adds key with val if key is not present, and reports whether it did.
// The returned iterator refers to the element with key in either case.
// An existing value is not changed; use [Map.Set] for that.
func (m *Map[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	x, added := m.t.Insert(key, val)
	return iterator(m.t, x), added
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *Map[K, V]) Set(key K, val V) (old V, added bool) {
	if x := m.t.Find(key); x != nil {
		old = x.Value()
		x.SetValue(val)
		return old, false
	}
	m.t.Insert(key, val)
	return old, true
}

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if x := m.t.Find(key); x != nil {
		return x.Value(), true
	}
	var zero V
	return zero, false
}

// At returns the value of m[key].
// If key is absent, At returns an error wrapping [ErrKeyNotFound]
// and m is unchanged.
func (m *Map[K, V]) At(key K) (V, error) {
	if x := m.t.Find(key); x != nil {
		return x.Value(), nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Index returns a pointer to the value of m[key], first adding key
// with the zero value if it is absent.
// The pointer must not be used after m is next modified by an insertion
// or erasure.
func (m *Map[K, V]) Index(key K) *V {
	x := m.t.Find(key)
	if x == nil {
		var zero V
		x, _ = m.t.Insert(key, zero)
	}
	return x.ValuePtr()
}

// Contains reports whether key is in m.
func (m *Map[K, V]) Contains(key K) bool {
	return m.t.Find(key) != nil
}

// Find returns an iterator at key, or the end iterator if key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return iterator(m.t, m.t.Find(key))
}

// Erase deletes m[key] and reports whether it existed.
func (m *Map[K, V]) Erase(key K) bool {
	return m.t.Erase(key)
}

// EraseAt deletes the element at it. It does nothing if it is not valid.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) {
	if it.Valid() {
		m.t.Erase(it.Key())
	}
}

// Merge inserts each entry of src whose key is not in m.
// src is not modified.
func (m *Map[K, V]) Merge(src *Map[K, V]) {
	if src == m {
		return
	}
	for k, v := range src.t.All() {
		m.t.InsertUnique(k, v)
	}
}

// Swap exchanges the contents of m and other.
// Iterators stay with the elements they refer to.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.t, other.t = other.t, m.t
}

// Len returns the number of entries in m. It takes linear time.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Empty reports whether m has no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Empty() }

// Clear deletes all entries of m.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Clone returns a copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.Clone()}
}

// Begin returns an iterator at the entry with the smallest key.
// It is the end iterator if m is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] { return iterator(m.t, m.t.First()) }

// End returns the iterator past the last entry.
func (m *Map[K, V]) End() Iterator[K, V] { return iterator(m.t, nil) }

// Min returns the entry with the smallest key, or [ErrEmpty].
func (m *Map[K, V]) Min() (K, V, error) {
	return entryOf(m.t.First())
}

// Max returns the entry with the largest key, or [ErrEmpty].
func (m *Map[K, V]) Max() (K, V, error) {
	return entryOf(m.t.Last())
}

func entryOf[K, V any](x *avl.Node[K, V]) (K, V, error) {
	if x == nil {
		var (
			k K
			v V
		)
		return k, v, ErrEmpty
	}
	return x.Key(), x.Value(), nil
}

// All returns an iterator over the map m from smallest to largest key.
// m must not be modified during the iteration, except by [Map.Set]
// on keys already present.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.t.All()
}

// Backward returns an iterator over the map m from largest to smallest key.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.t.Backward()
}

// Keys returns an iterator over the keys of m in increasing order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}
