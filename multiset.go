// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"
	"iter"

	"github.com/jba/ordered/avl"
)

// A MultiSet is an ordered collection of keys in which a key may occur
// more than once. Equal keys are kept together, in insertion order.
type MultiSet[K any] struct {
	t *avl.Tree[K, K]
}

// NewMultiSet returns a MultiSet ordered according to K's standard Go
// ordering, holding keys.
func NewMultiSet[K cmp.Ordered](keys ...K) *MultiSet[K] {
	return newMultiSet(avl.New[K, K](avl.Multi), keys)
}

// NewMultiSetFunc returns a MultiSet ordered according to cmp, holding keys.
func NewMultiSetFunc[K any](cmp func(K, K) int, keys ...K) *MultiSet[K] {
	return newMultiSet(avl.NewFunc[K, K](cmp, avl.Multi), keys)
}

func newMultiSet[K any](t *avl.Tree[K, K], keys []K) *MultiSet[K] {
	s := &MultiSet[K]{t: t}
	for _, k := range keys {
		s.t.Insert(k, k)
	}
	return s
}

// Insert adds an occurrence of key and returns an iterator at it.
func (s *MultiSet[K]) Insert(key K) SetIterator[K] {
	return iterator(s.t, s.t.InsertMulti(key, key))
}

// Count returns the number of occurrences of key.
// It takes time linear in the size of s.
func (s *MultiSet[K]) Count(key K) int { return s.t.Count(key) }

// Contains reports whether key occurs in s.
func (s *MultiSet[K]) Contains(key K) bool { return s.t.Find(key) != nil }

// Find returns an iterator at some occurrence of key,
// or the end iterator if key is absent.
func (s *MultiSet[K]) Find(key K) SetIterator[K] {
	return iterator(s.t, s.t.Find(key))
}

// LowerBound returns an iterator at the first key ≥ key,
// or the end iterator.
func (s *MultiSet[K]) LowerBound(key K) SetIterator[K] {
	return iterator(s.t, s.t.LowerBound(key))
}

// UpperBound returns an iterator at the first key > key,
// or the end iterator.
func (s *MultiSet[K]) UpperBound(key K) SetIterator[K] {
	return iterator(s.t, s.t.UpperBound(key))
}

// EqualRange returns the half-open span [first, last) of the
// occurrences of key. It is empty (first equals last) if key is absent.
func (s *MultiSet[K]) EqualRange(key K) (first, last SetIterator[K]) {
	return s.LowerBound(key), s.UpperBound(key)
}

// Erase removes one occurrence of key and reports whether there was one.
func (s *MultiSet[K]) Erase(key K) bool { return s.t.Erase(key) }

// EraseAt removes one occurrence of the key at it.
// It does nothing if it is not valid.
func (s *MultiSet[K]) EraseAt(it SetIterator[K]) {
	if it.Valid() {
		s.t.Erase(it.Key())
	}
}

// Merge adds every occurrence in src to s. src is not modified.
func (s *MultiSet[K]) Merge(src *MultiSet[K]) {
	for k := range src.t.Clone().All() {
		s.t.InsertMulti(k, k)
	}
}

// Swap exchanges the contents of s and other.
func (s *MultiSet[K]) Swap(other *MultiSet[K]) { s.t, other.t = other.t, s.t }

// Len returns the number of keys in s, counting repetitions.
// It takes linear time.
func (s *MultiSet[K]) Len() int { return s.t.Len() }

// Empty reports whether s has no keys.
func (s *MultiSet[K]) Empty() bool { return s.t.Empty() }

// Clear removes all keys from s.
func (s *MultiSet[K]) Clear() { s.t.Clear() }

// Clone returns a copy of s.
func (s *MultiSet[K]) Clone() *MultiSet[K] { return &MultiSet[K]{t: s.t.Clone()} }

// Begin returns an iterator at the smallest key, or the end iterator.
func (s *MultiSet[K]) Begin() SetIterator[K] { return iterator(s.t, s.t.First()) }

// End returns the iterator past the largest key.
func (s *MultiSet[K]) End() SetIterator[K] { return iterator(s.t, nil) }

// Min returns the smallest key, or [ErrEmpty].
func (s *MultiSet[K]) Min() (K, error) { return keyOf(s.t.First()) }

// Max returns the largest key, or [ErrEmpty].
func (s *MultiSet[K]) Max() (K, error) { return keyOf(s.t.Last()) }

// All returns an iterator over s in increasing order,
// yielding each occurrence of a key.
func (s *MultiSet[K]) All() iter.Seq[K] { return keySeq(s.t.All()) }

// Backward returns an iterator over s in decreasing order.
func (s *MultiSet[K]) Backward() iter.Seq[K] { return keySeq(s.t.Backward()) }
