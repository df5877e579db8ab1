// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"
	"iter"

	"github.com/jba/ordered/avl"
)

// A SetIterator is a position in a [Set] or [MultiSet].
// Its Key and Value are the same.
type SetIterator[K any] = Iterator[K, K]

// A Set is an ordered collection of distinct keys.
// Each key is stored as both key and value of its tree node.
type Set[K any] struct {
	t *avl.Tree[K, K]
}

// NewSet returns a Set ordered according to K's standard Go ordering,
// holding keys.
func NewSet[K cmp.Ordered](keys ...K) *Set[K] {
	return newSet(avl.New[K, K](avl.Unique), keys)
}

// NewSetFunc returns a Set ordered according to cmp, holding keys.
func NewSetFunc[K any](cmp func(K, K) int, keys ...K) *Set[K] {
	return newSet(avl.NewFunc[K, K](cmp, avl.Unique), keys)
}

func newSet[K any](t *avl.Tree[K, K], keys []K) *Set[K] {
	s := &Set[K]{t: t}
	for _, k := range keys {
		s.t.Insert(k, k)
	}
	return s
}

// Insert adds key if it is not present and reports whether it did.
// The returned iterator refers to key in either case.
func (s *Set[K]) Insert(key K) (SetIterator[K], bool) {
	x, added := s.t.Insert(key, key)
	return iterator(s.t, x), added
}

// Contains reports whether key is in s.
func (s *Set[K]) Contains(key K) bool { return s.t.Find(key) != nil }

// Find returns an iterator at key, or the end iterator if key is absent.
func (s *Set[K]) Find(key K) SetIterator[K] {
	return iterator(s.t, s.t.Find(key))
}

// Erase removes key from s and reports whether it was present.
func (s *Set[K]) Erase(key K) bool { return s.t.Erase(key) }

// EraseAt removes the key at it. It does nothing if it is not valid.
func (s *Set[K]) EraseAt(it SetIterator[K]) {
	if it.Valid() {
		s.t.Erase(it.Key())
	}
}

// Merge adds every key of src to s. src is not modified.
func (s *Set[K]) Merge(src *Set[K]) {
	if src == s {
		return
	}
	for k := range src.t.All() {
		s.t.InsertUnique(k, k)
	}
}

// Swap exchanges the contents of s and other.
func (s *Set[K]) Swap(other *Set[K]) { s.t, other.t = other.t, s.t }

// Len returns the number of keys in s. It takes linear time.
func (s *Set[K]) Len() int { return s.t.Len() }

// Empty reports whether s has no keys.
func (s *Set[K]) Empty() bool { return s.t.Empty() }

// Clear removes all keys from s.
func (s *Set[K]) Clear() { s.t.Clear() }

// Clone returns a copy of s.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{t: s.t.Clone()} }

// Begin returns an iterator at the smallest key, or the end iterator.
func (s *Set[K]) Begin() SetIterator[K] { return iterator(s.t, s.t.First()) }

// End returns the iterator past the largest key.
func (s *Set[K]) End() SetIterator[K] { return iterator(s.t, nil) }

// Min returns the smallest key, or [ErrEmpty].
func (s *Set[K]) Min() (K, error) { return keyOf(s.t.First()) }

// Max returns the largest key, or [ErrEmpty].
func (s *Set[K]) Max() (K, error) { return keyOf(s.t.Last()) }

func keyOf[K any](x *avl.Node[K, K]) (K, error) {
	k, _, err := entryOf(x)
	return k, err
}

// All returns an iterator over s in increasing order.
func (s *Set[K]) All() iter.Seq[K] { return keySeq(s.t.All()) }

// Backward returns an iterator over s in decreasing order.
func (s *Set[K]) Backward() iter.Seq[K] { return keySeq(s.t.Backward()) }

func keySeq[K any](seq iter.Seq2[K, K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}
