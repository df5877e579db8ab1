// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered

// Verify checks the balance, ordering and links of m's tree.
// A non-nil error wraps avl.ErrCorrupt and indicates a bug in this package.
func (m *Map[K, V]) Verify() error { return m.t.Check() }

// Dump renders m's tree as nested (key left right) lists.
func (m *Map[K, V]) Dump() string { return m.t.Dump() }

// Height returns the height of m's tree, or -1 if m is empty.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// Verify checks the balance, ordering and links of s's tree.
func (s *Set[K]) Verify() error { return s.t.Check() }

// Dump renders s's tree as nested (key left right) lists.
func (s *Set[K]) Dump() string { return s.t.Dump() }

// Height returns the height of s's tree, or -1 if s is empty.
func (s *Set[K]) Height() int { return s.t.Height() }

// Verify checks the balance, ordering and links of s's tree.
func (s *MultiSet[K]) Verify() error { return s.t.Check() }

// Dump renders s's tree as nested (key left right) lists.
func (s *MultiSet[K]) Dump() string { return s.t.Dump() }

// Height returns the height of s's tree, or -1 if s is empty.
func (s *MultiSet[K]) Height() int { return s.t.Height() }
