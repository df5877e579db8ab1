// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInsert(t *testing.T) {
	s := NewSet[int]()
	for i, k := range []int{5, 3, 3, 2, 7, 6, 8, 8} {
		it, added := s.Insert(k)
		assert.Equal(t, k, it.Key())
		assert.Equal(t, k, it.Value())
		assert.Equal(t, i != 2 && i != 7, added, "insert %d", k)
	}
	require.NoError(t, s.t.Check())
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, []int{2, 3, 5, 6, 7, 8}, slices.Collect(s.All()))
	assert.Equal(t, []int{8, 7, 6, 5, 3, 2}, slices.Collect(s.Backward()))
}

func TestSetFunc(t *testing.T) {
	s := NewSetFunc(func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	}, "b", "A", "a", "C")
	assert.Equal(t, []string{"A", "b", "C"}, slices.Collect(s.All()))
	assert.True(t, s.Contains("B"))
}

func TestSetErase(t *testing.T) {
	perm := rand.Perm(50)
	s := NewSet(perm...)
	for i, k := range perm {
		if i%2 == 0 {
			assert.True(t, s.Erase(k))
		}
	}
	assert.False(t, s.Erase(100))
	s.EraseAt(s.Find(perm[1]))
	s.EraseAt(s.End())
	require.NoError(t, s.t.Check())

	var want []int
	for i, k := range perm {
		if i%2 == 1 && i != 1 {
			want = append(want, k)
		}
	}
	slices.Sort(want)
	assert.Equal(t, want, slices.Collect(s.All()))
}

func TestSetMinMax(t *testing.T) {
	s := NewSet[int]()
	_, err := s.Min()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = s.Max()
	assert.ErrorIs(t, err, ErrEmpty)

	s = NewSet(4, 9, 1)
	lo, err := s.Min()
	require.NoError(t, err)
	hi, err := s.Max()
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)
}

func TestSetMergeSwapClone(t *testing.T) {
	a := NewSet(1, 3, 5)
	b := NewSet(2, 3, 4)
	a.Merge(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(a.All()))
	assert.Equal(t, []int{2, 3, 4}, slices.Collect(b.All()))

	c := a.Clone()
	c.Erase(1)
	assert.Equal(t, 5, a.Len())

	a.Swap(b)
	assert.Equal(t, []int{2, 3, 4}, slices.Collect(a.All()))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(b.All()))

	a.Clear()
	assert.True(t, a.Empty())
	assert.True(t, a.Begin().Equal(a.End()))
}
