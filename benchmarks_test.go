// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// These benchmarks are based on the ones in github.com/google/btree.

package ordered

import (
	"math/rand/v2"
	"sort"
	"testing"
)

const benchmarkTreeSize = 10_000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		m := NewMap[int, int]()
		for _, item := range insertP {
			m.Set(item, item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkMultiSetInsert(b *testing.B) {
	b.StopTimer()
	insertP := make([]int, benchmarkTreeSize)
	for i := range insertP {
		insertP[i] = rand.IntN(benchmarkTreeSize / 10)
	}
	b.StartTimer()
	i := 0
	for i < b.N {
		s := NewMultiSet[int]()
		for _, item := range insertP {
			s.Insert(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func randMap(size int) (*Map[int, int], []int) {
	insertP := rand.Perm(size)
	return buildMap(insertP), insertP
}

func buildMap(els []int) *Map[int, int] {
	m := NewMap[int, int]()
	for _, item := range els {
		m.Set(item, item)
	}
	return m
}

func BenchmarkLowerBound(b *testing.B) {
	b.StopTimer()
	size := 100_000
	s := NewMultiSet(rand.Perm(size)...)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		s.LowerBound(i % size)
	}
}

func BenchmarkEraseInsert(b *testing.B) {
	b.StopTimer()
	m, insertP := randMap(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Erase(insertP[i%benchmarkTreeSize])
		m.Set(insertP[i%benchmarkTreeSize], i)
	}
}

func BenchmarkErase(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		m := buildMap(insertP)
		b.StartTimer()
		for _, item := range removeP {
			m.Erase(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		m := buildMap(insertP)
		b.StartTimer()
		for _, item := range removeP {
			m.Get(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkAscend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	m := buildMap(arr)
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		for k := range m.All() {
			if k != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], k)
			}
			j++
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	m := buildMap(rand.Perm(benchmarkTreeSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := m.Begin(); it.Valid(); it = it.Next() {
		}
	}
}
