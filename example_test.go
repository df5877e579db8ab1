// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordered_test

import (
	"errors"
	"fmt"

	"github.com/jba/ordered"
)

func ExampleMap_All() {
	m := ordered.NewMap[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleMap_At() {
	m := ordered.NewMap(ordered.Entry[string, int]{Key: "a", Value: 1})

	_, err := m.At("b")
	fmt.Println(err)
	fmt.Println(errors.Is(err, ordered.ErrKeyNotFound))

	// Output:
	// ordered: key not found: b
	// true
}

func ExampleMap_Index() {
	counts := ordered.NewMap[string, int]()
	for _, w := range []string{"b", "a", "b"} {
		*counts.Index(w)++
	}
	for w, n := range counts.All() {
		fmt.Println(w, n)
	}

	// Output:
	// a 1
	// b 2
}

func ExampleMultiSet_EqualRange() {
	s := ordered.NewMultiSet(10, 13, 13, 25, 24)
	first, last := s.EqualRange(13)
	for it := first; !it.Equal(last); it = it.Next() {
		fmt.Println(it.Key())
	}
	fmt.Println(s.Count(13), s.UpperBound(13).Key())

	// Output:
	// 13
	// 13
	// 2 24
}

func ExampleSet_Insert() {
	s := ordered.NewSet[string]()
	_, added := s.Insert("x")
	fmt.Println(added)
	_, added = s.Insert("x")
	fmt.Println(added, s.Len())

	// Output:
	// true
	// false 1
}
