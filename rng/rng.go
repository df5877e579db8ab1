// Package rng provides single-key bounds: the lower end of a span of ordered values.
package rng

import (
	"fmt"
	"strings"
)

// Bound is the lower end of a span of values of type T, open towards +∞.
// T need not be ordered; that is, it is not constrained by [cmp.Ordered].
// The ordering is supplied by the caller of [Bound.Admits].
//
// The zero Bound admits every value.
type Bound[T any] struct {
	key       T
	present   bool
	inclusive bool
}

func (b Bound[T]) String() string {
	var s strings.Builder
	if !b.present {
		s.WriteString("(-∞")
	} else {
		if b.inclusive {
			s.WriteByte('[')
		} else {
			s.WriteByte('(')
		}
		fmt.Fprint(&s, b.key)
	}
	s.WriteString(", ∞)")
	return s.String()
}

// Key returns the bounding value and reports whether b has one.
func (b Bound[T]) Key() (v T, present bool) { return b.key, b.present }

func (b Bound[T]) IsInclusive() bool { return b.inclusive }

// [t, inf)
func From[T any](t T) Bound[T] {
	return Bound[T]{key: t, present: true, inclusive: true}
}

// (t, inf)
func Above[T any](t T) Bound[T] {
	return Bound[T]{key: t, present: true}
}

// Admits reports whether v lies within b under the ordering cmp.
func (b Bound[T]) Admits(cmp func(T, T) int, v T) bool {
	if !b.present {
		return true
	}
	c := cmp(v, b.key)
	if b.inclusive {
		return c >= 0
	}
	return c > 0
}
