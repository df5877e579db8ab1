package workload

import (
	"fmt"
	"strings"

	"github.com/jba/ordered"
)

// container adapts one of the ordered facades to the script operations.
// Query methods return the text of a result line.
type container interface {
	insert(key int, value string) bool
	set(key int, value string) bool
	erase(key int) bool
	find(key int) string
	at(key int) string
	count(key int) int
	lowerBound(key int) string
	upperBound(key int) string
	equalRange(key int) string
	len() int
	list() string
	clear()
	verify() error
	dump() string
	height() int
}

func newContainer(kind string) (container, error) {
	switch kind {
	case KindMap:
		return &mapContainer{m: ordered.NewMap[int, string]()}, nil
	case KindSet:
		return &setContainer{s: ordered.NewSet[int]()}, nil
	case KindMultiSet:
		return &multiSetContainer{s: ordered.NewMultiSet[int]()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownContainer, kind)
	}
}

const notFound = "not found"

func position(it ordered.SetIterator[int]) string {
	if !it.Valid() {
		return "end"
	}
	return fmt.Sprint(it.Key())
}

func join[T any](ts []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, t)
	}
	b.WriteByte(']')
	return b.String()
}

type mapContainer struct {
	m *ordered.Map[int, string]
}

func (c *mapContainer) insert(key int, value string) bool {
	_, added := c.m.Insert(key, value)
	return added
}

func (c *mapContainer) set(key int, value string) bool {
	_, added := c.m.Set(key, value)
	return added
}

func (c *mapContainer) erase(key int) bool { return c.m.Erase(key) }

func (c *mapContainer) find(key int) string {
	it := c.m.Find(key)
	if !it.Valid() {
		return notFound
	}
	return fmt.Sprintf("%d:%s", it.Key(), it.Value())
}

func (c *mapContainer) at(key int) string {
	v, err := c.m.At(key)
	if err != nil {
		return "error: " + err.Error()
	}
	return v
}

func (c *mapContainer) count(key int) int {
	if c.m.Contains(key) {
		return 1
	}
	return 0
}

func (c *mapContainer) lowerBound(int) string { panic("lower_bound on map") }
func (c *mapContainer) upperBound(int) string { panic("upper_bound on map") }
func (c *mapContainer) equalRange(int) string { panic("equal_range on map") }

func (c *mapContainer) len() int { return c.m.Len() }

func (c *mapContainer) list() string {
	var es []string
	for k, v := range c.m.All() {
		es = append(es, fmt.Sprintf("%d:%s", k, v))
	}
	return join(es)
}

func (c *mapContainer) clear()        { c.m.Clear() }
func (c *mapContainer) verify() error { return c.m.Verify() }
func (c *mapContainer) dump() string  { return c.m.Dump() }
func (c *mapContainer) height() int   { return c.m.Height() }

type setContainer struct {
	s *ordered.Set[int]
}

func (c *setContainer) insert(key int, _ string) bool {
	_, added := c.s.Insert(key)
	return added
}

func (c *setContainer) set(int, string) bool { panic("set on set") }

func (c *setContainer) erase(key int) bool { return c.s.Erase(key) }

func (c *setContainer) find(key int) string {
	it := c.s.Find(key)
	if !it.Valid() {
		return notFound
	}
	return position(it)
}

func (c *setContainer) at(int) string { panic("at on set") }

func (c *setContainer) count(key int) int {
	if c.s.Contains(key) {
		return 1
	}
	return 0
}

func (c *setContainer) lowerBound(int) string { panic("lower_bound on set") }
func (c *setContainer) upperBound(int) string { panic("upper_bound on set") }
func (c *setContainer) equalRange(int) string { panic("equal_range on set") }

func (c *setContainer) len() int { return c.s.Len() }

func (c *setContainer) list() string {
	var ks []int
	for k := range c.s.All() {
		ks = append(ks, k)
	}
	return join(ks)
}

func (c *setContainer) clear()        { c.s.Clear() }
func (c *setContainer) verify() error { return c.s.Verify() }
func (c *setContainer) dump() string  { return c.s.Dump() }
func (c *setContainer) height() int   { return c.s.Height() }

type multiSetContainer struct {
	s *ordered.MultiSet[int]
}

func (c *multiSetContainer) insert(key int, _ string) bool {
	c.s.Insert(key)
	return true
}

func (c *multiSetContainer) set(int, string) bool { panic("set on multiset") }

func (c *multiSetContainer) erase(key int) bool { return c.s.Erase(key) }

func (c *multiSetContainer) find(key int) string {
	it := c.s.Find(key)
	if !it.Valid() {
		return notFound
	}
	return position(it)
}

func (c *multiSetContainer) at(int) string { panic("at on multiset") }

func (c *multiSetContainer) count(key int) int { return c.s.Count(key) }

func (c *multiSetContainer) lowerBound(key int) string { return position(c.s.LowerBound(key)) }
func (c *multiSetContainer) upperBound(key int) string { return position(c.s.UpperBound(key)) }

func (c *multiSetContainer) equalRange(key int) string {
	first, last := c.s.EqualRange(key)
	var ks []int
	for it := first; !it.Equal(last); it = it.Next() {
		ks = append(ks, it.Key())
	}
	return join(ks)
}

func (c *multiSetContainer) len() int { return c.s.Len() }

func (c *multiSetContainer) list() string {
	var ks []int
	for k := range c.s.All() {
		ks = append(ks, k)
	}
	return join(ks)
}

func (c *multiSetContainer) clear()        { c.s.Clear() }
func (c *multiSetContainer) verify() error { return c.s.Verify() }
func (c *multiSetContainer) dump() string  { return c.s.Dump() }
func (c *multiSetContainer) height() int   { return c.s.Height() }
