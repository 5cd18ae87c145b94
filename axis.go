package axistable

import "github.com/hupe1980/axistable/idset"

// axisKey addresses one multiplicity counter: a value under one axis key.
type axisKey struct {
	key   uint64
	value uint64
}

// axisIndex is the derived index for one axis.
//
// values[k] is the union of all cells on k. counts[{k, v}] is the number of
// distinct cells on k holding v, and is what decides when v leaves values[k].
// links[k] holds the other-axis keys that have an occupied cell on k.
// None of the maps ever hold an empty set or a zero count.
type axisIndex struct {
	values map[uint64]*idset.Set
	counts map[axisKey]uint32
	links  map[uint64]*idset.Set
}

func newAxisIndex(capacity int) axisIndex {
	return axisIndex{
		values: make(map[uint64]*idset.Set, capacity),
		counts: make(map[axisKey]uint32, capacity),
		links:  make(map[uint64]*idset.Set, capacity),
	}
}

// retain records one more cell on key holding value.
func (a *axisIndex) retain(key, value uint64) {
	k := axisKey{key: key, value: value}
	n := a.counts[k]
	a.counts[k] = n + 1
	if n == 0 {
		setFor(a.values, key).Add(value)
	}
}

// release drops one cell on key holding value. The value leaves the axis
// entry only when no other cell on key still holds it.
func (a *axisIndex) release(key, value uint64) {
	k := axisKey{key: key, value: value}
	switch n := a.counts[k]; n {
	case 0:
		return
	case 1:
		delete(a.counts, k)
		removeFrom(a.values, key, value)
	default:
		a.counts[k] = n - 1
	}
}

func (a *axisIndex) link(key, other uint64) {
	setFor(a.links, key).Add(other)
}

func (a *axisIndex) unlink(key, other uint64) {
	removeFrom(a.links, key, other)
}

func (a *axisIndex) view(key uint64) idset.View {
	if s, ok := a.values[key]; ok {
		return s.View()
	}
	return idset.View{}
}

func (a *axisIndex) linksOf(key uint64) idset.View {
	if s, ok := a.links[key]; ok {
		return s.View()
	}
	return idset.View{}
}

func (a *axisIndex) multiplicity(key, value uint64) int {
	return int(a.counts[axisKey{key: key, value: value}])
}

func (a *axisIndex) clone() axisIndex {
	c := axisIndex{
		values: cloneSets(a.values),
		counts: make(map[axisKey]uint32, len(a.counts)),
		links:  cloneSets(a.links),
	}
	for k, n := range a.counts {
		c.counts[k] = n
	}
	return c
}

func (a *axisIndex) sizeInBytes() uint64 {
	var n uint64
	for _, s := range a.values {
		n += s.SizeInBytes()
	}
	for _, s := range a.links {
		n += s.SizeInBytes()
	}
	return n
}

// setFor returns the set stored under key, creating it if absent.
func setFor[K comparable](m map[K]*idset.Set, key K) *idset.Set {
	s, ok := m[key]
	if !ok {
		s = idset.New()
		m[key] = s
	}
	return s
}

// removeFrom removes id from the set stored under key and drops the entry
// once the set is empty. It reports whether id was present.
func removeFrom[K comparable](m map[K]*idset.Set, key K, id uint64) bool {
	s, ok := m[key]
	if !ok || !s.Remove(id) {
		return false
	}
	if s.IsEmpty() {
		delete(m, key)
	}
	return true
}

func cloneSets[K comparable](m map[K]*idset.Set) map[K]*idset.Set {
	c := make(map[K]*idset.Set, len(m))
	for k, s := range m {
		c[k] = s.Clone()
	}
	return c
}
