package idset

import "iter"

// View is a read-only handle onto a Set.
//
// A View aliases the Set it was taken from and reflects later changes to it.
// The zero View is an empty set.
type View struct {
	s *Set
}

// Contains checks if id is in the set.
func (v View) Contains(id uint64) bool {
	return v.s != nil && v.s.Contains(id)
}

// Len returns the number of identities in the set.
func (v View) Len() int {
	if v.s == nil {
		return 0
	}
	return v.s.Len()
}

// IsEmpty returns true if the set is empty.
func (v View) IsEmpty() bool {
	return v.s == nil || v.s.IsEmpty()
}

// IDs returns the identities in ascending order.
// An empty view returns a non-nil empty slice.
func (v View) IDs() []uint64 {
	if v.s == nil {
		return []uint64{}
	}
	return v.s.IDs()
}

// All returns an iterator over the identities in ascending order.
func (v View) All() iter.Seq[uint64] {
	if v.s == nil {
		return func(func(uint64) bool) {}
	}
	return v.s.All()
}

// Equal reports whether both views hold the same identities.
func (v View) Equal(other View) bool {
	switch {
	case v.s == nil:
		return other.IsEmpty()
	case other.s == nil:
		return v.s.IsEmpty()
	}
	return v.s.Equal(other.s)
}

// Clone returns an independent mutable copy.
func (v View) Clone() *Set {
	if v.s == nil {
		return New()
	}
	return v.s.Clone()
}

// Difference returns a new set holding the identities of v that are not in other.
func (v View) Difference(other View) *Set {
	if v.s == nil {
		return New()
	}
	return v.s.Difference(other.s)
}
