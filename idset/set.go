package idset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is a mutable set of uint64 identities.
// It wraps a 64-bit Roaring bitmap.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring64.New(),
	}
}

// Of creates a set holding the given identities.
func Of(ids ...uint64) *Set {
	return &Set{
		rb: roaring64.BitmapOf(ids...),
	}
}

// Add adds id to the set and reports whether it was not already present.
func (s *Set) Add(id uint64) bool {
	return s.rb.CheckedAdd(id)
}

// Remove removes id from the set and reports whether it was present.
func (s *Set) Remove(id uint64) bool {
	return s.rb.CheckedRemove(id)
}

// Contains checks if id is in the set.
func (s *Set) Contains(id uint64) bool {
	return s.rb.Contains(id)
}

// Len returns the number of identities in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// IDs returns the identities in ascending order.
func (s *Set) IDs() []uint64 {
	return s.rb.ToArray()
}

// All returns an iterator over the identities in ascending order.
func (s *Set) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same identities.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return s.IsEmpty()
	}
	return s.rb.Equals(other.rb)
}

// Difference returns a new set holding the identities of s that are not in other.
// Neither input is modified.
func (s *Set) Difference(other *Set) *Set {
	if other == nil {
		return s.Clone()
	}
	return &Set{
		rb: roaring64.AndNot(s.rb, other.rb),
	}
}

// Union adds every identity of others to s.
func (s *Set) Union(others ...*Set) {
	for _, o := range others {
		if o != nil {
			s.rb.Or(o.rb)
		}
	}
}

// Clear removes all identities from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}

// SizeInBytes returns the in-memory size of the set's bitmap.
func (s *Set) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// View returns a read-only handle onto s.
func (s *Set) View() View {
	return View{s: s}
}
