// Package idset provides compressed sets of 64-bit identities.
//
// Sets are backed by 64-bit Roaring bitmaps, which keep sparse and dense
// identity ranges compact and make set algebra (union, difference) cheap.
//
// # Mutable and read-only forms
//
// Set is the mutable form owned by a container. View is a read-only handle
// onto a Set; obtaining one is O(1) and it aliases the live Set, so it
// observes later mutations. Call View.Clone to detach:
//
//	s := idset.Of(1, 2, 3)
//	v := s.View()
//	s.Add(4)
//	v.Len()           // 4
//	c := v.Clone()    // independent copy
//
// The zero View is a valid empty set.
package idset
