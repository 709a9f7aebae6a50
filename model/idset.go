package model

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// IDSet is a set of document ids backed by a 32-bit Roaring Bitmap.
// It is used for exclusion sets on queries and as the result of
// Pool.GetAllIDs. An IDSet is not safe for concurrent mutation.
type IDSet struct {
	rb *roaring.Bitmap
}

// NewIDSet creates a new set containing the given ids.
func NewIDSet(ids ...DocumentID) *IDSet {
	s := &IDSet{rb: roaring.New()}
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
	return s
}

// Add adds an id to the set.
func (s *IDSet) Add(id DocumentID) {
	s.rb.Add(uint32(id))
}

// Remove removes an id from the set.
func (s *IDSet) Remove(id DocumentID) {
	s.rb.Remove(uint32(id))
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s *IDSet) Contains(id DocumentID) bool {
	if s == nil {
		return false
	}
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty. A nil set is empty.
func (s *IDSet) IsEmpty() bool {
	return s == nil || s.rb.IsEmpty()
}

// Len returns the number of ids in the set.
func (s *IDSet) Len() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *IDSet) Clone() *IDSet {
	if s == nil {
		return NewIDSet()
	}
	return &IDSet{rb: s.rb.Clone()}
}

// AddRange adds all ids in [lo, hi] to the set.
func (s *IDSet) AddRange(lo, hi DocumentID) {
	if hi < lo {
		return
	}
	s.rb.AddRange(uint64(lo), uint64(hi)+1)
}

// All returns an iterator over the ids in ascending order.
func (s *IDSet) All() iter.Seq[DocumentID] {
	return func(yield func(DocumentID) bool) {
		if s == nil {
			return
		}
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(DocumentID(it.Next())) {
				return
			}
		}
	}
}

// Slice returns the ids in ascending order.
func (s *IDSet) Slice() []DocumentID {
	if s == nil {
		return nil
	}
	out := make([]DocumentID, 0, s.Len())
	for id := range s.All() {
		out = append(out, id)
	}
	return out
}
