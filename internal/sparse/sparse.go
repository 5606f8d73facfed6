// Package sparse provides a sparse set of text offsets.
//
// The wildcard matcher keeps the set of start offsets that are still
// candidates for a full match. Each literal section can only drop
// candidates: the matcher reads the members out, clears the set in O(1)
// and reinserts the survivors. Members are kept in insertion order, so a
// set filled and refilled in ascending order is walked in ascending order
// without touching dead offsets.
package sparse

import "github.com/coregx/zsearch/internal/conv"

// Set is a set of offsets in [0, capacity).
//
// sparse[v] holds the position of v in dense; v is a member iff that
// position is in range and dense points back at v.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// New returns an empty set able to hold offsets in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Fill returns a set holding every offset in [0, capacity).
func Fill(capacity int) *Set {
	s := New(capacity)
	for v := 0; v < capacity; v++ {
		s.Insert(v)
	}
	return s
}

// Insert adds v. Inserting a member is a no-op.
// It panics if v is outside [0, capacity).
func (s *Set) Insert(v int) {
	if s.Contains(v) {
		return
	}
	s.sparse[v] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, conv.IntToUint32(v))
}

// Contains reports whether v is a member.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= len(s.sparse) {
		return false
	}
	idx := s.sparse[v]
	return int(idx) < len(s.dense) && int(s.dense[idx]) == v
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Clear removes every member in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// AppendTo appends the members to dst in insertion order.
func (s *Set) AppendTo(dst []int) []int {
	for _, v := range s.dense {
		dst = append(dst, int(v))
	}
	return dst
}
