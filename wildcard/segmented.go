package wildcard

import "github.com/coregx/zsearch/zarray"

// segmentedZ evaluates the Z-array of literal + separator + text at
// selected text offsets only.
//
// The separator never matches, so every value is bounded by the literal
// length. Offsets must be requested in strictly increasing order: the
// Z-box [l, r] (in text coordinates) is then reused exactly as in the full
// Z-array construction, with the literal's own Z-array answering lookups
// inside the box.
type segmentedZ struct {
	literal []byte
	lz      []int
	text    []byte

	l, r        int
	comparisons int
}

func newSegmentedZ(literal, text []byte) *segmentedZ {
	return &segmentedZ{
		literal: literal,
		lz:      zarray.Build(literal),
		text:    text,
		l:       0,
		r:       -1,
	}
}

// at returns the length of the longest common prefix of the literal and
// text[q:].
func (s *segmentedZ) at(q int) int {
	lit, n := len(s.literal), len(s.text)

	if q > s.r {
		j := 0
		for j < lit && q+j < n {
			s.comparisons++
			if s.text[q+j] != s.literal[j] {
				break
			}
			j++
		}
		if j > 0 {
			s.l, s.r = q, q+j-1
		}
		return j
	}

	// l < q <= r, and the box is no longer than the literal, so k indexes
	// inside the literal.
	k := q - s.l
	remaining := s.r - q + 1
	switch {
	case s.lz[k] < remaining:
		return s.lz[k]
	case s.lz[k] > remaining:
		return remaining
	}

	j, p := s.r+1, remaining
	for p < lit && j < n {
		s.comparisons++
		if s.text[j] != s.literal[p] {
			break
		}
		j++
		p++
	}
	if j > s.r+1 {
		s.l, s.r = q, j-1
	}
	return p
}
