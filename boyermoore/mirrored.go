package boyermoore

// MatchMirrored returns the start offsets of all occurrences of pattern in
// text, scanning from the right end of the text. Offsets come out in
// descending order. An empty pattern yields [0].
func MatchMirrored(pattern, text []byte) []int {
	occ, _ := MatchMirroredStats(pattern, text)
	return occ
}

// MatchMirroredStats is MatchMirrored with instrumentation.
func MatchMirroredStats(pattern, text []byte) ([]int, Stats) {
	var st Stats
	m, n := len(pattern), len(text)
	if m == 0 {
		return []int{0}, st
	}
	occ := []int{}
	if n < m {
		return occ, st
	}

	bad := NewMirroredBadCharTable(pattern)
	gp := GoodPrefix(pattern)
	ms := MatchedSuffix(pattern)

	s := scanState{j: n - m, k: 0, galilBreak: inactive, galilResume: inactive}
	for s.j >= 0 {
		if s.k >= m {
			occ = append(occ, s.j)
			shift := m - ms[m-1]
			s.galilBreak = s.j
			s.galilResume = s.j - shift + m
			s.j -= shift
			s.k = 0
			st.Shifts++
			continue
		}

		at := s.j + s.k
		if at == s.galilBreak {
			s.galilBreak = inactive
			if s.galilResume != at {
				st.GalilSkips++
			}
			s.k = s.galilResume - s.j
			continue
		}

		st.Comparisons++
		c := text[at]
		if c == pattern[s.k] {
			s.k++
			continue
		}

		bc := m - s.k
		if row := s.cache.lookup(bad, c); row != nil {
			bc = row[s.k] - s.k
		}
		gpShift := gp[s.k]
		if gpShift == 0 {
			gpShift = m - ms[s.k]
		} else {
			gpShift = m - gpShift
		}

		var shift int
		if bc > gpShift {
			shift = bc
			s.galilBreak = at
			s.galilResume = at
		} else {
			shift = gpShift
			s.galilBreak = s.j
			s.galilResume = at
		}
		s.j -= shift
		s.k = 0
		st.Shifts++
	}
	return occ, st
}
