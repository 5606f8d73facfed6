// Package boyermoore implements Boyer-Moore substring search in two
// directions, driven by Z-array derived preprocessing tables.
//
// The forward matcher slides a window left to right over the text and
// compares each window right to left. The mirrored matcher is its dual: the
// window slides right to left and comparisons run left to right. Both take
// the larger of the bad-character and good-suffix (good-prefix) shifts and
// apply Galil's rule, so the number of symbol comparisons stays linear in
// the text length even for highly periodic patterns.
//
// Both matchers report every occurrence, overlapping ones included:
//
//	boyermoore.Match([]byte("aa"), []byte("aaaaa"))         // [0 1 2 3]
//	boyermoore.MatchMirrored([]byte("aa"), []byte("aaaaa")) // [3 2 1 0]
package boyermoore

// Stats counts the work done by one scan.
type Stats struct {
	// Comparisons is the number of text/pattern symbol comparisons.
	Comparisons int

	// Shifts is the number of window moves (mismatches and full matches).
	Shifts int

	// GalilSkips is the number of times a verified region was jumped over.
	GalilSkips int
}

// inactive marks a disarmed Galil breakpoint.
const inactive = -1

// scanState is the explicit finite-state record of one Boyer-Moore scan.
type scanState struct {
	// j is the window start in the text.
	j int

	// k is the comparison cursor inside the pattern.
	k int

	// galilBreak is the text index where the previously verified region
	// begins, in scan order. Reaching it moves the cursor to galilResume.
	galilBreak  int
	galilResume int

	cache rowCache
}

// Match returns the start offsets of all occurrences of pattern in text in
// ascending order. An empty pattern yields [0].
func Match(pattern, text []byte) []int {
	occ, _ := MatchStats(pattern, text)
	return occ
}

// MatchStats is Match with instrumentation.
func MatchStats(pattern, text []byte) ([]int, Stats) {
	var st Stats
	m, n := len(pattern), len(text)
	if m == 0 {
		return []int{0}, st
	}
	occ := []int{}
	if n < m {
		return occ, st
	}

	bad := NewBadCharTable(pattern)
	gs := GoodSuffix(pattern)
	mp := MatchedPrefix(pattern)

	s := scanState{k: m - 1, galilBreak: inactive, galilResume: inactive}
	for s.j+m <= n {
		if s.k < 0 {
			occ = append(occ, s.j)
			shift := m - mp[1]
			// The next window starts with a border of length mp[1] that
			// was just verified: stop before it and report the match.
			s.galilBreak = s.j + m - 1
			s.galilResume = s.j + shift - 1
			s.j += shift
			s.k = m - 1
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
			s.k--
			continue
		}

		bc := s.k + 1
		if row := s.cache.lookup(bad, c); row != nil {
			bc = s.k - row[s.k]
		}
		gsShift := gs[s.k+1]
		if gsShift == 0 {
			gsShift = m - mp[s.k+1]
		} else {
			gsShift = m - gsShift
		}

		var shift int
		if bc > gsShift {
			shift = bc
			s.galilBreak = at
			s.galilResume = at
		} else {
			// text[at+1 : j+m] matched and reappears in the shifted
			// window; resume at the mismatch once it is reached.
			shift = gsShift
			s.galilBreak = s.j + m - 1
			s.galilResume = at
		}
		s.j += shift
		s.k = m - 1
		st.Shifts++
	}
	return occ, st
}
