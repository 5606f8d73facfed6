// Package kmp implements Knuth-Morris-Pratt substring search with failure
// tables derived from the Z-array.
//
// Match is the plain algorithm: on a mismatch the match retreats by
// position only. MatchModified uses a table indexed by the mismatching text
// symbol as well, so the retreat also accounts for the symbol actually seen
// and the window never needs to re-read it.
//
// Both run in O(n+m): every comparison either extends the match or is paid
// for by a strictly positive shift.
package kmp

// Stats counts the work done by one scan.
type Stats struct {
	// Comparisons is the number of text symbols examined.
	Comparisons int

	// Shifts is the number of window moves.
	Shifts int
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

	failure := Failure(pattern)

	// i is the window start, k the number of symbols matched in it.
	i, k := 0, 0
	for i+m <= n {
		if k >= m {
			occ = append(occ, i)
			i += m - failure[m-1]
			k = failure[m-1]
			st.Shifts++
			continue
		}

		st.Comparisons++
		if pattern[k] == text[i+k] {
			k++
			continue
		}
		if k == 0 {
			i++
		} else {
			i += k - failure[k-1]
			k = failure[k-1]
		}
		st.Shifts++
	}
	return occ, st
}

// MatchModified returns the same offsets as Match using the spix table.
func MatchModified(pattern, text []byte) []int {
	occ, _ := MatchModifiedStats(pattern, text)
	return occ
}

// MatchModifiedStats is MatchModified with instrumentation.
func MatchModifiedStats(pattern, text []byte) ([]int, Stats) {
	var st Stats
	m, n := len(pattern), len(text)
	if m == 0 {
		return []int{0}, st
	}
	occ := []int{}
	if n < m {
		return occ, st
	}

	spx := NewSpixTable(pattern)

	i, k := 0, 0
	for i+m <= n {
		if k >= m {
			occ = append(occ, i)
			if i+m == n {
				break
			}
			st.Comparisons++
			spi := spx.retreat(pattern, text[i+m], m-1)
			i += m - spi
			k = spi + 1
			st.Shifts++
			continue
		}

		st.Comparisons++
		x := text[i+k]
		if pattern[k] == x {
			k++
			continue
		}
		if k == 0 {
			i++
		} else {
			// pattern[:spi] followed by x matches text[i+k-spi : i+k+1].
			spi := spx.retreat(pattern, x, k-1)
			i += k - spi
			k = spi + 1
		}
		st.Shifts++
	}
	return occ, st
}
