// Package wildcard implements substring search for patterns containing a
// wildcard symbol that matches any single text symbol.
//
// The pattern is split into literal sections separated by wildcard runs.
// Each section is located with a segmented Z-array of
// section + separator + text, evaluated only at the offsets where the
// section must start for a still-viable match. Matched lengths accumulate
// per text offset; an offset is an occurrence when the accumulated length
// reaches the pattern length. Total time is O(n*x) for x literal sections.
//
//	wildcard.Match([]byte("a?c"), []byte("abcaxc"), '?') // [0 3]
package wildcard

import "github.com/coregx/zsearch/internal/sparse"

// Stats counts the work done by one scan.
type Stats struct {
	// Comparisons is the number of explicit text/literal comparisons.
	Comparisons int

	// Sections is the number of sections processed before the candidate
	// set ran empty.
	Sections int
}

// Match returns the start offsets of all occurrences of pattern in text in
// ascending order. An empty pattern yields [0].
func Match(pattern, text []byte, wildcard byte) []int {
	occ, _ := MatchStats(pattern, text, wildcard)
	return occ
}

// MatchStats is Match with instrumentation.
func MatchStats(pattern, text []byte, wildcard byte) ([]int, Stats) {
	m := len(pattern)
	if m == 0 {
		return []int{0}, Stats{}
	}
	if len(text) == 0 {
		return []int{}, Stats{}
	}

	_, survivors, st := aggregate(pattern, text, wildcard)
	occ := []int{}
	for _, p := range survivors {
		if p+m <= len(text) {
			occ = append(occ, p)
		}
	}
	return occ, st
}

// aggregate returns, for every text offset p, the number of pattern symbols
// accounted for by consecutive fully matched sections starting at p. A
// section that matches only partially contributes its matched prefix and
// ends the accumulation for that offset. survivors lists, ascending, the
// offsets whose every section matched.
func aggregate(pattern, text []byte, wildcard byte) (agg, survivors []int, st Stats) {
	n := len(text)
	agg = make([]int, n)
	live := sparse.Fill(n)
	var walk []int

	for _, sec := range Sections(pattern, wildcard) {
		if live.Len() == 0 {
			break
		}
		st.Sections++

		lit := len(sec.Literal)
		var zs *segmentedZ
		if lit > 0 {
			zs = newSegmentedZ(sec.Literal, text)
		}
		// Members come back in insertion order, which is ascending. Live
		// offsets share one accumulated length, so resume points p+agg[p]
		// strictly increase along the walk.
		walk = live.AppendTo(walk[:0])
		live.Clear()
		for _, p := range walk {
			if zs != nil {
				z := zs.at(p + agg[p])
				agg[p] += z
				if z < lit {
					continue
				}
			}
			agg[p] += sec.Wildcards
			live.Insert(p)
		}
		if zs != nil {
			st.Comparisons += zs.comparisons
		}
	}
	return agg, live.AppendTo(nil), st
}
