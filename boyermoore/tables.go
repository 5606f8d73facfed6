package boyermoore

import (
	"github.com/coregx/zsearch/alphabet"
	"github.com/coregx/zsearch/zarray"
)

// BadCharTable holds the bad-character rule rows of a pattern.
//
// A forward table answers "rightmost occurrence of symbol c at or before
// pattern position k" (-1 when none). A mirrored table answers "leftmost
// occurrence at or after k" (m when none). Symbols that never occur in the
// pattern have no row at all.
type BadCharTable struct {
	classes *alphabet.Classes
	rows    [][]int
}

// NewBadCharTable builds the forward bad-character table.
func NewBadCharTable(pattern []byte) *BadCharTable {
	classes := alphabet.New(pattern)
	rows := make([][]int, classes.Len())
	for id, sym := range classes.Symbols() {
		row := make([]int, len(pattern))
		last := -1
		for k, b := range pattern {
			if b == sym {
				last = k
			}
			row[k] = last
		}
		rows[id] = row
	}
	return &BadCharTable{classes: classes, rows: rows}
}

// NewMirroredBadCharTable builds the bad-character table for right-to-left
// scanning windows.
func NewMirroredBadCharTable(pattern []byte) *BadCharTable {
	m := len(pattern)
	classes := alphabet.New(pattern)
	rows := make([][]int, classes.Len())
	for id, sym := range classes.Symbols() {
		row := make([]int, m)
		next := m
		for k := m - 1; k >= 0; k-- {
			if pattern[k] == sym {
				next = k
			}
			row[k] = next
		}
		rows[id] = row
	}
	return &BadCharTable{classes: classes, rows: rows}
}

// Row returns the row of b, or nil when b does not occur in the pattern.
func (t *BadCharTable) Row(b byte) []int {
	id := t.classes.Get(b)
	if id == alphabet.Absent {
		return nil
	}
	return t.rows[id-1]
}

// rowCache remembers the last row looked up. Mismatches on a run of the same
// text symbol then skip the class lookup.
type rowCache struct {
	sym   byte
	row   []int
	valid bool
}

func (c *rowCache) lookup(t *BadCharTable, b byte) []int {
	if !c.valid || c.sym != b {
		c.sym, c.row, c.valid = b, t.Row(b), true
	}
	return c.row
}

// GoodSuffix returns the good-suffix table of pattern (length m+1).
//
// gs[k] = p+1 where p is the rightmost end position, p < m-1, of an
// occurrence of the suffix pattern[k:] that is not preceded by
// pattern[k-1]. Zero means no such occurrence; callers fall back to
// MatchedPrefix.
func GoodSuffix(pattern []byte) []int {
	m := len(pattern)
	gs := make([]int, m+1)
	zs := zarray.Suffix(pattern)
	for p := 0; p < m-1; p++ {
		gs[m-zs[p]] = p + 1
	}
	return gs
}

// MatchedPrefix returns the matched-prefix table of pattern (length m+1).
//
// mp[i] is the length of the longest suffix of pattern[i:] that is also a
// prefix of pattern, clamped to m-1 so that the shift m-mp[i] is at least 1.
func MatchedPrefix(pattern []byte) []int {
	m := len(pattern)
	mp := make([]int, m+1)
	z := zarray.Build(pattern)
	for i := m - 1; i >= 0; i-- {
		if z[i]+i == m {
			mp[i] = z[i]
		} else {
			mp[i] = mp[i+1]
		}
		if mp[i] > m-1 {
			mp[i] = m - 1
		}
	}
	return mp
}

// GoodPrefix is the mirrored counterpart of GoodSuffix (length m+1).
//
// gp[k] = m-p where p > 0 is the leftmost start of an occurrence of the
// prefix pattern[:k] that is not followed by pattern[k]. Zero means no such
// occurrence; callers fall back to MatchedSuffix.
func GoodPrefix(pattern []byte) []int {
	m := len(pattern)
	gp := make([]int, m+1)
	z := zarray.Build(pattern)
	for p := m - 1; p > 0; p-- {
		gp[z[p]] = m - p
	}
	return gp
}

// MatchedSuffix is the mirrored counterpart of MatchedPrefix (length m+1).
//
// ms[k] is the length of the longest prefix of pattern[:k] that is also a
// suffix of pattern, clamped to m-1.
func MatchedSuffix(pattern []byte) []int {
	m := len(pattern)
	ms := make([]int, m+1)
	zs := zarray.Suffix(pattern)
	for i := 0; i < m; i++ {
		if zs[i] == i+1 {
			ms[i+1] = i + 1
		} else {
			ms[i+1] = ms[i]
		}
		if ms[i+1] > m-1 {
			ms[i+1] = m - 1
		}
	}
	return ms
}
