package kmp

import (
	"github.com/coregx/zsearch/alphabet"
	"github.com/coregx/zsearch/zarray"
)

// none marks a missing spix entry.
const none = -1

// Failure returns the failure table of pattern, derived from its Z-array.
//
// failure[i] is the length of the longest proper suffix of pattern[:i+1]
// that is a prefix of pattern and is not followed by pattern[i+1]. After
// matching k symbols and failing at pattern[k], the match may safely
// retreat to failure[k-1] symbols.
func Failure(pattern []byte) []int {
	m := len(pattern)
	failure := make([]int, m)
	z := zarray.Build(pattern)
	for j := m - 1; j > 0; j-- {
		if z[j] > 0 {
			failure[j+z[j]-1] = z[j]
		}
	}
	return failure
}

// SpixTable is the failure table bucketed by the symbol that follows the
// retreated prefix. Entry (x, i) is the length of the longest proper suffix
// of pattern[:i+1] that is a prefix of pattern followed by x.
type SpixTable struct {
	classes *alphabet.Classes
	rows    [][]int // nil for symbols that never follow a retreat
}

// NewSpixTable builds the spix table of pattern.
func NewSpixTable(pattern []byte) *SpixTable {
	m := len(pattern)
	classes := alphabet.New(pattern)
	rows := make([][]int, classes.Len())
	z := zarray.Build(pattern)
	for j := m - 1; j > 0; j-- {
		if z[j] == 0 {
			continue
		}
		id := classes.Get(pattern[z[j]]) - 1
		if rows[id] == nil {
			rows[id] = make([]int, m)
			for i := range rows[id] {
				rows[id][i] = none
			}
		}
		rows[id][j+z[j]-1] = z[j]
	}
	return &SpixTable{classes: classes, rows: rows}
}

// Lookup returns entry (x, i), or -1 when there is none.
func (t *SpixTable) Lookup(x byte, i int) int {
	id := t.classes.Get(x)
	if id == alphabet.Absent || t.rows[id-1] == nil {
		return none
	}
	return t.rows[id-1][i]
}

// retreat returns the length of the prefix that stays matched, not
// counting x, when text symbol x follows the matched pattern[:i+1]. It
// returns -1 when no prefix can be kept. A missing entry still keeps the
// empty prefix when x opens the pattern.
func (t *SpixTable) retreat(pattern []byte, x byte, i int) int {
	spi := t.Lookup(x, i)
	if spi == none && x == pattern[0] {
		spi = 0
	}
	return spi
}
