// Package reference provides matchers that are independent of the
// Z-array machinery. They are used as oracles when cross-checking the
// linear-time algorithms.
package reference

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// Literal returns the ascending start offsets of every occurrence of
// pattern in text, overlapping ones included.
//
// The search runs an Aho-Corasick automaton restarted one position past
// each reported start, so overlaps are not lost to leftmost-first
// semantics. An empty pattern occurs once, at offset 0.
func Literal(pattern, text []byte) ([]int, error) {
	if len(pattern) == 0 {
		return []int{0}, nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	out := []int{}
	last := len(text) - len(pattern)
	for at := 0; at <= last; {
		m := auto.Find(text, at)
		if m == nil {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out, nil
}

// Naive compares pattern against every window of text. wildcard, when
// non-negative, matches any text symbol.
func Naive(pattern, text []byte, wildcard int) []int {
	if len(pattern) == 0 {
		return []int{0}
	}
	out := []int{}
	if wildcard < 0 {
		for i := 0; i+len(pattern) <= len(text); i++ {
			if bytes.Equal(text[i:i+len(pattern)], pattern) {
				out = append(out, i)
			}
		}
		return out
	}
	w := byte(wildcard)
	for i := 0; i+len(pattern) <= len(text); i++ {
		ok := true
		for j, c := range pattern {
			if c != w && c != text[i+j] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// NoWildcard disables wildcard handling in Naive.
const NoWildcard = -1
