// Package zarray computes Z-arrays (longest-common-prefix arrays).
//
// The Z-array of a sequence s of length n is the integer slice z where
// z[0] = n and, for i > 0, z[i] is the length of the longest common prefix
// of s and s[i:]. Every table used by the matchers in this module
// (good suffix, matched prefix, failure, spix, segmented wildcard Z values)
// is derived from this one primitive, run against a pattern, its reverse,
// or a synthetic concatenation.
//
// Build runs in O(n) time and space using Gusfield's Z-box technique:
//
//	z := zarray.Build([]byte("aabxaab"))
//	// z == [7 1 0 0 3 1 0]
package zarray

// Build returns the Z-array of s. An empty input yields an empty slice.
func Build[S ~[]E, E comparable](s S) []int {
	z, _ := BuildStats(s)
	return z
}

// BuildStats is Build that also reports the number of explicit symbol
// comparisons performed. The count is bounded by 2n.
func BuildStats[S ~[]E, E comparable](s S) (z []int, comparisons int) {
	n := len(s)
	if n == 0 {
		return []int{}, 0
	}

	z = make([]int, n)
	z[0] = n

	// [l, r] is the rightmost Z-box found so far: s[l..r] == s[0..r-l].
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i > r {
			// Outside the box: extend explicitly from i.
			j := i
			for j < n {
				comparisons++
				if s[j] != s[j-i] {
					break
				}
				j++
			}
			z[i] = j - i
			if z[i] > 0 {
				l, r = i, j-1
			}
			continue
		}

		k := i - l
		remaining := r - i + 1
		switch {
		case z[k] < remaining:
			z[i] = z[k]
		case z[k] > remaining:
			z[i] = remaining
		default:
			// z[k] == remaining: the prefix may continue past r.
			j := r + 1
			p := z[k]
			for j < n {
				comparisons++
				if s[j] != s[p] {
					break
				}
				j++
				p++
			}
			z[i] = p
			if j > r+1 {
				l, r = i, j-1
			}
		}
	}
	return z, comparisons
}

// Reverse returns a reversed copy of s.
func Reverse[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Suffix returns the suffix Z-array of s: entry i is the length of the
// longest common suffix of s[:i+1] and s. It is the Z-array of the reversed
// sequence, reversed.
func Suffix[S ~[]E, E comparable](s S) []int {
	return Reverse(Build(Reverse(s)))
}
