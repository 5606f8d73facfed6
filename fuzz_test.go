package zsearch

import (
	"slices"
	"testing"

	"github.com/coregx/zsearch/internal/reference"
)

var seedPairs = [][2]string{
	{"", ""},
	{"a", ""},
	{"", "abc"},
	{"aa", "aaaa"},
	{"abab", "abababab"},
	{"aabaa", "aabaabaabaa"},
	{"a?b", "aabxb"},
	{"??", "xyz"},
	{"tooth", "toothbrush tooth"},
}

// FuzzLiteral cross-checks the literal algorithms against brute force.
func FuzzLiteral(f *testing.F) {
	for _, p := range seedPairs {
		f.Add(p[0], p[1])
	}

	f.Fuzz(func(t *testing.T, pattern, text string) {
		want := reference.Naive([]byte(pattern), []byte(text), reference.NoWildcard)
		for _, a := range literalAlgorithms {
			got, err := MatchWithConfig([]byte(pattern), []byte(text), withAlgorithm(a))
			if err != nil {
				t.Fatalf("%v: %v", a, err)
			}
			if !slices.Equal(got, want) {
				t.Errorf("%v(%q, %q) = %v, want %v", a, pattern, text, got, want)
			}
		}
	})
}

// FuzzWildcard cross-checks the wildcard matcher against brute force.
func FuzzWildcard(f *testing.F) {
	for _, p := range seedPairs {
		f.Add(p[0], p[1])
	}

	f.Fuzz(func(t *testing.T, pattern, text string) {
		cfg := withAlgorithm(Wildcard)
		want := reference.Naive([]byte(pattern), []byte(text), int(cfg.Wildcard))
		got, err := MatchWithConfig([]byte(pattern), []byte(text), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("wildcard(%q, %q) = %v, want %v", pattern, text, got, want)
		}
	})
}
