package kmp

import (
	"bytes"
	"math/rand"
	"reflect"
	"testing"
)

func bruteForce(pattern, text []byte) []int {
	if len(pattern) == 0 {
		return []int{0}
	}
	occ := []int{}
	for i := 0; i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			occ = append(occ, i)
		}
	}
	return occ
}

func TestFailure(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"aaaa", []int{0, 0, 0, 3}},
		{"abab", []int{0, 0, 0, 2}},
		{"aabaa", []int{0, 1, 0, 0, 2}},
	}
	for _, tt := range tests {
		if got := Failure([]byte(tt.pattern)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Failure(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestSpixTable(t *testing.T) {
	spx := NewSpixTable([]byte("aabaa"))

	tests := []struct {
		x    byte
		i    int
		want int
	}{
		{'a', 1, 1},
		{'a', 4, 1},
		{'b', 4, 2},
		{'a', 0, -1},
		{'b', 1, -1},
		{'z', 4, -1},
	}
	for _, tt := range tests {
		if got := spx.Lookup(tt.x, tt.i); got != tt.want {
			t.Errorf("Lookup(%q, %d) = %d, want %d", tt.x, tt.i, got, tt.want)
		}
	}

	// No border ends anywhere, but 'a' still restarts the pattern.
	if got := spx.retreat([]byte("aabaa"), 'a', 2); got != 0 {
		t.Errorf("retreat('a', 2) = %d, want 0", got)
	}
	if got := spx.retreat([]byte("aabaa"), 'c', 2); got != -1 {
		t.Errorf("retreat('c', 2) = %d, want -1", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    []int
	}{
		{"both_empty", "", "", []int{0}},
		{"empty_pattern", "", "abc", []int{0}},
		{"empty_text", "abc", "", []int{}},
		{"prefix", "aa", "aab", []int{0}},
		{"suffix", "ba", "aba", []int{1}},
		{"exact", "aba", "aba", []int{0}},
		{"overlap", "aa", "aaaaa", []int{0, 1, 2, 3}},
		{"middle", "bac", "cbacd", []int{1}},
		{"borders", "aabaa", "aabaabaabaa", []int{0, 3, 6}},
		{"restart_on_first_symbol", "ab", "aab", []int{1}},
		{"after_match_restart", "aab", "aabaab", []int{0, 3}},
		{"none", "abc", "ababab", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, txt := []byte(tt.pattern), []byte(tt.text)
			if got := Match(p, txt); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
			if got := MatchModified(p, txt); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchModified(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	alphabets := []string{"a", "ab", "abc", "acgt"}

	for iter := 0; iter < 5000; iter++ {
		alpha := alphabets[iter%len(alphabets)]
		pattern := randomBytes(rng, alpha, rng.Intn(21))
		text := randomBytes(rng, alpha, rng.Intn(201))
		want := bruteForce(pattern, text)

		if got := Match(pattern, text); !reflect.DeepEqual(got, want) {
			t.Fatalf("Match(%q, %q) = %v, want %v", pattern, text, got, want)
		}
		if got := MatchModified(pattern, text); !reflect.DeepEqual(got, want) {
			t.Fatalf("MatchModified(%q, %q) = %v, want %v", pattern, text, got, want)
		}
	}
}

func TestComparisonsLinear(t *testing.T) {
	text := bytes.Repeat([]byte("aaaaaaaab"), 500)
	pattern := []byte("aaaaaaaaa")

	_, st := MatchStats(pattern, text)
	if limit := 2 * len(text); st.Comparisons > limit {
		t.Errorf("Match: %d comparisons, want <= %d", st.Comparisons, limit)
	}

	// The modified scan never reads a text symbol twice.
	_, st = MatchModifiedStats(pattern, text)
	if st.Comparisons > len(text) {
		t.Errorf("MatchModified: %d comparisons, want <= %d", st.Comparisons, len(text))
	}
}

func randomBytes(rng *rand.Rand, alpha string, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alpha[rng.Intn(len(alpha))]
	}
	return b
}

func BenchmarkMatch(b *testing.B) {
	text := bytes.Repeat([]byte("acgtacgatcgatcgtagct"), 2048)
	pattern := []byte("cgatcgtag")
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()

	b.Run("plain", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Match(pattern, text)
		}
	})
	b.Run("modified", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = MatchModified(pattern, text)
		}
	})
}
