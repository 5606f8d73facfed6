// Package zsearch provides linear-time exact and wildcard substring search
// built on one shared primitive, the Z-array.
//
// Every algorithm reports all occurrences of a pattern in a text, including
// overlapping ones, as zero-based start offsets:
//   - BoyerMoore: right-to-left comparison with bad-character, strong good
//     suffix and matched-prefix shifts plus Galil's rule
//   - MirroredBoyerMoore: the same scheme scanning the text from the right
//   - KMP: failure-table Knuth-Morris-Pratt
//   - ModifiedKMP: KMP with retreats indexed by the mismatching symbol
//   - Wildcard: a single-symbol wildcard matcher over a segmented Z-array
//
// Basic usage:
//
//	offsets := zsearch.MatchString("aba", "ababa")
//	fmt.Println(offsets) // [0 2]
//
// Choosing an algorithm:
//
//	cfg := zsearch.DefaultConfig()
//	cfg.Algorithm = zsearch.Wildcard
//	offsets, err := zsearch.MatchWithConfig([]byte("a?a"), text, cfg)
//
// An empty pattern occurs exactly once, at offset 0, even in an empty text.
// A non-empty pattern never occurs in an empty text.
//
// All functions are safe for concurrent use; preprocessing tables are built
// per call and never shared.
package zsearch

import (
	"slices"
	"strings"

	"github.com/coregx/zsearch/boyermoore"
	"github.com/coregx/zsearch/kmp"
	"github.com/coregx/zsearch/simd"
	"github.com/coregx/zsearch/wildcard"
)

// Algorithm identifies a search algorithm.
type Algorithm uint8

const (
	// BoyerMoore scans windows left to right, comparing right to left.
	BoyerMoore Algorithm = iota

	// MirroredBoyerMoore scans windows right to left, comparing left to right.
	MirroredBoyerMoore

	// KMP is Knuth-Morris-Pratt with the strong failure table.
	KMP

	// ModifiedKMP is Knuth-Morris-Pratt with symbol-indexed retreats.
	ModifiedKMP

	// Wildcard treats Config.Wildcard as matching any symbol.
	Wildcard

	numAlgorithms
)

var algorithmStrings = [numAlgorithms]string{
	BoyerMoore:         "boyermoore",
	MirroredBoyerMoore: "mirrored-boyermoore",
	KMP:                "kmp",
	ModifiedKMP:        "modified-kmp",
	Wildcard:           "wildcard",
}

// String returns the algorithm name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if a.valid() {
		return algorithmStrings[a]
	}
	return "unknown"
}

func (a Algorithm) valid() bool {
	return a < numAlgorithms
}

// ParseAlgorithm returns the algorithm with the given name. Matching is
// case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, s := range algorithmStrings {
		if strings.EqualFold(name, s) {
			return Algorithm(a), nil
		}
	}
	return 0, &Error{
		Kind:    UnknownAlgorithm,
		Message: "unknown algorithm " + `"` + name + `"` + " (want one of " + algorithmNames() + ")",
		Offset:  -1,
	}
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, numAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

func algorithmNames() string {
	return strings.Join(algorithmStrings[:], ", ")
}

// Stats reports the work done by one search. Counts cover the scan only;
// preprocessing is not included.
type Stats struct {
	Algorithm Algorithm

	// Comparisons is the number of pattern-text symbol comparisons.
	Comparisons int

	// Shifts is the number of pattern moves (Boyer-Moore and KMP).
	Shifts int

	// GalilSkips is the number of times Galil's rule skipped a verified
	// region (Boyer-Moore only).
	GalilSkips int

	// Sections is the number of literal sections (Wildcard only).
	Sections int
}

// Match returns the ascending start offsets of every occurrence of pattern
// in text using Boyer-Moore.
func Match(pattern, text []byte) []int {
	return boyermoore.Match(pattern, text)
}

// MatchString is like Match but takes strings.
func MatchString(pattern, text string) []int {
	return Match([]byte(pattern), []byte(text))
}

// MatchWithConfig returns the ascending start offsets of every occurrence of
// pattern in text using the configured algorithm.
//
// It fails with a *ConfigError if cfg is invalid and with ErrInvalidSymbol if
// ASCIIOnly is set and pattern or text holds a byte >= 0x80.
func MatchWithConfig(pattern, text []byte, cfg Config) ([]int, error) {
	offsets, _, err := MatchStats(pattern, text, cfg)
	return offsets, err
}

// MatchStats is like MatchWithConfig but also reports comparison counts.
func MatchStats(pattern, text []byte, cfg Config) ([]int, Stats, error) {
	stats := Stats{Algorithm: cfg.Algorithm}
	if err := cfg.Validate(); err != nil {
		return nil, stats, &Error{
			Kind:    InvalidConfig,
			Message: "invalid configuration",
			Offset:  -1,
			Cause:   err,
		}
	}
	if cfg.ASCIIOnly {
		if err := checkASCII("pattern", pattern); err != nil {
			return nil, stats, err
		}
		if err := checkASCII("text", text); err != nil {
			return nil, stats, err
		}
	}

	var offsets []int
	switch cfg.Algorithm {
	case BoyerMoore:
		var s boyermoore.Stats
		offsets, s = boyermoore.MatchStats(pattern, text)
		stats.Comparisons, stats.Shifts, stats.GalilSkips = s.Comparisons, s.Shifts, s.GalilSkips
	case MirroredBoyerMoore:
		var s boyermoore.Stats
		offsets, s = boyermoore.MatchMirroredStats(pattern, text)
		stats.Comparisons, stats.Shifts, stats.GalilSkips = s.Comparisons, s.Shifts, s.GalilSkips
		slices.Reverse(offsets)
	case KMP:
		var s kmp.Stats
		offsets, s = kmp.MatchStats(pattern, text)
		stats.Comparisons, stats.Shifts = s.Comparisons, s.Shifts
	case ModifiedKMP:
		var s kmp.Stats
		offsets, s = kmp.MatchModifiedStats(pattern, text)
		stats.Comparisons, stats.Shifts = s.Comparisons, s.Shifts
	case Wildcard:
		var s wildcard.Stats
		offsets, s = wildcard.MatchStats(pattern, text, cfg.Wildcard)
		stats.Comparisons, stats.Sections = s.Comparisons, s.Sections
	}
	return offsets, stats, nil
}

func checkASCII(what string, data []byte) error {
	if i := simd.FirstNonASCII(data); i >= 0 {
		return &Error{
			Kind:    InvalidSymbol,
			Message: "non-ASCII symbol in " + what,
			Offset:  i,
		}
	}
	return nil
}

// Normalize sorts offsets ascending in place and returns it.
func Normalize(offsets []int) []int {
	slices.Sort(offsets)
	return offsets
}

// Equal reports whether a and b hold the same offsets, ignoring order.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(Normalize(slices.Clone(a)), Normalize(slices.Clone(b)))
}
