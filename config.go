package zsearch

import "github.com/coregx/zsearch/wildcard"

// Config selects the search algorithm and input constraints.
//
// Example:
//
//	cfg := zsearch.DefaultConfig()
//	cfg.Algorithm = zsearch.Wildcard
//	cfg.Wildcard = '.'
//	offsets, err := zsearch.MatchWithConfig([]byte("a.c"), text, cfg)
type Config struct {
	// Algorithm picks the matcher.
	// Default: BoyerMoore
	Algorithm Algorithm

	// Wildcard is the symbol that matches any single text symbol.
	// Only the Wildcard algorithm interprets it; the others treat it as a
	// literal byte. The zero value is rejected for the Wildcard algorithm,
	// so a Config literal must set it explicitly.
	// Default: '?'
	Wildcard byte

	// ASCIIOnly restricts the alphabet to 7-bit symbols. Pattern and text
	// are validated before matching and any byte >= 0x80 is reported as
	// ErrInvalidSymbol.
	// Default: false
	ASCIIOnly bool
}

// DefaultConfig returns the configuration used by Match and MatchString.
func DefaultConfig() Config {
	return Config{
		Algorithm: BoyerMoore,
		Wildcard:  wildcard.DefaultWildcard,
	}
}

// Validate checks if the configuration is valid.
//
// The algorithm must be one of Algorithms(), and with ASCIIOnly set the
// wildcard must itself be an ASCII symbol.
func (c Config) Validate() error {
	if !c.Algorithm.valid() {
		return &ConfigError{
			Field:   "Algorithm",
			Message: "must be one of " + algorithmNames(),
		}
	}
	if c.Algorithm == Wildcard && c.Wildcard == 0 {
		return &ConfigError{
			Field:   "Wildcard",
			Message: "must be set for the wildcard algorithm",
		}
	}
	if c.ASCIIOnly && c.Wildcard >= 0x80 {
		return &ConfigError{
			Field:   "Wildcard",
			Message: "must be an ASCII symbol when ASCIIOnly is set",
		}
	}
	return nil
}
