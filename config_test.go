package zsearch

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Algorithm != BoyerMoore {
		t.Errorf("Algorithm = %v, want boyermoore", cfg.Algorithm)
	}
	if cfg.Wildcard != '?' {
		t.Errorf("Wildcard = %q, want '?'", cfg.Wildcard)
	}
	if cfg.ASCIIOnly {
		t.Error("ASCIIOnly should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string // empty when valid
	}{
		{"default", DefaultConfig(), ""},
		{"every_algorithm", Config{Algorithm: Wildcard, Wildcard: '*'}, ""},
		{"bad_algorithm", Config{Algorithm: numAlgorithms}, "Algorithm"},
		{"zero_wildcard", Config{Algorithm: Wildcard}, "Wildcard"},
		{"zero_wildcard_literal_algorithm", Config{Algorithm: KMP}, ""},
		{"high_wildcard_ascii", Config{Wildcard: 0xAA, ASCIIOnly: true}, "Wildcard"},
		{"high_wildcard_bytes", Config{Wildcard: 0xAA}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			ce, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}
