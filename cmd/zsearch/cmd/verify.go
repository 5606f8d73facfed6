package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"slices"
	"sync/atomic"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/zsearch"
	"github.com/coregx/zsearch/internal/logger"
	"github.com/coregx/zsearch/internal/reference"
)

// verifyOptions controls random case generation.
type verifyOptions struct {
	rounds     int
	seed       int64
	wildcards  int
	alphabet   string
	maxText    int
	maxPattern int
}

func newVerifyCmd(v *viper.Viper) *cobra.Command {
	var opts verifyOptions

	cmd := &cobra.Command{
		Use:   "verify [<text_file> <pattern_file>]",
		Short: "Cross-check every algorithm against a reference matcher",
		Long: `Run every algorithm and compare the offsets with an independent reference:
an Aho-Corasick automaton for literal patterns and brute force for wildcard
patterns.

With two file arguments the given text and pattern are checked. Without
arguments --rounds random cases are generated from --alphabet; the wildcard
algorithm additionally gets --wildcards random pattern positions replaced
by the wildcard symbol.

Examples:
  zsearch verify text.txt pattern.txt
  zsearch verify --rounds 10000 --seed 7 --wildcards 2`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := searchConfig(v)
			if err != nil {
				return err
			}

			if len(args) == 2 {
				text, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				pattern, err := readPattern(args[1], false)
				if err != nil {
					return err
				}
				log := logger.With("text", args[0], "pattern", args[1])
				if err := verifyCase(pattern, pattern, text, cfg); err != nil {
					log.Error("verification failed", "error", err)
					return err
				}
				log.Debug("verification passed", "algorithms", len(zsearch.Algorithms()))
				fmt.Fprintln(cmd.OutOrStdout(), "ok: all algorithms agree with the reference")
				return nil
			}

			if opts.rounds < 1 || opts.maxText < 0 || opts.maxPattern < 1 || opts.alphabet == "" {
				return fmt.Errorf("verify: --rounds and --max-pattern must be positive and --alphabet non-empty")
			}

			var failed atomic.Int64
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers(v))
			for round := 0; round < opts.rounds; round++ {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					rng := newRand(opts.seed + int64(round))
					literal, wild, text := randomCase(rng, opts, cfg.Wildcard)
					if err := verifyCase(literal, wild, text, cfg); err != nil {
						failed.Add(1)
						logger.Error("verification failed", "round", round, "error", err)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if n := failed.Load(); n > 0 {
				return fmt.Errorf("verify: %d of %d rounds failed", n, opts.rounds)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rounds, %d algorithms\n", opts.rounds, len(zsearch.Algorithms()))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.rounds, "rounds", 1000, "random cases to generate")
	f.Int64Var(&opts.seed, "seed", 1, "random seed; round i uses seed+i")
	f.IntVar(&opts.wildcards, "wildcards", 1, "pattern positions replaced by the wildcard")
	f.StringVar(&opts.alphabet, "alphabet", "ab", "symbols used for random text and patterns")
	f.IntVar(&opts.maxText, "max-text", 200, "maximum random text length")
	f.IntVar(&opts.maxPattern, "max-pattern", 8, "maximum random pattern length")
	return cmd
}

// randomCase returns a literal pattern, the same pattern with random
// positions replaced by wildcard, and a text.
func randomCase(rng *rand.Rand, opts verifyOptions, wildcard byte) (literal, wild, text []byte) {
	text = make([]byte, rng.Intn(opts.maxText+1))
	for i := range text {
		text[i] = opts.alphabet[rng.Intn(len(opts.alphabet))]
	}

	literal = make([]byte, 1+rng.Intn(opts.maxPattern))
	if len(text) >= len(literal) && rng.Intn(2) == 0 {
		// Cut the pattern from the text so the case has occurrences.
		at := rng.Intn(len(text) - len(literal) + 1)
		copy(literal, text[at:])
	} else {
		for i := range literal {
			literal[i] = opts.alphabet[rng.Intn(len(opts.alphabet))]
		}
	}

	wild = slices.Clone(literal)
	for k := 0; k < opts.wildcards; k++ {
		wild[rng.Intn(len(wild))] = wildcard
	}
	return literal, wild, text
}

// verifyCase checks the literal algorithms on literal and the wildcard
// algorithm on wild.
func verifyCase(literal, wild, text []byte, cfg zsearch.Config) error {
	want, err := reference.Literal(literal, text)
	if err != nil {
		return err
	}
	wantWild := reference.Naive(wild, text, int(cfg.Wildcard))

	for _, a := range zsearch.Algorithms() {
		c := cfg
		c.Algorithm = a
		pattern, expect := literal, want
		if a == zsearch.Wildcard {
			pattern, expect = wild, wantWild
		}

		got, err := zsearch.MatchWithConfig(pattern, text, c)
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		if !slices.Equal(got, expect) {
			return fmt.Errorf("%s: pattern %q text %q: got %v, want %v", a, pattern, text, got, expect)
		}
	}
	return nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
