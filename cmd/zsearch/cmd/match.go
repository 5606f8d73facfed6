package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/zsearch"
	"github.com/coregx/zsearch/internal/logger"
)

func newMatchCmd(v *viper.Viper) *cobra.Command {
	var (
		output string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "match <text_file> <pattern_file>",
		Short: "Find every occurrence of a pattern in a text",
		Long: `Find every occurrence of the pattern in the text and write the 1-based
start offsets, one per line, in ascending order.

The default output file in the current directory depends on the algorithm:
  boyermoore           output_boyermoore.txt
  mirrored-boyermoore  output_mirrored_boyermoore.txt
  kmp                  output_plain_kmp.txt
  modified-kmp         output_kmp.txt
  wildcard             output_wildcard_matching.txt
Use -o - to write to stdout.

Examples:
  zsearch match text.txt pattern.txt
  zsearch match -a wildcard -w '.' text.txt pattern.txt
  zsearch match -a kmp --stats -o - text.txt pattern.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := searchConfig(v)
			if err != nil {
				return err
			}

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			pattern, err := readPattern(args[1], raw)
			if err != nil {
				return err
			}

			offsets, stats, err := zsearch.MatchStats(pattern, text, cfg)
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutput(cfg.Algorithm)
			}
			w, closeFn, err := createOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := writeOffsets(w, offsets); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(), "search complete",
				"algorithm", cfg.Algorithm.String(),
				"occurrences", len(offsets),
				"output", output)
			if v.GetBool("stats") {
				printStats(cmd, stats, len(text))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default depends on --algorithm, - for stdout)")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep the pattern file's trailing newline")
	return cmd
}

// defaultOutput names the result file after the program each algorithm
// came from.
func defaultOutput(a zsearch.Algorithm) string {
	switch a {
	case zsearch.MirroredBoyerMoore:
		return "output_mirrored_boyermoore.txt"
	case zsearch.KMP:
		return "output_plain_kmp.txt"
	case zsearch.ModifiedKMP:
		return "output_kmp.txt"
	case zsearch.Wildcard:
		return "output_wildcard_matching.txt"
	default:
		return "output_boyermoore.txt"
	}
}

func printStats(cmd *cobra.Command, st zsearch.Stats, n int) {
	fmt.Fprintf(cmd.ErrOrStderr(), "algorithm=%s comparisons=%d shifts=%d galil_skips=%d sections=%d text_len=%d\n",
		st.Algorithm, st.Comparisons, st.Shifts, st.GalilSkips, st.Sections, n)
}
