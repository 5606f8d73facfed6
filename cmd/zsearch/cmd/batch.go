package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/zsearch"
	"github.com/coregx/zsearch/internal/logger"
)

// batchResult is the outcome for one pattern line.
type batchResult struct {
	offsets []int
	stats   zsearch.Stats
}

func newBatchCmd(v *viper.Viper) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "batch <text_file> <patterns_file>",
		Short: "Search a text for many patterns concurrently",
		Long: `Search the text for every pattern in the patterns file, one pattern per
line. Empty lines are skipped. Up to --workers searches run at once.

Each output line is tab separated:
  <line> <occurrences> <1-based offsets, space separated>

Examples:
  zsearch batch text.txt patterns.txt
  zsearch batch -a modified-kmp -j 8 -o results.tsv text.txt patterns.txt`,
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
			patterns, lines, skipped, err := readPatterns(args[1])
			if err != nil {
				return err
			}
			if skipped > 0 {
				logger.Warn("skipped empty pattern lines", "file", args[1], "count", skipped)
			}

			start := time.Now()
			results := make([]batchResult, len(patterns))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers(v))
			for i, pattern := range patterns {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					offsets, stats, err := zsearch.MatchStats(pattern, text, cfg)
					if err != nil {
						return fmt.Errorf("line %d: %w", lines[i], err)
					}
					results[i] = batchResult{offsets: offsets, stats: stats}
					logger.DebugContext(ctx, "pattern searched", "line", lines[i], "occurrences", len(offsets))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w, closeFn, err := createOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := writeBatch(w, lines, results); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}

			var total zsearch.Stats
			total.Algorithm = cfg.Algorithm
			for _, r := range results {
				total.Comparisons += r.stats.Comparisons
				total.Shifts += r.stats.Shifts
				total.GalilSkips += r.stats.GalilSkips
				total.Sections += r.stats.Sections
			}
			logger.Info("batch complete",
				"algorithm", cfg.Algorithm.String(),
				"patterns", len(patterns),
				"workers", workers(v),
				"elapsed", time.Since(start))
			if v.GetBool("stats") {
				printStats(cmd, total, len(text))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	return cmd
}

func writeBatch(w io.Writer, lines []int, results []batchResult) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for i, r := range results {
		buf = strconv.AppendInt(buf[:0], int64(lines[i]), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(len(r.offsets)), 10)
		buf = append(buf, '\t')
		for j, off := range r.offsets {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(off+1), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
