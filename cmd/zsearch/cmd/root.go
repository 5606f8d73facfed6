// Package cmd implements the zsearch command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/zsearch"
	"github.com/coregx/zsearch/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "zsearch",
		Short: "Linear-time exact and wildcard substring search",
		Long: `zsearch finds every occurrence of a pattern in a text with Z-array based
algorithms: Boyer-Moore (forward and mirrored), Knuth-Morris-Pratt (plain and
modified) and a single-symbol wildcard matcher.

Offsets are written 1-based, one per line, in ascending order.

Configuration is read from $HOME/.zsearch.yaml (or --config) and from
ZSEARCH_* environment variables; flags take precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			logger.SetOutput(cmd.ErrOrStderr())
			lvl, err := logger.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			if used := v.ConfigFileUsed(); used != "" {
				logger.Debug("using config file", "path", used)
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.zsearch.yaml)")
	pf.StringP("algorithm", "a", zsearch.BoyerMoore.String(), "search algorithm: "+algorithmList())
	pf.StringP("wildcard", "w", string(rune(zsearch.DefaultConfig().Wildcard)), "wildcard symbol for the wildcard algorithm")
	pf.Bool("ascii-only", false, "reject input bytes >= 0x80")
	pf.IntP("workers", "j", runtime.NumCPU(), "concurrent searches for batch and verify")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("stats", false, "report comparison counts")

	for _, name := range []string{"algorithm", "wildcard", "ascii-only", "workers", "log-level", "stats"} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	rootCmd.AddCommand(newMatchCmd(v), newBatchCmd(v), newVerifyCmd(v))
	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("ZSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".zsearch")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// searchConfig resolves the library configuration from flags, environment
// and config file.
func searchConfig(v *viper.Viper) (zsearch.Config, error) {
	cfg := zsearch.DefaultConfig()

	algo, err := zsearch.ParseAlgorithm(v.GetString("algorithm"))
	if err != nil {
		return cfg, err
	}
	cfg.Algorithm = algo

	w := v.GetString("wildcard")
	if len(w) != 1 {
		return cfg, fmt.Errorf("wildcard must be a single byte, got %q", w)
	}
	cfg.Wildcard = w[0]
	cfg.ASCIIOnly = v.GetBool("ascii-only")

	return cfg, cfg.Validate()
}

func workers(v *viper.Viper) int {
	if n := v.GetInt("workers"); n > 0 {
		return n
	}
	return 1
}

func algorithmList() string {
	names := make([]string, 0, len(zsearch.Algorithms()))
	for _, a := range zsearch.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
