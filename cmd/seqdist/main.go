// Package main provides the entry point for the seqdist CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqdist/cmd/seqdist/commands"
	"github.com/Sumatoshi-tech/seqdist/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "seqdist",
		Short: "Seqdist - sequence distance toolkit",
		Long: `Seqdist computes similarity metrics between ordered sequences.

Commands:
  hamming      Positional mismatch count for equal-length sequences
  levenshtein  Exact edit distance
  quick        Bounded edit distance (cutoff 2, linear time)
  filter       Stream candidates within edit distance 2 of a reference`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")
	commands.RegisterConfigFlag(rootCmd)

	// Add commands.
	rootCmd.AddCommand(commands.NewHammingCommand())
	rootCmd.AddCommand(commands.NewLevenshteinCommand())
	rootCmd.AddCommand(commands.NewQuickCommand())
	rootCmd.AddCommand(commands.NewFilterCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn

	if verbose {
		level = slog.LevelDebug
	}

	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "seqdist %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
