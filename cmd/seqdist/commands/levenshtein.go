package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqdist/internal/render"
	"github.com/Sumatoshi-tech/seqdist/pkg/distance"
)

// LevenshteinCommand holds flag state for the levenshtein subcommand.
type LevenshteinCommand struct {
	normalized bool
	words      bool
	format     string
}

// NewLevenshteinCommand creates the levenshtein subcommand.
func NewLevenshteinCommand() *cobra.Command {
	lc := &LevenshteinCommand{}

	cmd := &cobra.Command{
		Use:   "levenshtein <seq1> <seq2>",
		Short: "Compute the exact edit distance between two sequences",
		Args:  cobra.ExactArgs(2),
		RunE:  lc.run,
	}

	cmd.Flags().BoolVarP(&lc.normalized, "normalized", "n", false, "report the distance as a float in [0,1]")
	cmd.Flags().BoolVarP(&lc.words, "words", "w", false, "compare whitespace-separated tokens instead of characters")
	cmd.Flags().StringVar(&lc.format, "format", "", "output format: text, table, json, yaml (default from config)")

	return cmd
}

func (lc *LevenshteinCommand) run(cmd *cobra.Command, args []string) error {
	renderer, cfg, err := newRenderer(cmd.OutOrStdout(), lc.format)
	if err != nil {
		return err
	}

	normalized := lc.normalized || cfg.Distance.Normalized
	res := render.Result{Metric: "levenshtein", Left: args[0], Right: args[1]}

	if lc.words {
		left := strings.Fields(args[0])
		right := strings.Fields(args[1])

		if normalized {
			value, distErr := distance.LevenshteinOfNormalized(left, right)
			if distErr != nil {
				return distErr
			}

			res.Normalized = &value
		} else {
			res.Distance, err = distance.LevenshteinOf(left, right)
			if err != nil {
				return err
			}
		}

		return renderer.Result(res)
	}

	if normalized {
		value := distance.LevenshteinNormalized(args[0], args[1])
		res.Normalized = &value
	} else {
		res.Distance = distance.Levenshtein(args[0], args[1])
	}

	return renderer.Result(res)
}
