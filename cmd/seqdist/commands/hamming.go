package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqdist/internal/render"
	"github.com/Sumatoshi-tech/seqdist/pkg/distance"
)

// HammingCommand holds flag state for the hamming subcommand.
type HammingCommand struct {
	normalized bool
	words      bool
	format     string
}

// NewHammingCommand creates the hamming subcommand.
func NewHammingCommand() *cobra.Command {
	hc := &HammingCommand{}

	cmd := &cobra.Command{
		Use:   "hamming <seq1> <seq2>",
		Short: "Count positional mismatches between two equal-length sequences",
		Args:  cobra.ExactArgs(2),
		RunE:  hc.run,
	}

	cmd.Flags().BoolVarP(&hc.normalized, "normalized", "n", false, "report the distance as a float in [0,1]")
	cmd.Flags().BoolVarP(&hc.words, "words", "w", false, "compare whitespace-separated tokens instead of characters")
	cmd.Flags().StringVar(&hc.format, "format", "", "output format: text, table, json, yaml (default from config)")

	return cmd
}

func (hc *HammingCommand) run(cmd *cobra.Command, args []string) error {
	renderer, cfg, err := newRenderer(cmd.OutOrStdout(), hc.format)
	if err != nil {
		return err
	}

	normalized := hc.normalized || cfg.Distance.Normalized
	res := render.Result{Metric: "hamming", Left: args[0], Right: args[1]}

	if hc.words {
		left := strings.Fields(args[0])
		right := strings.Fields(args[1])

		if normalized {
			value, distErr := distance.HammingOfNormalized(left, right)
			if distErr != nil {
				return distErr
			}

			res.Normalized = &value
		} else {
			res.Distance, err = distance.HammingOf(left, right)
			if err != nil {
				return err
			}
		}

		return renderer.Result(res)
	}

	if normalized {
		value, distErr := distance.HammingNormalized(args[0], args[1])
		if distErr != nil {
			return distErr
		}

		res.Normalized = &value

		return renderer.Result(res)
	}

	res.Distance, err = distance.Hamming(args[0], args[1])
	if err != nil {
		return err
	}

	return renderer.Result(res)
}
