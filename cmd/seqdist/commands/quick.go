package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqdist/internal/render"
	"github.com/Sumatoshi-tech/seqdist/pkg/distance"
)

// QuickCommand holds flag state for the quick subcommand.
type QuickCommand struct {
	format string
}

// NewQuickCommand creates the quick subcommand.
func NewQuickCommand() *cobra.Command {
	qc := &QuickCommand{}

	cmd := &cobra.Command{
		Use:   "quick <str1> <str2>",
		Short: "Compute the edit distance up to a cutoff of 2 in linear time",
		Long: `Compute the edit distance between two strings up to a maximum of 2
included. If the true distance is higher than that, -1 is printed.`,
		Args: cobra.ExactArgs(2),
		RunE: qc.run,
	}

	cmd.Flags().StringVar(&qc.format, "format", "", "output format: text, table, json, yaml (default from config)")

	return cmd
}

func (qc *QuickCommand) run(cmd *cobra.Command, args []string) error {
	renderer, _, err := newRenderer(cmd.OutOrStdout(), qc.format)
	if err != nil {
		return err
	}

	res := render.Result{
		Metric:   "quick-levenshtein",
		Left:     args[0],
		Right:    args[1],
		Distance: distance.Quick(args[0], args[1]),
	}

	return renderer.Result(res)
}
