// Package commands implements CLI command handlers for seqdist.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqdist/internal/config"
	"github.com/Sumatoshi-tech/seqdist/internal/render"
)

var configPath string

// RegisterConfigFlag attaches the shared --config flag to the root command.
func RegisterConfigFlag(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"config file path (default: .seqdist.yaml in CWD or $HOME)")
}

// newRenderer loads configuration and builds a renderer on out. A
// non-empty formatOverride wins over the configured format.
func newRenderer(out io.Writer, formatOverride string) (*render.Renderer, *config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	format := cfg.Output.Format
	if formatOverride != "" {
		format = formatOverride
	}

	slog.Debug("renderer configured", "format", format, "color", cfg.Output.Color)

	return render.New(out, format, cfg.Output.Color), cfg, nil
}
