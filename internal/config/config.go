// Package config loads seqdist CLI configuration from file, environment
// variables, and defaults.
package config

import (
	"errors"
	"fmt"
)

// Default configuration values.
const (
	DefaultOutputFormat = "text"
	DefaultOutputColor  = true
	DefaultNormalized   = false
)

// Output formats accepted by the CLI.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned when output.format names an unsupported
// format.
var ErrUnknownFormat = errors.New("unknown output format")

// Config is the root CLI configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Distance DistanceConfig `mapstructure:"distance"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// DistanceConfig controls distance computation defaults.
type DistanceConfig struct {
	Normalized bool `mapstructure:"normalized"`
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.Output.Format)
	}
}
