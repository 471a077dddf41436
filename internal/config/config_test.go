package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/seqdist/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, config.DefaultOutputColor, cfg.Output.Color)
	assert.Equal(t, config.DefaultNormalized, cfg.Distance.Normalized)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqdist.yaml")

	content := []byte("output:\n  format: json\n  color: false\ndistance:\n  normalized: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.True(t, cfg.Distance.Normalized)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SEQDIST_OUTPUT_FORMAT", "yaml")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
}

func TestLoadConfigBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqdist.yaml")

	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\n"), 0o600))

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	for _, format := range []string{
		config.FormatText, config.FormatTable, config.FormatJSON, config.FormatYAML,
	} {
		cfg := config.Config{Output: config.OutputConfig{Format: format}}
		assert.NoError(t, cfg.Validate())
	}

	cfg := config.Config{Output: config.OutputConfig{Format: "xml"}}
	assert.ErrorIs(t, cfg.Validate(), config.ErrUnknownFormat)
}
