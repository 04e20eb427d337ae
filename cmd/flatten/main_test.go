package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/geodots/internal/config"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func TestOptionsApply(t *testing.T) {
	var opts Options
	_, err := flags.ParseArgs(&opts, []string{"--in", "a.geojson", "-o", "b.ndjson", "--index-format", "yaml", "--strict"})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Index = "continents.yaml"
	opts.apply(cfg)

	require.Equal(t, "a.geojson", cfg.Input)
	require.Equal(t, "b.ndjson", cfg.Output)
	require.Equal(t, "continents.yaml", cfg.Index)
	require.Equal(t, config.FormatYAML, cfg.IndexFormat)
	require.Equal(t, config.DefaultPreviewWidth, cfg.PreviewWidth)
	require.True(t, cfg.Strict)
}

func TestOptionsRejectUnknownFormat(t *testing.T) {
	var opts Options
	_, err := flags.ParseArgs(&opts, []string{"--index-format", "toml"})
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "geodots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: world.geojson\n"), 0644))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "world.geojson", cfg.Input)
	require.Equal(t, config.DefaultOutput, cfg.Output)
}
