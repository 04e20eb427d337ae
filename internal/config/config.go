// Package config handles configuration loading and run defaults.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixed paths used when neither flags nor the config file override them.
const (
	DefaultInput  = "data/world-administrative-boundaries.geojson"
	DefaultOutput = "data/dots.ndjson"
	DefaultFile   = "geodots.yaml"
	DefaultListen = "0.0.0.0:8080"

	DefaultPreviewWidth = 2048
)

// Index output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the root configuration file structure.
type Config struct {
	Input        string `yaml:"input,omitempty"`
	Output       string `yaml:"output,omitempty"`
	Index        string `yaml:"index,omitempty"`         // continent index, written only when set
	IndexFormat  string `yaml:"index_format,omitempty"`  // json or yaml
	Preview      string `yaml:"preview,omitempty"`       // webp preview, written only when set
	PreviewWidth int    `yaml:"preview_width,omitempty"` // height is half of it
	Listen       string `yaml:"listen,omitempty"`
	Strict       bool   `yaml:"strict,omitempty"` // reject unknown continent labels
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Input:        DefaultInput,
		Output:       DefaultOutput,
		IndexFormat:  FormatJSON,
		PreviewWidth: DefaultPreviewWidth,
		Listen:       DefaultListen,
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Unset fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.fillDefaults()
	return &cfg, nil
}

// LoadOptional behaves like Load but returns defaults when the file does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Input == "" {
		c.Input = def.Input
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.IndexFormat == "" {
		c.IndexFormat = def.IndexFormat
	}
	if c.PreviewWidth <= 0 {
		c.PreviewWidth = def.PreviewWidth
	}
	if c.Listen == "" {
		c.Listen = def.Listen
	}
}
