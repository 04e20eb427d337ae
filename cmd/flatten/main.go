package main

import (
	"os"

	"github.com/woozymasta/geodots/internal/config"
	"github.com/woozymasta/geodots/internal/logger"
	"github.com/woozymasta/geodots/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string `short:"c" long:"config"        env:"CONFIG_FILE"   description:"Path to configuration file (optional, geodots.yaml is read if present)"`
	Input        string `short:"i" long:"in"            env:"INPUT_FILE"    description:"Input GeoJSON FeatureCollection (default: data/world-administrative-boundaries.geojson)"`
	Output       string `short:"o" long:"out"           env:"OUTPUT_FILE"   description:"Output NDJSON file (default: data/dots.ndjson)"`
	Index        string `short:"x" long:"index"         env:"INDEX_FILE"    description:"Also write the continent to countries index to this file"`
	IndexFormat  string `short:"f" long:"index-format"  env:"INDEX_FORMAT"  description:"Continent index format" choice:"json" choice:"yaml"`
	Preview      string `short:"p" long:"preview"       env:"PREVIEW_FILE"  description:"Also render a webp preview of the dots to this file"`
	PreviewWidth int    `short:"w" long:"preview-width" env:"PREVIEW_WIDTH" description:"Preview width in pixels (height is half)"`
	Strict       bool   `short:"s" long:"strict"        env:"STRICT"        description:"Reject continent labels outside the known set"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	opts.apply(cfg)

	log.Debug().
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Bool("strict", cfg.Strict).
		Msg("Starting flatten")

	res, err := processor.Flatten(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("input", cfg.Input).Msg("Flatten failed")
	}

	log.Info().
		Int("lines", res.Lines).
		Int("continents", res.Index.Len()).
		Msg("Flatten finished successfully")
}

// loadConfig reads an explicitly given file strictly and the default file only if present.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOptional(config.DefaultFile)
}

// apply overrides configuration values with the flags that were set.
func (o Options) apply(cfg *config.Config) {
	if o.Input != "" {
		cfg.Input = o.Input
	}
	if o.Output != "" {
		cfg.Output = o.Output
	}
	if o.Index != "" {
		cfg.Index = o.Index
	}
	if o.IndexFormat != "" {
		cfg.IndexFormat = o.IndexFormat
	}
	if o.Preview != "" {
		cfg.Preview = o.Preview
	}
	if o.PreviewWidth > 0 {
		cfg.PreviewWidth = o.PreviewWidth
	}
	if o.Strict {
		cfg.Strict = true
	}
}
