package main

import (
	"net/http"
	"os"

	"github.com/woozymasta/geodots/internal/config"
	"github.com/woozymasta/geodots/internal/logger"
	"github.com/woozymasta/geodots/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file (optional, geodots.yaml is read if present)"`
	Listen     string `short:"l" long:"listen" env:"LISTEN_ADDRESS" description:"Address to listen on (default: 0.0.0.0:8080)"`
	Input      string `short:"i" long:"in"     env:"INPUT_FILE"     description:"GeoJSON used for the continent index"`
	Dots       string `short:"d" long:"dots"   env:"OUTPUT_FILE"    description:"NDJSON file served at /data/dots.ndjson"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
	} else {
		cfg, err = config.LoadOptional(config.DefaultFile)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	if opts.Input != "" {
		cfg.Input = opts.Input
	}
	if opts.Dots != "" {
		cfg.Output = opts.Dots
	}

	srvCtx := server.NewServerContext(cfg)

	log.Info().
		Str("addr", cfg.Listen).
		Str("dots", cfg.Output).
		Msg("Web server started")

	if err := http.ListenAndServe(cfg.Listen, srvCtx.Routes()); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
