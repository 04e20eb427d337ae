package server

import (
	"github.com/woozymasta/geodots/assets"
	"github.com/woozymasta/geodots/internal/config"
	"github.com/woozymasta/geodots/internal/geo"
	"github.com/woozymasta/geodots/internal/processor"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config     *config.Config
	Continents map[geo.Continent][]string
	IndexHTML  []byte
	Favicon    []byte
}

// NewServerContext initializes the context and builds the continent index from
// the configured input. A missing or broken input leaves the index empty.
func NewServerContext(cfg *config.Config) *ServerContext {
	log.Info().Str("input", cfg.Input).Msg("Initializing server context")

	continents := map[geo.Continent][]string{}
	fc, err := processor.Load(cfg.Input)
	if err != nil {
		log.Warn().
			Err(err).
			Str("input", cfg.Input).
			Msg("Continent index disabled: input not loaded")
	} else {
		continents = processor.GroupByContinent(fc.Features).Map()
	}

	log.Info().
		Int("continents", len(continents)).
		Str("dots", cfg.Output).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:     cfg,
		Continents: continents,
		IndexHTML:  assets.Index,
		Favicon:    assets.Favicon,
	}
}
