package processor

import (
	"fmt"
	"time"

	"github.com/woozymasta/geodots/internal/config"

	"github.com/rs/zerolog/log"
)

// Result summarizes a flatten run.
type Result struct {
	Index    ContinentIndex
	Features int
	Lines    int
}

// Flatten runs Load, Group, Project and Emit in that order, then writes the
// optional continent index and preview. The first error aborts the run.
func Flatten(cfg *config.Config) (*Result, error) {
	start := time.Now()

	if err := validateOptions(cfg); err != nil {
		return nil, err
	}

	fc, err := Load(cfg.Input)
	if err != nil {
		return nil, err
	}

	if cfg.Strict {
		if err := ValidateContinents(fc.Features); err != nil {
			return nil, err
		}
	}

	idx := GroupByContinent(fc.Features)
	log.Debug().Int("continents", idx.Len()).Msg("Countries grouped by continent")

	records, err := ProjectAll(fc.Features)
	if err != nil {
		return nil, err
	}

	if err := Emit(cfg.Output, records); err != nil {
		return nil, err
	}

	log.Info().
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Int("features", len(fc.Features)).
		Dur("duration", time.Since(start)).
		Msg("Dots generated")

	if cfg.Index != "" {
		if err := WriteIndex(cfg.Index, idx, cfg.IndexFormat); err != nil {
			return nil, err
		}
		log.Info().
			Str("path", cfg.Index).
			Str("format", cfg.IndexFormat).
			Int("continents", idx.Len()).
			Msg("Continent index written")
	}

	if cfg.Preview != "" {
		img, err := RenderPreview(records, cfg.PreviewWidth)
		if err != nil {
			return nil, err
		}
		if err := SavePreview(cfg.Preview, img); err != nil {
			return nil, err
		}
		log.Info().
			Str("path", cfg.Preview).
			Int("width", cfg.PreviewWidth).
			Msg("Preview rendered")
	}

	return &Result{
		Index:    idx,
		Features: len(fc.Features),
		Lines:    len(records),
	}, nil
}

// validateOptions rejects output options before any file is read or written.
func validateOptions(cfg *config.Config) error {
	switch cfg.IndexFormat {
	case config.FormatJSON, config.FormatYAML, "":
	default:
		return fmt.Errorf("%w: unknown index format %q", ErrValidation, cfg.IndexFormat)
	}
	if cfg.Preview != "" && cfg.PreviewWidth < 2 {
		return fmt.Errorf("%w: preview width must be >= 2, got %d", ErrValidation, cfg.PreviewWidth)
	}
	return nil
}
