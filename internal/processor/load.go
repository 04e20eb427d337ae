// Package processor turns a country boundary FeatureCollection into NDJSON dots.
package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/woozymasta/geodots/internal/geo"

	"github.com/rs/zerolog/log"
)

// Load reads the whole file at path and decodes it as a FeatureCollection.
// The root must carry the exact keys "type" and "features"; features may be
// an empty array but not null.
func Load(path string) (*geo.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	rawType, ok := root["type"]
	if !ok {
		return nil, fmt.Errorf("%w: missing geojson type in %s", ErrValidation, path)
	}
	var fc geo.FeatureCollection
	if err := json.Unmarshal(rawType, &fc.Type); err != nil || fc.Type != geo.TypeFeatureCollection {
		return nil, fmt.Errorf("%w: unexpected geojson type %s in %s", ErrValidation, rawType, path)
	}

	rawFeatures, ok := root["features"]
	if !ok || isNull(rawFeatures) {
		return nil, fmt.Errorf("%w: missing features in %s", ErrValidation, path)
	}
	if err := json.Unmarshal(rawFeatures, &fc.Features); err != nil {
		return nil, fmt.Errorf("%w: %s: features: %w", ErrParse, path, err)
	}

	log.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Int("features", len(fc.Features)).
		Msg("FeatureCollection loaded")

	return &fc, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ValidateContinents rejects features whose continent label is outside the known set.
// Features without a continent are left to the projector.
func ValidateContinents(features []geo.Feature) error {
	for i, f := range features {
		c := f.Properties.Continent
		if c == nil || c.Valid() {
			continue
		}
		return fmt.Errorf("%w: feature %d has unknown continent %q", ErrValidation, i, *c)
	}
	return nil
}
