package processor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/woozymasta/geodots/internal/config"

	"gopkg.in/yaml.v3"
)

// MarshalIndex encodes the continent index in the given format (json or yaml).
func MarshalIndex(idx ContinentIndex, format string) ([]byte, error) {
	switch format {
	case config.FormatYAML:
		data, err := yaml.Marshal(idx.Map())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		return data, nil
	case config.FormatJSON, "":
		data, err := json.MarshalIndent(idx.Map(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: unknown index format %q", ErrValidation, format)
	}
}

// WriteIndex writes the continent index to path.
func WriteIndex(path string, idx ContinentIndex, format string) error {
	data, err := MarshalIndex(idx, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
