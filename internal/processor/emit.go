package processor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Emit writes records as NDJSON to path, truncating any existing file.
// A failure mid-write leaves the partial file in place.
func Emit(path string, records []DotRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, closeErr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteDots(bw, records); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	log.Debug().Str("path", path).Int("lines", len(records)).Msg("Dots written")
	return nil
}

// WriteDots encodes each record as one compact JSON line.
func WriteDots(w io.Writer, records []DotRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrWrite, i+1, err)
		}
	}
	return nil
}
