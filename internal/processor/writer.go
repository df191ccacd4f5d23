package processor

import (
	"encoding/json"
	"os"

	"github.com/openindoormaps/gumap/internal/geo"

	"github.com/rs/zerolog/log"
)

// WriteDocument serializes the document to path as indented UTF-8 JSON,
// overwriting any existing file. Non-ASCII characters are written
// literally.
func WriteDocument(path string, doc *geo.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
