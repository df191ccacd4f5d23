package scraper

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

// FetchMapData requests every configured API endpoint for the map and
// collects whatever parses as JSON, keyed by the trimmed endpoint name.
// Unavailable endpoints are logged and skipped; an empty result means
// the map has no usable data.
func (s *Scraper) FetchMapData(mapID string) map[string]any {
	base := strings.ReplaceAll(s.cfg.API.Base, "{id}", mapID)
	data := make(map[string]any)

	for _, endpoint := range s.cfg.API.Endpoints {
		url := base + endpoint
		log.Info().Str("url", url).Msg("Fetching endpoint")

		body, err := s.get(url)
		if err != nil {
			log.Warn().Err(err).Str("endpoint", endpoint).Msg("Endpoint unavailable")
			continue
		}

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Warn().Err(err).Str("endpoint", endpoint).Msg("Endpoint returned invalid JSON")
			continue
		}

		name := strings.Trim(endpoint, "/")
		data[name] = payload

		evt := log.Debug().Str("endpoint", name)
		if list, ok := payload.([]any); ok {
			evt = evt.Int("count", len(list))
		}
		evt.Msg("Endpoint fetched")
	}

	log.Info().
		Int("available", len(data)).
		Int("requested", len(s.cfg.API.Endpoints)).
		Msg("Endpoint fetch finished")

	return data
}
