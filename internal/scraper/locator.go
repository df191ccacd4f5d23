package scraper

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// FindMapPage probes the configured candidate URLs in order and returns
// the first one whose body looks like a Concept3D campus map page,
// together with the page text. Failed candidates are logged and skipped.
func (s *Scraper) FindMapPage() (string, string, error) {
	for _, url := range s.cfg.Search.URLs {
		log.Info().Str("url", url).Msg("Probing candidate page")

		body, err := s.get(url)
		if err != nil {
			log.Warn().Err(err).Str("url", url).Msg("Candidate page failed")
			continue
		}

		page := string(body)
		if containsMarker(page, s.cfg.Search.Markers) {
			log.Info().Str("url", url).Msg("Found campus map page")
			return url, page, nil
		}

		log.Debug().Str("url", url).Msg("Page has no map marker")
	}

	return "", "", ErrNoPage
}

// containsMarker reports whether the page contains any marker substring,
// case-insensitively.
func containsMarker(page string, markers []string) bool {
	lower := strings.ToLower(page)
	for _, marker := range markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}

	return false
}
