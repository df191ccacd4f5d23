package scraper

import (
	"regexp"

	"github.com/rs/zerolog/log"
)

// mapIDPatterns capture a numeric map ID from the surface syntaxes seen
// on Concept3D pages. Tried in order, first match wins; the generic
// id= form deliberately stays last.
var mapIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)mapId["']?\s*[:=]\s*["']?(\d+)`),
	regexp.MustCompile(`(?i)concept3d\.com/\?id=(\d+)`),
	regexp.MustCompile(`(?i)map\.concept3d\.com.*?id=(\d+)`),
	regexp.MustCompile(`(?i)id["']?\s*[:=]\s*["']?(\d+)`),
}

// ExtractMapID recovers the numeric map ID from the page text.
func ExtractMapID(page string) (string, error) {
	for _, re := range mapIDPatterns {
		if m := re.FindStringSubmatch(page); m != nil {
			log.Info().Str("map_id", m[1]).Msg("Found map ID")
			return m[1], nil
		}
	}

	return "", ErrNoMapID
}
