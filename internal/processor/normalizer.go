// Package processor converts fetched Concept3D data into the output document.
package processor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/openindoormaps/gumap/internal/config"
	"github.com/openindoormaps/gumap/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// defaultPOIType is used for unknown or missing categories.
const defaultPOIType = "academic_building"

// Normalizer converts raw Concept3D payloads into POI documents.
type Normalizer struct {
	cfg *config.Config
}

// New creates a Normalizer for the configured site.
func New(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Build assembles the output document from the fetched payload. Buildings
// are processed first, then locations; POI ids are sequential across both
// and only assigned to entries that yield a coordinate.
func (n *Normalizer) Build(payload map[string]any) *geo.Document {
	doc := &geo.Document{
		ID:          n.cfg.Site.ID,
		Name:        n.cfg.Site.Name,
		Description: n.cfg.Site.Description,
		Address:     n.cfg.Site.Address,
		Location: geo.Location{
			Latitude:  n.cfg.Site.Latitude,
			Longitude: n.cfg.Site.Longitude,
		},
		IndoorMap: geojson.NewFeatureCollection(),
		POIs:      geojson.NewFeatureCollection(),
	}

	poiID := 1

	if buildings, ok := payload["buildings"].([]any); ok {
		for _, raw := range buildings {
			if f := n.poiFromEntry(raw, poiID, true); f != nil {
				doc.POIs.Append(f)
				poiID++
			}
		}
	}

	if locations, ok := payload["locations"].([]any); ok {
		for _, raw := range locations {
			// Locations are flat markers, always ground floor
			if f := n.poiFromEntry(raw, poiID, false); f != nil {
				doc.POIs.Append(f)
				poiID++
			}
		}
	}

	log.Info().Int("pois", len(doc.POIs.Features)).Msg("Converted payload to POI document")

	return doc
}

// poiFromEntry converts one building or location entry into a POI
// feature. Entries without a name or a usable coordinate yield nil.
func (n *Normalizer) poiFromEntry(raw any, id int, entryFloor bool) *geojson.Feature {
	entry, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	name, _ := entry["name"].(string)
	if name == "" {
		return nil
	}

	point, ok := extractCoordinates(entry)
	if !ok {
		log.Debug().Str("name", name).Msg("Entry has no usable coordinates, skipping")
		return nil
	}

	floor := any(1)
	if entryFloor {
		if v, ok := entry["floor"]; ok {
			floor = v
		}
	}

	description := any("")
	if v, ok := entry["description"]; ok {
		description = v
	}

	f := geojson.NewFeature(point)
	f.Properties = geojson.Properties{
		"id":          id,
		"name":        name,
		"type":        n.poiType(entry["category"]),
		"floor":       floor,
		"metadata":    map[string]any{"description": description},
		"building_id": n.cfg.Site.Prefix + "_" + SanitizeID(name),
	}

	return f
}

// poiType maps a Concept3D category to an output POI type tag,
// case-insensitively. Unknown categories become the default type.
func (n *Normalizer) poiType(raw any) string {
	category, _ := raw.(string)
	if t, ok := n.cfg.Categories[strings.ToLower(category)]; ok {
		return t
	}

	return defaultPOIType
}

// coordinatePairs are alternative field names carrying [x, y] values,
// in lookup priority order.
var coordinatePairs = [][2]string{
	{"lng", "lat"},
	{"longitude", "latitude"},
	{"x", "y"},
}

// extractCoordinates recovers an [x, y] point from the known Concept3D
// coordinate representations. A `coordinates` list of length >= 2 wins;
// a malformed list falls through to the named field pairs. A present
// pair with non-numeric values drops the entry.
func extractCoordinates(entry map[string]any) (orb.Point, bool) {
	if raw, ok := entry["coordinates"]; ok {
		if list, ok := raw.([]any); ok && len(list) >= 2 {
			x, okX := toFloat(list[0])
			y, okY := toFloat(list[1])
			if okX && okY {
				return orb.Point{x, y}, true
			}

			return orb.Point{}, false
		}
	}

	for _, pair := range coordinatePairs {
		xv, okX := entry[pair[0]]
		yv, okY := entry[pair[1]]
		if !okX || !okY {
			continue
		}

		x, ok1 := toFloat(xv)
		y, ok2 := toFloat(yv)
		if ok1 && ok2 {
			return orb.Point{x, y}, true
		}

		return orb.Point{}, false
	}

	return orb.Point{}, false
}

// toFloat coerces the JSON value types a coordinate may arrive as.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

var nonAlnum = regexp.MustCompile(`[^A-Z0-9]+`)

// SanitizeID derives a clean building identifier from a display name:
// uppercased, runs of other characters collapsed to underscores.
func SanitizeID(name string) string {
	if name == "" {
		return "UNKNOWN"
	}

	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToUpper(name), "_"), "_")
}
