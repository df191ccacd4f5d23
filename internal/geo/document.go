// Package geo holds the output document structures.
package geo

import (
	"github.com/paulmach/orb/geojson"
)

// Document is the top-level "POI + indoor map" output format.
// Identity fields come from configuration; only POIs carry fetched data.
type Document struct {
	ID          int                        `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Address     string                     `json:"address"`
	Location    Location                   `json:"location"`
	IndoorMap   *geojson.FeatureCollection `json:"indoor_map"`
	POIs        *geojson.FeatureCollection `json:"pois"`
}

// Location is the campus anchor coordinate.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
