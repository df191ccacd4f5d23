// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full run configuration. Defaults cover the
// Georgetown deployment; a YAML file overlays any of them.
type Config struct {
	Site       Site              `yaml:"site"`
	Search     Search            `yaml:"search"`
	API        API               `yaml:"api"`
	Categories map[string]string `yaml:"categories,omitempty"`
	UserAgent  string            `yaml:"user_agent,omitempty"`
	Timeout    int               `yaml:"timeout,omitempty"` // seconds per request
}

// Site describes the institution the output document is written for.
// These fields are emitted verbatim, never derived from fetched data.
type Site struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Address     string  `yaml:"address"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	Prefix      string  `yaml:"prefix"` // building_id prefix, e.g. "GU"
}

// Search configures the map page discovery stage.
type Search struct {
	URLs    []string `yaml:"urls"`
	Markers []string `yaml:"markers"` // matched case-insensitively
}

// API configures the Concept3D data endpoints.
type API struct {
	Base      string   `yaml:"base"` // template, {id} is replaced with the map ID
	Endpoints []string `yaml:"endpoints"`
}

// Default returns the built-in Georgetown configuration.
func Default() *Config {
	return &Config{
		Site: Site{
			ID:          1,
			Name:        "Georgetown University Hilltop Campus",
			Description: "Georgetown University's main campus in Washington, D.C.",
			Address:     "37th and O Streets NW, Washington, DC 20057",
			Latitude:    38.9076,
			Longitude:   -77.0723,
			Prefix:      "GU",
		},
		Search: Search{
			URLs: []string{
				"https://map.concept3d.com/?id=1161",
				"https://georgetown.concept3d.com/",
				"https://maps.georgetown.edu/",
				"https://www.georgetown.edu/campus-map/",
			},
			Markers: []string{"concept3d", "campus map"},
		},
		API: API{
			Base: "https://map.concept3d.com/api/map/{id}",
			Endpoints: []string{
				"/buildings",
				"/locations",
				"/categories",
				"/geojson",
				"/data.json",
			},
		},
		Categories: map[string]string{
			"academic":  "academic_building",
			"residence": "residence_hall",
			"dining":    "dining",
			"athletics": "athletic_facility",
			"library":   "library",
			"chapel":    "chapel",
			"admin":     "academic_building",
		},
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		Timeout:   10,
	}
}

// Load reads and parses the YAML configuration file from the specified
// path, overlaying it on the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
