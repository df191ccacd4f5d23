package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "GU", cfg.Site.Prefix)
	assert.Equal(t, 10, cfg.Timeout)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Len(t, cfg.Search.URLs, 4)
	assert.Equal(t, []string{"concept3d", "campus map"}, cfg.Search.Markers)
	assert.Contains(t, cfg.API.Base, "{id}")
	assert.Len(t, cfg.API.Endpoints, 5)
	assert.Len(t, cfg.Categories, 7)
	assert.Equal(t, "residence_hall", cfg.Categories["residence"])
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
site:
  id: 7
  name: Example College
  prefix: EC
search:
  urls:
    - https://maps.example.edu/
timeout: 20
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Site.ID)
	assert.Equal(t, "Example College", cfg.Site.Name)
	assert.Equal(t, "EC", cfg.Site.Prefix)
	assert.Equal(t, []string{"https://maps.example.edu/"}, cfg.Search.URLs)
	assert.Equal(t, 20, cfg.Timeout)

	// Untouched sections keep their defaults
	assert.Equal(t, []string{"concept3d", "campus map"}, cfg.Search.Markers)
	assert.Len(t, cfg.API.Endpoints, 5)
	assert.Equal(t, "academic_building", cfg.Categories["academic"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
