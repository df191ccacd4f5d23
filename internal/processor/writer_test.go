package processor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openindoormaps/gumap/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	n := New(config.Default())
	doc := n.Build(map[string]any{
		"buildings": []any{
			map[string]any{
				"name":        "Café Tombé",
				"category":    "dining",
				"lng":         -77.072,
				"lat":         38.907,
				"description": "Coffee & pastries",
			},
		},
	})

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteDocument(path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	// Indented, non-ASCII and markup written literally
	assert.Contains(t, text, "  \"id\": 1")
	assert.Contains(t, text, "Café Tombé")
	assert.Contains(t, text, "Coffee & pastries")
	assert.NotContains(t, text, `\u`)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	for _, key := range []string{"id", "name", "description", "address", "location", "indoor_map", "pois"} {
		assert.Contains(t, got, key)
	}

	indoor, ok := got["indoor_map"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FeatureCollection", indoor["type"])
	assert.Empty(t, indoor["features"])

	pois, ok := got["pois"].(map[string]any)
	require.True(t, ok)
	features, ok := pois["features"].([]any)
	require.True(t, ok)
	require.Len(t, features, 1)

	feature := features[0].(map[string]any)
	assert.Equal(t, "Feature", feature["type"])

	geometry := feature["geometry"].(map[string]any)
	assert.Equal(t, "Point", geometry["type"])
	assert.Equal(t, []any{-77.072, 38.907}, geometry["coordinates"])

	props := feature["properties"].(map[string]any)
	assert.Equal(t, "dining", props["type"])
	assert.Equal(t, "GU_CAF_TOMB", props["building_id"])
}

func TestWriteDocument_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 1000)), 0644))

	doc := New(config.Default()).Build(map[string]any{})
	require.NoError(t, WriteDocument(path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "xxx")

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
}
