package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8081", cfg.Server.Listen)
	assert.Equal(t, "bfs", cfg.Search.Algorithm)
	assert.Equal(t, 5, cfg.Search.MaxPaths)
	assert.Equal(t, 30*time.Second, cfg.Search.Timeout.Duration)
	assert.Len(t, cfg.Locations, 10)
	assert.Contains(t, cfg.Locations, "Meskel Square")
	require.NoError(t, cfg.validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
listen = ":9090"

[search]
algorithm = "astar"
max_paths = 3
timeout = "10s"

[locations."Test Spot"]
lat = 9.05
lon = 38.75
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "astar", cfg.Search.Algorithm)
	assert.Equal(t, 3, cfg.Search.MaxPaths)
	assert.Equal(t, 10*time.Second, cfg.Search.Timeout.Duration)
	// untouched keys keep their defaults
	assert.Equal(t, "graphs/addis_ababa.fmi", cfg.Graph.File)
	assert.Contains(t, cfg.Locations, "Test Spot")
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("[search]\nalgorithm = \"dijkstra\"\n"), 0o644))

	_, err := Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown search algorithm")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestAverageSpeedMPS(t *testing.T) {
	cfg := Default()
	cfg.Search.AverageSpeedKmh = 36

	assert.InDelta(t, 10.0, cfg.AverageSpeedMPS(), 1e-9)
}

func TestLocationPoints(t *testing.T) {
	cfg := Default()
	points := cfg.LocationPoints()

	require.Len(t, points, 10)
	meskel := points["Meskel Square"]
	assert.Equal(t, 9.0105, meskel.Lat())
	assert.Equal(t, 38.7866, meskel.Lon())
}
