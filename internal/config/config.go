// Package config loads the server and search configuration from a TOML file,
// layered over built-in defaults.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
)

type Config struct {
	Server    Server                `toml:"server"`
	Graph     Graph                 `toml:"graph"`
	Search    Search                `toml:"search"`
	Locations map[string]Coordinate `toml:"locations"`
}

type Server struct {
	Listen string `toml:"listen"`
}

type Graph struct {
	File string `toml:"file"`
}

type Search struct {
	Algorithm       string   `toml:"algorithm"`
	MaxPaths        int      `toml:"max_paths"`
	AverageSpeedKmh float64  `toml:"average_speed_kmh"`
	Timeout         Duration `toml:"timeout"`
}

type Coordinate struct {
	Lat float64 `toml:"lat"`
	Lon float64 `toml:"lon"`
}

// Duration wraps time.Duration so TOML values can use "30s" notation.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the built-in configuration, including the known Addis Ababa
// locations used by the name resolver.
func Default() Config {
	return Config{
		Server: Server{Listen: ":8081"},
		Graph:  Graph{File: "graphs/addis_ababa.fmi"},
		Search: Search{
			Algorithm:       "bfs",
			MaxPaths:        5,
			AverageSpeedKmh: 30,
			Timeout:         Duration{30 * time.Second},
		},
		Locations: map[string]Coordinate{
			"Bole International Airport": {8.9806, 38.7997},
			"Meskel Square":              {9.0105, 38.7866},
			"Piassa":                     {9.0276, 38.7469},
			"Kazanchis":                  {9.0227, 38.7612},
			"Arat Kilo":                  {9.0438, 38.7600},
			"Mexico Square":              {9.0431, 38.7782},
			"Sarbet":                     {9.0281, 38.7812},
			"Bole Medhanealem":           {8.9922, 38.7978},
			"Gotera":                     {9.0027, 38.8128},
			"Megenagna":                  {9.0497, 38.8014},
		},
	}
}

// Load reads the TOML file at path on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Search.Algorithm {
	case "bfs", "dfs", "astar":
	default:
		return fmt.Errorf("unknown search algorithm %q", c.Search.Algorithm)
	}
	if c.Search.MaxPaths <= 0 {
		return fmt.Errorf("max_paths must be positive, got %d", c.Search.MaxPaths)
	}
	if c.Search.AverageSpeedKmh < 0 {
		return fmt.Errorf("average_speed_kmh must not be negative, got %g", c.Search.AverageSpeedKmh)
	}
	return nil
}

// AverageSpeedMPS converts the configured speed to meters per second.
func (c Config) AverageSpeedMPS() float64 {
	return c.Search.AverageSpeedKmh * 1000.0 / 3600.0
}

// LocationPoints converts the location table for the resolver.
func (c Config) LocationPoints() map[string]geo.Point {
	points := make(map[string]geo.Point, len(c.Locations))
	for name, coord := range c.Locations {
		points[name] = geo.MakePoint(coord.Lat, coord.Lon)
	}
	return points
}
