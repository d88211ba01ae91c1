// Package config loads the YAML layout/grid description the CLI and API
// server accept via --config.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/earthmesh/cubedsphere/internal/partition"
)

// GridConfig describes the per-face sub-tile grid a partitioner should be
// built from.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Load reads and parses a YAML grid configuration file.
func Load(path string) (GridConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GridConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg GridConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GridConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Layout converts the parsed configuration into a partition.Layout.
func (c GridConfig) Layout() (partition.Layout, error) {
	return partition.NewLayout(c.Rows, c.Cols)
}
