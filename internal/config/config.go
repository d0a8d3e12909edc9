// Package config provides YAML-based runtime configuration for the puzzle
// front ends and per-variant rule overrides.
package config

import (
	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/core"
)

// Config contains all runtime configuration.
type Config struct {
	Render   RenderConfig             `yaml:"render"`
	Variants map[string]VariantConfig `yaml:"variants"`
	MapsDir  string                   `yaml:"maps_dir"`
}

// RenderConfig defines how the board is drawn.
type RenderConfig struct {
	TileWidth      int  `yaml:"tile_width"`       // Terminal cells per tile horizontally
	WindowTileSize int  `yaml:"window_tile_size"` // Pixels per tile in the window front end
	ShowHelp       bool `yaml:"show_help"`
}

// VariantConfig overrides the bridge inventory of a variant.
type VariantConfig struct {
	StartBridges int `yaml:"start_bridges"`
	MaxBridges   int `yaml:"max_bridges"`
}

// Limits for render settings.
const (
	MinTileWidth      = 1
	MaxTileWidth      = 4
	MinWindowTileSize = 8
	MaxWindowTileSize = 128
)

// Normalize clamps render settings into their supported ranges and drops
// negative inventory values.
func (c *Config) Normalize() {
	c.Render.TileWidth = core.Clamp(c.Render.TileWidth, MinTileWidth, MaxTileWidth)
	c.Render.WindowTileSize = core.Clamp(c.Render.WindowTileSize, MinWindowTileSize, MaxWindowTileSize)

	for id, vc := range c.Variants {
		vc.StartBridges = max(vc.StartBridges, 0)
		vc.MaxBridges = max(vc.MaxBridges, 0)
		c.Variants[id] = vc
	}
}

// ApplyVariant returns v with the configured inventory for its ID.
// Variants without an entry are returned unchanged.
func (c Config) ApplyVariant(v board.Variant) board.Variant {
	vc, ok := c.Variants[v.ID]
	if !ok {
		return v
	}
	v.StartBridges = vc.StartBridges
	v.MaxBridges = vc.MaxBridges
	return v
}
