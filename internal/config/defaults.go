package config

import (
	_ "embed"

	"github.com/vovakirdan/splitlands/internal/board"
)

//go:embed defaults/splitlands.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			TileWidth:      2,
			WindowTileSize: 32,
			ShowHelp:       true,
		},
		Variants: map[string]VariantConfig{
			board.VariantStreak: {StartBridges: 0, MaxBridges: 1},
			board.VariantBuild:  {StartBridges: 0, MaxBridges: 1},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
