package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitlands/internal/games/puzzle"
	"github.com/vovakirdan/splitlands/internal/platform/gui"
	"github.com/vovakirdan/splitlands/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Play a variant in a desktop window",
	Long: `Open a desktop window sized to the map.

Controls:
  Arrows/WASD  - Turn, then step
  Space        - Split or toggle a bridge
  R            - Restart the map
  Esc/Q        - Close the window

Examples:
  splitlands window build
  splitlands window streak --map ./maps/lake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagMap, "map", "", "Path to a map YAML file")
}

func runWindow(_ *cobra.Command, args []string) error {
	variantID := args[0]

	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if err := selectMap(variantID, flagMap); err != nil {
		return err
	}

	rg, err := registry.Create(variantID)
	if err != nil {
		return err
	}
	game, ok := rg.(*puzzle.Game)
	if !ok {
		return fmt.Errorf("variant %q has no board", variantID)
	}

	return gui.Run(game, s.cfg.Render.WindowTileSize, s.logger)
}
