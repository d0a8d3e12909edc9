package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitlands/internal/core"
	"github.com/vovakirdan/splitlands/internal/games/puzzle"
	"github.com/vovakirdan/splitlands/internal/registry"
)

var flagKeys string

var showCmd = &cobra.Command{
	Use:   "show <variant>",
	Short: "Apply a key script and print the board",
	Long: `Load a map, apply a key script without opening a UI and print the
resulting board and inventory.

Script keys:
  n/e/s/w  - Press a direction
  x        - Press the action key
  r        - Restart the map

Examples:
  splitlands show split --keys "ssx"
  splitlands show streak --keys "ee x x"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagMap, "map", "", "Path to a map YAML file")
	showCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script to apply")
}

func runShow(_ *cobra.Command, args []string) error {
	variantID := args[0]

	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	frames, err := puzzle.ParseScript(flagKeys)
	if err != nil {
		return err
	}
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

	game.Reset(core.DefaultConfig())
	if game.Board() == nil {
		return game.Err()
	}

	changed := game.Play(frames)
	s.logger.Info("script applied", "variant", variantID, "keys", len(frames), "changed", changed)

	b := game.Board()
	p := b.Player()
	reached, total := b.Goals()

	fmt.Println(game.Export())
	fmt.Println()
	fmt.Printf("Player:  %s facing %s\n", p.Pos, p.Facing.Name())
	fmt.Printf("Moves:   %d\n", b.Moves())
	if p.MaxBridges > 0 {
		fmt.Printf("Bridges: %d/%d\n", p.Bridges, p.MaxBridges)
	}
	if total > 0 {
		fmt.Printf("Goals:   %d/%d\n", reached, total)
	}
	fmt.Printf("Solved:  %t\n", b.Solved())
	return nil
}
