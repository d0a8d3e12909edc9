package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/splitlands/internal/core"
	"github.com/vovakirdan/splitlands/internal/platform/tui"
	"github.com/vovakirdan/splitlands/internal/registry"
)

var flagMap string

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Start playing the specified variant on its built-in map or on --map.

Controls:
  Arrows/hjkl  - Turn, then step
  Space        - Split or toggle a bridge
  R            - Restart the map
  Ctrl+Y       - Copy the board to the clipboard
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  splitlands play split
  splitlands play streak --map ./maps/lake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "", "Path to a map YAML file")
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := args[0]
	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'splitlands list' to see variants", variantID)
	}

	s, err := newSession(true)
	if err != nil {
		return err
	}
	defer s.close()

	if err := selectMap(variantID, flagMap); err != nil {
		return err
	}

	_, err = s.play(variantID, terminalConfig(s))
	return err
}

// play runs one TUI session and reports whether the player went back.
func (s *session) play(variantID string, cfg core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(variantID)
	if err != nil {
		return false, err
	}

	back, err := tui.Run(game, cfg, tui.Options{
		Logger:   s.logger,
		ShowHelp: s.cfg.Render.ShowHelp,
		UseHelp:  useHelp(variantID),
	})
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}
	return back, nil
}

// terminalConfig sizes the screen to the terminal.
func terminalConfig(s *session) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TileWidth = s.cfg.Render.TileWidth
	return cfg
}
