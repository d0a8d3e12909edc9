package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/games/puzzle"
	"github.com/vovakirdan/splitlands/internal/maps"
	"github.com/vovakirdan/splitlands/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and map interactively",
	Long: `Start in interactive menu mode. Built-in maps are listed with the
maps found in maps_dir. Pressing Esc or B during play returns to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play the selected map
  Q/Esc        - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession(true)
	if err != nil {
		return err
	}
	defer s.close()

	items, err := s.menuItems()
	if err != nil {
		return err
	}

	cfg := terminalConfig(s)
	for {
		res, err := tui.RunMenu(items, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		cfg.TileWidth = s.cfg.Render.TileWidth

		if res.Item == nil {
			return nil
		}

		m := res.Item.Map
		puzzle.SetMap(&m)
		back, err := s.play(res.Item.VariantID, cfg)
		if err != nil {
			s.logger.Error("play failed", "variant", res.Item.VariantID, "map", m.ID, "err", err)
			return err
		}
		if !back {
			return nil
		}
	}
}

// menuItems lists every map with a known variant, built-in maps first.
func (s *session) menuItems() ([]tui.MenuItem, error) {
	all, err := maps.Builtins()
	if err != nil {
		return nil, err
	}
	all = append(all, s.extraMaps()...)

	items := make([]tui.MenuItem, 0, len(all))
	for _, m := range all {
		v, err := board.LookupVariant(m.Variant)
		if err != nil {
			continue
		}
		items = append(items, tui.MenuItem{VariantID: v.ID, VariantTitle: v.Title, Map: m})
	}
	return items, nil
}
