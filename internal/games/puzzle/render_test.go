package puzzle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/core"
	"github.com/vovakirdan/splitlands/internal/maps"
)

func mapWithInventory(variantID string, start int, rows ...string) maps.Map {
	return maps.Map{
		ID:      "inv",
		Name:    "Inventory",
		Variant: variantID,
		Rows:    rows,
		Bridges: &maps.Inventory{Start: start, Max: 1},
	}
}

func renderGame(g *Game) *core.Screen {
	w, h := g.Size()
	s := core.NewScreen(w, h)
	g.Render(s)
	return s
}

func TestRenderLayout(t *testing.T) {
	g := newTestGame(t, board.VariantSplit,
		"#P #",
		"#  #",
		"#G #",
	)
	s := renderGame(g)

	if !strings.HasPrefix(s.Row(0), " Split · Test  Moves: 0  Goals: 0/1") {
		t.Errorf("HUD = %q", s.Row(0))
	}
	if s.Get(0, 1) != '─' {
		t.Errorf("separator missing: %q", s.Row(1))
	}

	w, _ := g.Size()
	ox := (w - 8) / 2

	// Wall tile takes its color as background
	wall := s.GetCell(ox, 2)
	if wall.BG != core.Color(board.WallTile.Color) {
		t.Errorf("wall cell = %+v", wall)
	}

	// Player faces north on its tile
	player := s.GetCell(ox+2, 2)
	if player.Rune != '▲' || player.FG != core.ColorPlayer || player.BG != core.Color(board.OpenTile.Color) {
		t.Errorf("player cell = %+v", player)
	}

	goal := s.GetCell(ox+2, 4)
	if goal.Rune != goalGlyph || goal.FG != core.ColorGoal {
		t.Errorf("goal cell = %+v", goal)
	}
}

func TestRenderFacingAndBridges(t *testing.T) {
	g := newTestGame(t, board.VariantStreak, "P## ")
	s := renderGame(g)
	if !strings.Contains(s.Row(0), "Bridges: 0/1") {
		t.Errorf("HUD = %q", s.Row(0))
	}

	g.UseMap(mapWithInventory(board.VariantStreak, 1, "P## "))
	g.Reset(core.DefaultConfig())
	g.Step(core.FrameOf(core.ActionRight))
	g.Step(core.FrameOf(core.ActionUse))
	s = renderGame(g)

	w, _ := g.Size()
	ox := (w - 8) / 2
	if got := s.GetCell(ox, 2).Rune; got != '▶' {
		t.Errorf("player glyph = %q, expected ▶", got)
	}
	if got := s.GetCell(ox+2, 2).Rune; got != '═' {
		t.Errorf("bridge glyph = %q, expected ═", got)
	}
	if !strings.Contains(s.Row(3), "bridge built") {
		t.Errorf("status = %q", s.Row(3))
	}
}

func TestRenderSolvedOverlay(t *testing.T) {
	g := newTestGame(t, board.VariantPaint,
		"     ",
		" PG  ",
		"     ",
		"     ",
		"     ",
	)
	g.Step(core.FrameOf(core.ActionRight))

	s := core.NewScreen(40, 12)
	g.Render(s)
	if !strings.Contains(s.String(), "Solved!") {
		t.Errorf("expected solved overlay:\n%s", s.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, board.VariantStreak)

	s := core.NewScreen(30, 8)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too small overlay:\n%s", s.String())
	}
}

func TestSizeFitsMap(t *testing.T) {
	g := newTestGame(t, board.VariantStreak)
	w, h := g.Size()

	// 13x11 map, two cells per tile
	if w < 26 {
		t.Errorf("width = %d, expected at least 26", w)
	}
	if h != 11+hudHeight+statusHeight {
		t.Errorf("height = %d", h)
	}
}
