package tui

import (
	"testing"

	"github.com/vovakirdan/splitlands/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorText)
	s.SetCell(2, 0, core.Cell{Rune: '~', FG: "#6cf", BG: "#08a"})
	s.SetCell(3, 0, core.Cell{Rune: '~', FG: "#6cf", BG: "#08a"})
	s.DrawText(0, 1, "plain", core.ColorDefault)

	// Tests run without a terminal, so lipgloss emits no escape codes.
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestStyleCacheReuses(t *testing.T) {
	c := make(styleCache)
	k := cellColors{fg: core.ColorGoal, bg: "#3a0"}

	c.get(k)
	c.get(k)
	c.get(cellColors{fg: core.ColorPlayer})

	if len(c) != 2 {
		t.Errorf("expected 2 cached styles, got %d", len(c))
	}
}
