package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/splitlands/internal/core"
	"github.com/vovakirdan/splitlands/internal/maps"
)

func testItems() []MenuItem {
	return []MenuItem{
		{VariantID: "split", VariantTitle: "Split", Map: maps.Map{ID: "a", Name: "A", FilePath: "builtin/split.yaml"}},
		{VariantID: "streak", VariantTitle: "Bridges (Streak)", Map: maps.Map{ID: "b", Name: "B", FilePath: "/home/me/maps/b.yaml"}},
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testItems(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().VariantID != "streak" {
		t.Errorf("selected %+v", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testItems(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, cmd := m.Update(runeKey('q'))
	m = next.(MenuModel)
	if cmd == nil || m.Selected() != nil || m.View() != "" {
		t.Error("q should quit without a selection")
	}
}

func TestMenuItemSource(t *testing.T) {
	items := testItems()
	if got := items[0].source(); got != "built-in" {
		t.Errorf("source = %q", got)
	}
	if got := items[1].source(); got != "b.yaml" {
		t.Errorf("source = %q", got)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText = %q", got)
	}
}
