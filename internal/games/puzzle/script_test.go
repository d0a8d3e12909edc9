package puzzle

import (
	"testing"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/core"
)

func TestParseScript(t *testing.T) {
	frames, err := ParseScript("n e\ts w x R")
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}

	expected := []core.Action{
		core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUse, core.ActionRestart,
	}
	if len(frames) != len(expected) {
		t.Fatalf("got %d frames, expected %d", len(frames), len(expected))
	}
	for i, a := range expected {
		if !frames[i].Has(a) {
			t.Errorf("frame %d: expected %v, got %v", i, a, frames[i].Actions)
		}
	}

	if _, err := ParseScript("nq"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestPlayClassicScenario(t *testing.T) {
	g := newTestGame(t, board.VariantSplit,
		"#P #",
		"#  #",
		"#G #",
	)

	frames, err := ParseScript("ss")
	if err != nil {
		t.Fatal(err)
	}
	if n := g.Play(frames); n != 2 {
		t.Errorf("expected 2 changing frames, got %d", n)
	}
	if g.Board().Player().Pos != board.C(1, 1) {
		t.Errorf("player at %v, expected (1,1)", g.Board().Player().Pos)
	}
}

func TestPlayStreakScenario(t *testing.T) {
	g := newTestGame(t, board.VariantStreak)

	// Walk to the bridge head, collapse it, then rebuild it
	frames, err := ParseScript("ee x x")
	if err != nil {
		t.Fatal(err)
	}
	g.Play(frames)

	if n := g.Board().Grid().Count(board.KindBridgeHorizontal); n != 10 {
		t.Errorf("expected both bridges intact, got %d bridge tiles", n)
	}
	if g.Board().Player().Bridges != 0 {
		t.Errorf("expected empty inventory, got %d", g.Board().Player().Bridges)
	}
}
