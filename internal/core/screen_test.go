package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if got := s.Get(5, 5); got != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", got)
	}

	// Out of bounds should be silently ignored
	s.Set(-1, 0, 'X')
	s.Set(100, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 100, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected ' '", got)
	}
	if got := s.GetCell(100, 0); got != (Cell{Rune: ' '}) {
		t.Errorf("GetCell(100, 0) = %+v, expected blank", got)
	}
}

func TestScreenSetKeepsColors(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetCell(1, 0, Cell{Rune: '#', FG: ColorText, BG: "#08a"})

	s.Set(1, 0, '~')

	got := s.GetCell(1, 0)
	if got.Rune != '~' || got.FG != ColorText || got.BG != "#08a" {
		t.Errorf("GetCell(1, 0) = %+v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, Cell{Rune: 'X', FG: ColorGoal})

	s.Clear()

	if got := s.GetCell(2, 2); got != (Cell{Rune: ' '}) {
		t.Errorf("after Clear, GetCell(2, 2) = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "◆ x2", ColorItem)

	if got := s.Row(1); got != "  ◆ x2              " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(5, 1); c.Rune != '2' || c.FG != ColorItem {
		t.Errorf("GetCell(5, 1) = %+v", c)
	}

	// Clipped at the right edge
	s.DrawText(18, 2, "abc", ColorDefault)
	if got := s.Row(2); !strings.HasSuffix(got, "ab") {
		t.Errorf("Row(2) = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "●●●", ColorGoal)

	if got := s.Row(0); got != "    ●●●    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	fill := Cell{Rune: '~', BG: "#08a"}
	s.FillRect(NewRect(1, 1, 3, 2), fill)

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			got := s.GetCell(x, y)
			if inside && got != fill {
				t.Errorf("(%d, %d) = %+v, expected fill", x, y, got)
			}
			if !inside && got.Rune != ' ' {
				t.Errorf("(%d, %d) = %+v, expected blank", x, y, got)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorBanner)

	expected := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if c := s.GetCell(0, 0); c.FG != ColorBanner {
		t.Errorf("corner color = %q, expected %q", c.FG, ColorBanner)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc", ColorDefault)
	s.DrawText(0, 1, "def", ColorDefault)

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, 'X')
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("content inside the new bounds should be preserved")
	}

	s.Resize(6, 6)
	if s.Get(2, 2) != 'X' {
		t.Error("content should survive growing")
	}
	if s.Get(4, 4) != ' ' {
		t.Error("content dropped by shrinking should not come back")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab", ColorDefault)

	if got := s.Row(0); got != "ab  " {
		t.Errorf("Row(0) = %q, expected %q", got, "ab  ")
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
