package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/splitlands/internal/core"
)

// cellColors is the style key of a run of cells.
type cellColors struct {
	fg core.Color
	bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(k cellColors) lipgloss.Style {
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(k.bg))
	}
	c[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			colors := cellColors{fg: start.FG, bg: start.BG}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != colors.fg || cell.BG != colors.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if colors == (cellColors{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(colors).Render(run.String()))
		}
	}
	return sb.String()
}
