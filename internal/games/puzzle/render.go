package puzzle

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/core"
)

const (
	hudHeight    = 2 // title line and separator
	statusHeight = 1
)

// glyph is how a tile kind looks in the terminal on top of its color.
type glyph struct {
	r  rune
	fg core.Color
}

var tileGlyphs = map[board.Kind]glyph{
	board.KindWater:            {'~', "#6cf"},
	board.KindCliff:            {'^', "#ccc"},
	board.KindBridge:           {'=', "#fc8"},
	board.KindBridgeHorizontal: {'═', "#fc8"},
	board.KindBridgeVertical:   {'║', "#fc8"},
}

var playerGlyphs = map[board.Dir]rune{
	board.North: '▲',
	board.East:  '▶',
	board.South: '▼',
	board.West:  '◀',
}

const (
	goalGlyph = '●'
	itemGlyph = '◆'
)

// Size returns the screen size needed to show the whole map.
func (g *Game) Size() (w, h int) {
	if g.game == nil {
		return utf8.RuneCountInString(g.HUD()), hudHeight + statusHeight
	}
	grid := g.game.Grid()
	w = max(grid.Width()*g.tileWidth, utf8.RuneCountInString(g.HUD()))
	h = hudHeight + grid.Height() + statusHeight
	return w, h
}

// Render draws the HUD, the board and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.game == nil {
		msg := "no map loaded"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorDim)
		return
	}

	grid := g.game.Grid()
	mapW := grid.Width() * g.tileWidth
	if dst.Width() < mapW || dst.Height() < hudHeight+grid.Height()+statusHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", mapW, hudHeight+grid.Height()+statusHeight))
		return
	}

	ox := (dst.Width() - mapW) / 2
	oy := hudHeight
	g.renderMap(dst, ox, oy)
	g.renderEntities(dst, ox, oy)

	dst.DrawText(0, oy+grid.Height(), " "+g.status, core.ColorDim)

	if g.game.Solved() {
		g.renderOverlay(dst, "Solved!", fmt.Sprintf("%d moves - R to restart", g.game.Moves()))
	}
}

// HUD returns the status line shown above the board.
func (g *Game) HUD() string {
	title := g.Title()
	if g.m.Name != "" && g.m.Name != title {
		title += " · " + g.m.Name
	}
	if g.game == nil {
		return " " + title
	}

	p := g.game.Player()
	switch g.variant.Action {
	case board.ActionToggleBridge:
		return fmt.Sprintf(" %s  Moves: %d  Bridges: %d/%d", title, g.game.Moves(), p.Bridges, p.MaxBridges)
	default:
		reached, total := g.game.Goals()
		return fmt.Sprintf(" %s  Moves: %d  Goals: %d/%d", title, g.game.Moves(), reached, total)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, g.HUD(), core.ColorText)
	for x := range dst.Width() {
		dst.SetCell(x, 1, core.Cell{Rune: '─', FG: core.ColorDim})
	}
}

// renderMap draws every tile tileWidth cells wide.
func (g *Game) renderMap(dst *core.Screen, ox, oy int) {
	grid := g.game.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			t := grid.At(x, y)
			cell := core.Cell{Rune: ' ', BG: core.Color(t.Color)}
			if gl, ok := tileGlyphs[t.Kind]; ok {
				cell.Rune = gl.r
				cell.FG = gl.fg
			}
			for i := 0; i < g.tileWidth; i++ {
				dst.SetCell(ox+x*g.tileWidth+i, oy+y, cell)
			}
		}
	}
}

// renderEntities draws items and the player over their tiles.
func (g *Game) renderEntities(dst *core.Screen, ox, oy int) {
	place := func(c board.Coord, r rune, fg core.Color) {
		x := ox + c.X*g.tileWidth + (g.tileWidth-1)/2
		y := oy + c.Y
		cell := dst.GetCell(x, y)
		cell.Rune = r
		cell.FG = fg
		dst.SetCell(x, y, cell)
	}

	for _, it := range g.game.Items() {
		switch it.Kind {
		case board.ItemGoal:
			place(it.Pos, goalGlyph, core.ColorGoal)
		case board.ItemBridge:
			place(it.Pos, itemGlyph, core.ColorItem)
		}
	}

	p := g.game.Player()
	place(p.Pos, playerGlyphs[p.Facing], core.ColorPlayer)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBanner)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBanner)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorText)
}
