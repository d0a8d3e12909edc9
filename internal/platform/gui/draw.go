package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/core"
)

var (
	background = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	bridgeBand = color.RGBA{R: 255, G: 255, B: 255, A: 26}
)

const (
	bandMargin   = 0.15
	itemRadius   = 0.3
	playerRadius = 0.4
)

// rgba converts a hex tile color; unknown values draw as magenta.
func rgba(c core.Color) color.RGBA {
	r, g, b, ok := c.RGB()
	if !ok {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func drawTiles(dst *ebiten.Image, grid *board.Grid, ts float32) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			t := grid.At(x, y)
			px, py := float32(x)*ts, float32(y)*ts
			vector.FillRect(dst, px, py, ts, ts, rgba(core.Color(t.Color)), false)

			m := ts * bandMargin
			switch t.Kind {
			case board.KindBridgeHorizontal:
				vector.FillRect(dst, px, py+m, ts, ts-2*m, bridgeBand, false)
			case board.KindBridgeVertical:
				vector.FillRect(dst, px+m, py, ts-2*m, ts, bridgeBand, false)
			}
		}
	}
}

func drawItems(dst *ebiten.Image, items []board.Item, ts float32) {
	for _, it := range items {
		clr := rgba(core.ColorGoal)
		if it.Kind == board.ItemBridge {
			clr = rgba(core.Color(board.BridgeTile.Color))
		}
		cx := (float32(it.Pos.X) + 0.5) * ts
		cy := (float32(it.Pos.Y) + 0.5) * ts
		vector.FillCircle(dst, cx, cy, ts*itemRadius, clr, true)
	}
}

func drawPlayer(dst *ebiten.Image, p board.Player, ts float32) {
	cx := (float32(p.Pos.X) + 0.5) * ts
	cy := (float32(p.Pos.Y) + 0.5) * ts
	pts := playerTriangle(p.Facing, ts*playerRadius)

	var path vector.Path
	path.MoveTo(cx+pts[0][0], cy+pts[0][1])
	path.LineTo(cx+pts[1][0], cy+pts[1][1])
	path.LineTo(cx+pts[2][0], cy+pts[2][1])
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(rgba(core.ColorPlayer))
	vector.FillPath(dst, &path, &vector.FillOptions{}, op)
}

// playerTriangle returns the triangle vertices relative to the tile centre,
// pointing north and rotated clockwise to the facing.
func playerTriangle(d board.Dir, r float32) [3][2]float32 {
	base := [3][2]float64{{0, -1}, {1, 1}, {-1, 1}}
	turns := 0
	switch d {
	case board.East:
		turns = 1
	case board.South:
		turns = 2
	case board.West:
		turns = 3
	}
	sin, cos := math.Sincos(float64(turns) * math.Pi / 2)

	var out [3][2]float32
	for i, v := range base {
		x := v[0]*cos - v[1]*sin
		y := v[0]*sin + v[1]*cos
		out[i] = [2]float32{float32(math.Round(x)) * r, float32(math.Round(y)) * r}
	}
	return out
}

func drawText(dst *ebiten.Image, lines []string, top int) {
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, 0, top+hudMargin+i*lineH)
	}
}
