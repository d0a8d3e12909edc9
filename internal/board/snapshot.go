package board

import "strings"

// Snapshot is a value copy of the game state for front ends and tests.
type Snapshot struct {
	Variant      string
	Width        int
	Height       int
	Player       Player
	Items        []Item
	Moves        int
	GoalsReached int
	GoalsTotal   int
	Solved       bool
	Rows         []string // Lines() at the time of the snapshot
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant:      g.variant.ID,
		Width:        g.grid.Width(),
		Height:       g.grid.Height(),
		Player:       g.player,
		Items:        g.Items(),
		Moves:        g.moves,
		GoalsReached: g.goalsReached,
		GoalsTotal:   g.goalsTotal,
		Solved:       g.Solved(),
		Rows:         g.Lines(),
	}
}

// Lines renders the current board back into map-spec rows.
// Entity markers take precedence over the tile token; when an item lies
// under the player, the player wins.
func (g *Game) Lines() []string {
	w, h := g.grid.Width(), g.grid.Height()
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = make([]rune, w)
		for x := range rows[y] {
			rows[y][x] = g.variant.Legend.Token(g.grid.At(x, y))
		}
	}
	for _, it := range g.items {
		switch it.Kind {
		case ItemGoal:
			rows[it.Pos.Y][it.Pos.X] = TokenGoal
		case ItemBridge:
			rows[it.Pos.Y][it.Pos.X] = TokenItem
		}
	}
	rows[g.player.Pos.Y][g.player.Pos.X] = TokenPlayer

	out := make([]string, h)
	for y, r := range rows {
		out[y] = string(r)
	}
	return out
}

// String returns Lines joined with newlines.
func (g *Game) String() string {
	return strings.Join(g.Lines(), "\n")
}
