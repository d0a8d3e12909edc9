package board

import "unicode/utf8"

// ItemKind identifies what an item does when collected.
type ItemKind uint8

const (
	ItemGoal ItemKind = iota
	ItemBridge
)

// String returns the item kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemGoal:
		return "goal"
	case ItemBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// Item is an objective or pickup lying on the map. Items never block movement.
type Item struct {
	Pos  Coord
	Kind ItemKind
}

// Player is the single directional entity.
type Player struct {
	Pos        Coord
	Facing     Dir
	Bridges    int
	MaxBridges int
}

// Game holds the complete mutable state of one puzzle session.
type Game struct {
	variant      Variant
	grid         *Grid
	player       Player
	items        []Item
	moves        int
	goalsTotal   int
	goalsReached int
}

// FromMapSpec builds a game from equal-length map rows.
// The last 'P' wins; without one the player starts at (0,0).
func FromMapSpec(v Variant, lines []string) (*Game, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}
	w := utf8.RuneCountInString(lines[0])
	if w == 0 {
		return nil, ErrEmptyMap
	}
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, &MapShapeError{Row: y, Want: w, Got: n}
		}
	}

	grid, err := NewGrid(w, len(lines))
	if err != nil {
		return nil, err
	}

	g := &Game{
		variant: v,
		grid:    grid,
		player: Player{
			Facing:     North,
			Bridges:    v.StartBridges,
			MaxBridges: v.MaxBridges,
		},
	}

	for y, line := range lines {
		x := 0
		for _, token := range line {
			c := C(x, y)
			grid.set(c, v.Legend.Parse(token))
			switch {
			case token == TokenPlayer:
				g.player.Pos = c
			case token == TokenGoal && v.Legend.HasGoals():
				g.addGoal(c)
			case token == TokenItem && v.Legend.HasItems():
				g.items = append(g.items, Item{Pos: c, Kind: ItemBridge})
			}
			x++
		}
	}

	return g, nil
}

// addGoal places a goal item. Under SingleGoal a later goal replaces the
// earlier one in place.
func (g *Game) addGoal(c Coord) {
	if g.variant.Goals == SingleGoal {
		for i, it := range g.items {
			if it.Kind == ItemGoal {
				g.items[i].Pos = c
				return
			}
		}
	}
	g.items = append(g.items, Item{Pos: c, Kind: ItemGoal})
	g.goalsTotal++
}

// Variant returns the rules this game was built with.
func (g *Game) Variant() Variant {
	return g.variant
}

// Grid returns the current grid. Split replaces it, so callers should not
// hold on to the pointer across actions.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.player
}

// Items returns a copy of the remaining items in map order.
func (g *Game) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// Moves returns the number of successful steps taken.
func (g *Game) Moves() int {
	return g.moves
}

// Goals returns how many goals were collected and how many the map had.
func (g *Game) Goals() (reached, total int) {
	return g.goalsReached, g.goalsTotal
}

// Solved reports whether every goal on a goal map has been collected.
func (g *Game) Solved() bool {
	return g.goalsTotal > 0 && g.goalsReached == g.goalsTotal
}

// Act performs the variant's action key behaviour.
// Returns true if the state changed.
func (g *Game) Act() bool {
	switch g.variant.Action {
	case ActionShoot:
		at := g.Shoot()
		return mod(at.X, g.grid.Width()) != 0 || mod(at.Y, g.grid.Height()) != 0
	case ActionToggleBridge:
		return g.TryToggleBridge()
	default:
		return false
	}
}

// collectItems removes every item under the player and applies its effect.
// Remaining items keep their order.
func (g *Game) collectItems() {
	remaining := g.items[:0]
	for _, it := range g.items {
		if it.Pos != g.player.Pos {
			remaining = append(remaining, it)
			continue
		}
		switch it.Kind {
		case ItemBridge:
			g.player.Bridges++
		case ItemGoal:
			g.goalsReached++
		}
	}
	g.items = remaining
}
