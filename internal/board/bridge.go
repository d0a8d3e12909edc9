package board

// Streak is a run of same-kind tiles starting one cell ahead of the player.
type Streak struct {
	Positions  []Coord
	StreakTile Tile // tile of the first scanned cell
	EndTile    Tile // tile immediately after the run
}

// FindTileStreak scans along the player's facing. The run stops at the
// first tile whose kind differs from the first one, or at the grid edge, in
// which case EndTile is the sentinel.
func (g *Game) FindTileStreak() Streak {
	cur := g.player.Pos.Step(g.player.Facing)
	first := g.grid.Get(cur)
	s := Streak{StreakTile: first, EndTile: first}
	if !g.grid.InBounds(cur) {
		return s
	}

	for g.grid.InBounds(cur) && g.grid.Get(cur).Kind == first.Kind {
		s.Positions = append(s.Positions, cur)
		cur = cur.Step(g.player.Facing)
	}
	s.EndTile = g.grid.Get(cur)
	return s
}

// TryBuildBridge spans a water streak with bridge tiles, spending one bridge.
// Needs a bridge in the inventory and walkable ground past the water.
func (g *Game) TryBuildBridge() bool {
	if g.player.Bridges <= 0 {
		return false
	}
	s := g.FindTileStreak()
	if s.StreakTile.Kind != KindWater || !s.EndTile.Walkable {
		return false
	}
	g.player.Bridges--
	g.replaceTiles(s.Positions, g.variant.Bridges.BridgeFor(g.player.Facing))
	return true
}

// TryCollapseBridge turns a bridge streak back into water, refunding one
// bridge. Needs room in the inventory and walkable ground past the bridge.
func (g *Game) TryCollapseBridge() bool {
	if g.player.Bridges >= g.player.MaxBridges {
		return false
	}
	s := g.FindTileStreak()
	if !s.StreakTile.Kind.IsBridge() || !s.EndTile.Walkable {
		return false
	}
	g.player.Bridges++
	g.replaceTiles(s.Positions, WaterTile)
	return true
}

// TryToggleBridge builds when facing water and collapses when facing a
// bridge, judging only by the tile directly ahead.
func (g *Game) TryToggleBridge() bool {
	ahead := g.grid.Get(g.player.Pos.Step(g.player.Facing))
	switch {
	case ahead.Kind == KindWater:
		return g.TryBuildBridge()
	case ahead.Kind.IsBridge():
		return g.TryCollapseBridge()
	default:
		return false
	}
}

// replaceTiles writes t to every position. Streak positions are always in
// bounds.
func (g *Game) replaceTiles(positions []Coord, t Tile) {
	for _, c := range positions {
		g.grid.set(c, t)
	}
}
