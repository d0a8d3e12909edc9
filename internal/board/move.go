package board

// TryMove applies a direction key using the variant's movement policy.
// A step only commits onto a walkable tile; the sentinel is never walkable.
// Returns true if facing or position changed.
func (g *Game) TryMove(d Dir) bool {
	turned := false
	if g.player.Facing != d {
		g.player.Facing = d
		turned = true
		if g.variant.Policy == StrictTurnThenStep {
			return true
		}
	}
	return g.step() || turned
}

// step moves one cell along the current facing if the target is walkable.
func (g *Game) step() bool {
	next := g.player.Pos.Step(g.player.Facing)
	if !g.grid.Get(next).Walkable {
		return false
	}
	g.player.Pos = next
	g.moves++
	g.collectItems()
	return true
}
