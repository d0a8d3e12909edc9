package board

// Split re-indexes the grid around the cut (sx, sy) so that
// new[x,y] = old[(x+sx) mod w, (y+sy) mod h]. Entities are moved by the
// inverse transform and stay on the same physical tiles.
// Offsets may be negative or exceed the grid size.
func (g *Game) Split(sx, sy int) {
	w, h := g.grid.Width(), g.grid.Height()
	sx = mod(sx, w)
	sy = mod(sy, h)
	if sx == 0 && sy == 0 {
		return
	}

	g.grid = g.grid.shifted(sx, sy)

	remap := func(c Coord) Coord {
		return C((c.X+w-sx)%w, (c.Y+h-sy)%h)
	}
	g.player.Pos = remap(g.player.Pos)
	for i := range g.items {
		g.items[i].Pos = remap(g.items[i].Pos)
	}
}

// Shoot scans from the player along the facing direction up to the last
// non-solid cell and splits the map immediately past it.
// North/west split at that cell, south/east one past it, so the cut always
// lies just outside the wall. Returns the offsets passed to Split.
func (g *Game) Shoot() Coord {
	dx, dy := g.player.Facing.Delta()
	cur := g.player.Pos
	// Terminates: the sentinel beyond the edge is solid.
	for !g.grid.Get(cur.Add(dx, dy)).Solid() {
		cur = cur.Add(dx, dy)
	}

	var at Coord
	switch g.player.Facing {
	case North:
		at = C(0, cur.Y)
	case South:
		at = C(0, cur.Y+1)
	case West:
		at = C(cur.X, 0)
	case East:
		at = C(cur.X+1, 0)
	}
	g.Split(at.X, at.Y)
	return at
}

// mod returns a mod n in [0,n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
