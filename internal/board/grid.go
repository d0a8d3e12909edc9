package board

// Grid is a dense rectangle of tiles stored in row-major order: index = y*w + x.
type Grid struct {
	w     int
	h     int
	cells []Tile
}

// NewGrid creates a grid with every cell set to NothingTile.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([]Tile, w*h)
	for i := range cells {
		cells[i] = NothingTile
	}
	return &Grid{w: w, h: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the tile at c, or NothingTile if c is outside the grid.
func (g *Grid) Get(c Coord) Tile {
	if !g.InBounds(c) {
		return NothingTile
	}
	return g.cells[c.Y*g.w+c.X]
}

// At is Get with separate coordinates.
func (g *Grid) At(x, y int) Tile {
	return g.Get(C(x, y))
}

// Set stores t at c. Writes outside the grid are rejected with an *IndexError.
func (g *Grid) Set(c Coord, t Tile) error {
	if !g.InBounds(c) {
		return &IndexError{X: c.X, Y: c.Y, Width: g.w, Height: g.h}
	}
	g.set(c, t)
	return nil
}

// set writes without a bounds check; c must be in bounds.
func (g *Grid) set(c Coord, t Tile) {
	g.cells[c.Y*g.w+c.X] = t
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
// A nil other is never equal.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold a tile of the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, t := range g.cells {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// shifted returns the toroidal re-indexing new[x,y] = old[(x+sx) mod w, (y+sy) mod h].
// sx and sy must already be in [0,w) and [0,h).
func (g *Grid) shifted(sx, sy int) *Grid {
	out := &Grid{w: g.w, h: g.h, cells: make([]Tile, len(g.cells))}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out.cells[y*g.w+x] = g.cells[((y+sy)%g.h)*g.w+(x+sx)%g.w]
		}
	}
	return out
}
