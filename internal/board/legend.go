package board

// Marker tokens shared by every legend.
const (
	TokenPlayer = 'P'
	TokenGoal   = 'G'
	TokenItem   = 'H'
)

// Legend maps single-character map tokens to tiles for one variant.
type Legend struct {
	tokens   map[rune]Tile
	fallback Tile
	goals    bool // 'G' places a goal
	items    bool // 'H' places a bridge item
}

// Parse returns the tile for a map token.
// Unknown tokens (and the P/G/H markers) map to the legend's open tile.
func (l Legend) Parse(token rune) Tile {
	if t, ok := l.tokens[token]; ok {
		return t
	}
	return l.fallback
}

// Fallback returns the open tile used for unknown tokens.
func (l Legend) Fallback() Tile {
	return l.fallback
}

// HasGoals reports whether 'G' tokens create goals.
func (l Legend) HasGoals() bool {
	return l.goals
}

// HasItems reports whether 'H' tokens create bridge items.
func (l Legend) HasItems() bool {
	return l.items
}

// Token returns the map token that parses to t, or ' ' for the open tile.
// Tiles that the legend cannot express are written as '?'.
func (l Legend) Token(t Tile) rune {
	if t == l.fallback {
		return ' '
	}
	var best rune
	for r, lt := range l.tokens {
		if lt == t && (best == 0 || r < best) {
			best = r
		}
	}
	if best == 0 {
		return '?'
	}
	return best
}

// SplitLegend parses walls and goals.
func SplitLegend() Legend {
	return Legend{
		tokens:   map[rune]Tile{'#': WallTile},
		fallback: OpenTile,
		goals:    true,
	}
}

// StreakLegend parses water, cliffs and pre-placed oriented bridges.
func StreakLegend() Legend {
	return Legend{
		tokens: map[rune]Tile{
			'#': WaterTile,
			'-': BridgeHTile,
			'|': BridgeVTile,
			'*': CliffTile,
		},
		fallback: LandTile,
		items:    true,
	}
}

// BuildLegend parses water, cliffs and pre-placed undirected bridges.
func BuildLegend() Legend {
	return Legend{
		tokens: map[rune]Tile{
			'#': WaterTile,
			'=': BridgeTile,
			'*': CliffTile,
		},
		fallback: LandTile,
		items:    true,
	}
}
