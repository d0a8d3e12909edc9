// Package board implements the grid and rule engine shared by every puzzle
// variant: tiles, the bounds-checked grid, map parsing, movement and the two
// map-mutating actions (splitting and bridge building).
// This package is UI-agnostic and has no external dependencies.
package board

// Kind tags a tile with its gameplay type.
type Kind uint8

const (
	KindNothing Kind = iota // out-of-bounds sentinel
	KindLand
	KindWater
	KindCliff
	KindWall
	KindBridge
	KindBridgeHorizontal
	KindBridgeVertical
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindLand:
		return "land"
	case KindWater:
		return "water"
	case KindCliff:
		return "cliff"
	case KindWall:
		return "wall"
	case KindBridge:
		return "bridge"
	case KindBridgeHorizontal:
		return "bridgeH"
	case KindBridgeVertical:
		return "bridgeV"
	default:
		return "unknown"
	}
}

// IsBridge reports whether the kind is any of the bridge kinds.
func (k Kind) IsBridge() bool {
	return k == KindBridge || k == KindBridgeHorizontal || k == KindBridgeVertical
}

// Tile is an immutable description of one grid cell.
// Many cells share the same Tile value; tiles are compared by value.
type Tile struct {
	Kind     Kind
	Color    string // Opaque display value, "#rgb" hex
	Walkable bool
}

// Solid is the inverse of Walkable, used by the split variants.
func (t Tile) Solid() bool {
	return !t.Walkable
}

// Tile catalog.
var (
	NothingTile = Tile{Kind: KindNothing, Color: "#000", Walkable: false}
	WallTile    = Tile{Kind: KindWall, Color: "#669", Walkable: false}
	OpenTile    = Tile{Kind: KindLand, Color: "#aaf", Walkable: true}
	WaterTile   = Tile{Kind: KindWater, Color: "#08a", Walkable: false}
	LandTile    = Tile{Kind: KindLand, Color: "#3a0", Walkable: true}
	CliffTile   = Tile{Kind: KindCliff, Color: "#888", Walkable: false}
	BridgeTile  = Tile{Kind: KindBridge, Color: "#860", Walkable: true}
	BridgeHTile = Tile{Kind: KindBridgeHorizontal, Color: "#860", Walkable: true}
	BridgeVTile = Tile{Kind: KindBridgeVertical, Color: "#860", Walkable: true}
)

// BridgeStyle selects which bridge tile a build writes.
type BridgeStyle uint8

const (
	// BridgeOriented writes BridgeVTile when facing N/S and BridgeHTile for E/W.
	BridgeOriented BridgeStyle = iota
	// BridgeUndirected always writes BridgeTile.
	BridgeUndirected
)

// BridgeFor returns the bridge tile to place when building in direction d.
func (s BridgeStyle) BridgeFor(d Dir) Tile {
	if s == BridgeUndirected {
		return BridgeTile
	}
	if d.Vertical() {
		return BridgeVTile
	}
	return BridgeHTile
}
