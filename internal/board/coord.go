package board

import (
	"fmt"
	"strings"
)

// Coord represents a cell position on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Dir is one of the four cardinal directions the player can face.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// String returns the single-letter name used in map scripts.
func (d Dir) String() string {
	switch d {
	case North:
		return "n"
	case East:
		return "e"
	case South:
		return "s"
	case West:
		return "w"
	default:
		return "?"
	}
}

// Name returns the full lowercase direction name.
func (d Dir) Name() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the unit vector for this direction.
// North decreases Y, South increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Vertical reports whether the direction runs along the Y axis.
func (d Dir) Vertical() bool {
	return d == North || d == South
}

// ParseDir converts "n", "north", "E", ... to a Dir.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(s) {
	case "n", "north", "up":
		return North, true
	case "e", "east", "right":
		return East, true
	case "s", "south", "down":
		return South, true
	case "w", "west", "left":
		return West, true
	default:
		return North, false
	}
}

// AllDirs returns the four directions in clockwise order starting at North.
func AllDirs() []Dir {
	return []Dir{North, East, South, West}
}
