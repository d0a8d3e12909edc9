package board

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for grid writes outside the grid.
	ErrIndexOutOfRange = errors.New("board: index out of range")

	// ErrMapShape is returned when map rows differ in length.
	ErrMapShape = errors.New("board: map rows have different lengths")

	// ErrEmptyMap is returned for a map spec without rows or columns.
	ErrEmptyMap = errors.New("board: empty map")

	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("board: grid dimensions must be positive")
)

// IndexError describes a rejected write.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("board: set (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// MapShapeError reports the first row whose length differs from row 0.
type MapShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *MapShapeError) Error() string {
	return fmt.Sprintf("board: row %d has %d columns, want %d", e.Row, e.Got, e.Want)
}

func (e *MapShapeError) Unwrap() error {
	return ErrMapShape
}
