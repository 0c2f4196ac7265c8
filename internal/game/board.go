package game

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnFull signals a routine rejection: the chosen column has no
	// empty cell left. Callers treat it as "ignore this input".
	ErrColumnFull = errors.New("column is full")

	// ErrColumnOutOfRange signals a caller bug: the column index is outside
	// [0, width).
	ErrColumnOutOfRange = errors.New("column index out of range")

	// ErrBadDimensions is returned for non-positive board dimensions.
	ErrBadDimensions = errors.New("board dimensions must be positive")
)

// Board is a rectangular grid of cells. Row 0 is the top row; gravity pulls
// dropped pieces toward larger row indices. Cells are write-once: a mark is
// never cleared or overwritten for the lifetime of the board.
type Board struct {
	Width  int
	Height int
	cells  [][]Cell
}

// NewBoard creates an all-empty board of the given dimensions.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Board{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// Cell returns the mark at (row, column). Panics on out-of-bounds
// coordinates, matching slice semantics; use InBounds to probe first.
func (b *Board) Cell(row, column int) Cell {
	return b.cells[row][column]
}

// InBounds reports whether (row, column) lies on the board.
func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.Height && column >= 0 && column < b.Width
}

// Drop places mark into the lowest empty cell of the column and returns the
// row it came to rest in. A full column returns ErrColumnFull with no
// mutation; an out-of-range column returns ErrColumnOutOfRange.
func (b *Board) Drop(column int, mark Cell) (int, error) {
	if column < 0 || column >= b.Width {
		return -1, fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}

	for row := b.Height - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = mark
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// ColumnFull reports whether the column has no room left. Only the top row
// needs checking: gravity guarantees cells below it are occupied first.
func (b *Board) ColumnFull(column int) bool {
	return b.cells[0][column] != Empty
}

// Full reports whether every cell on the board is occupied.
func (b *Board) Full() bool {
	for column := 0; column < b.Width; column++ {
		if b.cells[0][column] == Empty {
			return false
		}
	}
	return true
}
