package tetris

import "fmt"

// Default board dimensions.
const (
	Width  = 10
	Height = 20
)

// Board holds the locked cells of a game. The active piece is never part of
// the board until it locks.
type Board struct {
	width  int
	height int
	cells  Grid
}

// NewBoard creates an empty board. It panics if either dimension is not positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make(Grid, height),
	}
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// WithinHorizontalBounds reports whether column x exists on the board.
func (b *Board) WithinHorizontalBounds(x int) bool {
	return x >= 0 && x < b.width
}

// IsOccupied reports whether (x, y) holds a locked cell. Rows above the
// board (y < 0) are never occupied.
func (b *Board) IsOccupied(x, y int) bool {
	if y < 0 || y >= b.height || !b.WithinHorizontalBounds(x) {
		return false
	}
	return b.cells[y][x].IsFilled()
}

// Cell returns the cell at (x, y), or Empty outside the board.
func (b *Board) Cell(x, y int) Cell {
	if y < 0 || y >= b.height || !b.WithinHorizontalBounds(x) {
		return Empty
	}
	return b.cells[y][x]
}

// LockCell paints (x, y) with color. Cells above the board are dropped.
// The caller must have validated the coordinates against the board.
func (b *Board) LockCell(x, y int, color Color) {
	if y < 0 {
		return
	}
	if !b.WithinHorizontalBounds(x) || y >= b.height {
		panic(fmt.Sprintf("tetris: lock outside board at (%d,%d)", x, y))
	}
	b.cells[y][x] = Filled(color)
}

// ClearCompletedLines removes every fully filled row, shifts the remaining
// rows down and refills the top with empty rows. It returns the number of
// rows removed.
func (b *Board) ClearCompletedLines() int {
	kept := make(Grid, 0, b.height)
	for _, row := range b.cells {
		if !rowComplete(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make(Grid, 0, b.height)
	for range cleared {
		rows = append(rows, make([]Cell, b.width))
	}
	b.cells = append(rows, kept...)

	return cleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.cells {
		clear(row)
	}
}

// Rows returns a copy of the board cells.
func (b *Board) Rows() Grid {
	return b.cells.Clone()
}

func rowComplete(row []Cell) bool {
	for _, cell := range row {
		if !cell.IsFilled() {
			return false
		}
	}
	return true
}
