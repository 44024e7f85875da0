package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, color Color, except ...int) {
	for x := range b.Width() {
		skip := false
		for _, e := range except {
			if e == x {
				skip = true
				break
			}
		}
		if !skip {
			b.LockCell(x, y, color)
		}
	}
}

func assertBoardShape(t *testing.T, b *Board) {
	t.Helper()
	rows := b.Rows()
	require.Len(t, rows, b.Height())
	for y, row := range rows {
		assert.Len(t, row, b.Width(), "row %d", y)
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(Width, Height)

	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assertBoardShape(t, b)

	for y := range b.Height() {
		for x := range b.Width() {
			assert.False(t, b.IsOccupied(x, y))
		}
	}
}

func TestNewBoardInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 20) })
	assert.Panics(t, func() { NewBoard(10, -1) })
}

func TestBoardOccupancy(t *testing.T) {
	b := NewBoard(4, 4)
	b.LockCell(1, 2, ColorRed)

	assert.True(t, b.IsOccupied(1, 2))
	assert.Equal(t, Filled(ColorRed), b.Cell(1, 2))
	assert.False(t, b.IsOccupied(2, 2))

	t.Run("above the board is never occupied", func(t *testing.T) {
		assert.False(t, b.IsOccupied(1, -1))
		assert.False(t, b.IsOccupied(1, -10))
	})

	t.Run("outside the board", func(t *testing.T) {
		assert.False(t, b.IsOccupied(-1, 2))
		assert.False(t, b.IsOccupied(4, 2))
		assert.False(t, b.IsOccupied(1, 4))
		assert.Equal(t, Empty, b.Cell(9, 9))
	})
}

func TestBoardHorizontalBounds(t *testing.T) {
	b := NewBoard(10, 20)

	assert.True(t, b.WithinHorizontalBounds(0))
	assert.True(t, b.WithinHorizontalBounds(9))
	assert.False(t, b.WithinHorizontalBounds(-1))
	assert.False(t, b.WithinHorizontalBounds(10))
}

func TestLockCell(t *testing.T) {
	t.Run("cells above the board are dropped", func(t *testing.T) {
		b := NewBoard(4, 4)
		before := b.Rows()

		b.LockCell(0, -1, ColorBlue)

		assert.Equal(t, before, b.Rows())
	})

	t.Run("outside the walls or floor panics", func(t *testing.T) {
		b := NewBoard(4, 4)

		assert.Panics(t, func() { b.LockCell(-1, 0, ColorBlue) })
		assert.Panics(t, func() { b.LockCell(4, 0, ColorBlue) })
		assert.Panics(t, func() { b.LockCell(0, 4, ColorBlue) })
	})
}

func TestClearCompletedLines(t *testing.T) {
	t.Run("no completed rows", func(t *testing.T) {
		b := NewBoard(4, 6)
		fillRow(b, 5, ColorRed, 3)
		before := b.Rows()

		assert.Equal(t, 0, b.ClearCompletedLines())
		assert.Equal(t, before, b.Rows())
	})

	t.Run("rows 2 and 5 removed, others shifted in order", func(t *testing.T) {
		b := NewBoard(4, 8)
		for y := range b.Height() {
			switch y {
			case 2, 5:
				fillRow(b, y, ColorCyan)
			default:
				b.LockCell(y%b.Width(), y, Color(y%7+1))
			}
		}

		before := b.Rows()
		var kept Grid
		for y, row := range before {
			if y != 2 && y != 5 {
				kept = append(kept, row)
			}
		}

		cleared := b.ClearCompletedLines()

		assert.Equal(t, 2, cleared)
		assertBoardShape(t, b)

		after := b.Rows()
		assert.Equal(t, make([]Cell, 4), after[0])
		assert.Equal(t, make([]Cell, 4), after[1])
		assert.Equal(t, kept, after[2:])
	})

	t.Run("four rows at once", func(t *testing.T) {
		b := NewBoard(5, 10)
		for y := 6; y < 10; y++ {
			fillRow(b, y, ColorYellow)
		}
		b.LockCell(2, 5, ColorRed)

		assert.Equal(t, 4, b.ClearCompletedLines())
		assertBoardShape(t, b)
		assert.True(t, b.IsOccupied(2, 9))
		for y := range 9 {
			for x := range 5 {
				assert.False(t, b.IsOccupied(x, y))
			}
		}
	})

	t.Run("whole board full", func(t *testing.T) {
		b := NewBoard(3, 3)
		for y := range 3 {
			fillRow(b, y, ColorGreen)
		}

		assert.Equal(t, 3, b.ClearCompletedLines())
		assertBoardShape(t, b)
		assert.Equal(t, NewBoard(3, 3).Rows(), b.Rows())
	})
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(4, 4)
	fillRow(b, 3, ColorOrange, 0)
	b.LockCell(2, 0, ColorRed)

	b.Reset()

	assert.Equal(t, NewBoard(4, 4).Rows(), b.Rows())
	assertBoardShape(t, b)
}

func TestBoardRowsIsACopy(t *testing.T) {
	b := NewBoard(4, 4)
	rows := b.Rows()
	rows[0][0] = Filled(ColorRed)

	assert.False(t, b.IsOccupied(0, 0))
}
