package tetris

// Color identifies the paint of a filled cell. ColorNone is reserved for empty cells.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

var palette = [...][3]uint8{
	ColorNone:   {0x00, 0x00, 0x00},
	ColorCyan:   {0x00, 0xf0, 0xf0},
	ColorYellow: {0xf0, 0xf0, 0x00},
	ColorPurple: {0xa0, 0x00, 0xf0},
	ColorGreen:  {0x00, 0xf0, 0x00},
	ColorRed:    {0xf0, 0x00, 0x00},
	ColorBlue:   {0x00, 0x00, 0xf0},
	ColorOrange: {0xf0, 0xa0, 0x00},
}

// RGB returns the display components of the color.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(palette) {
		return 0, 0, 0
	}
	rgb := palette[c]
	return rgb[0], rgb[1], rgb[2]
}

// Cell is a single board square. The zero value is an empty cell; filled
// cells carry the color of the piece that locked them.
type Cell uint8

// Empty is the cell value of an unoccupied square.
const Empty Cell = 0

// Filled returns a cell painted with c.
func Filled(c Color) Cell {
	if c == ColorNone {
		panic("tetris: filled cell requires a color")
	}
	return Cell(c)
}

// IsFilled reports whether the cell is occupied.
func (c Cell) IsFilled() bool {
	return c != Empty
}

// Color returns the cell color, ColorNone for empty cells.
func (c Cell) Color() Color {
	return Color(c)
}

// Grid is a row-major matrix of cells, row 0 at the top.
type Grid [][]Cell

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for y, row := range g {
		clone[y] = make([]Cell, len(row))
		copy(clone[y], row)
	}
	return clone
}
