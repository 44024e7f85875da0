package tetris

import "fmt"

// Kind is one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

var kindColors = [KindCount]Color{
	KindI: ColorCyan,
	KindO: ColorYellow,
	KindT: ColorPurple,
	KindS: ColorGreen,
	KindZ: ColorRed,
	KindJ: ColorBlue,
	KindL: ColorOrange,
}

var baseShapes = [KindCount]Shape{
	KindI: {
		{true, true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
	},
}

// Kinds returns all piece kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// Valid reports whether k names one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color returns the display color of the kind.
func (k Kind) Color() Color {
	return kindColors[k]
}

// Shape returns a fresh copy of the kind's spawn orientation.
func (k Kind) Shape() Shape {
	return baseShapes[k].clone()
}

// Shape is an occupancy matrix, row 0 at the top. Shapes are treated as
// immutable: rotation always builds a new matrix.
type Shape [][]bool

// Height returns the number of rows in the matrix.
func (s Shape) Height() int { return len(s) }

// Width returns the number of columns in the matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90° clockwise (transpose, then reverse each row).
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for i := range w {
		rotated[i] = make([]bool, h)
		for j := range h {
			rotated[i][j] = s[h-1-j][i]
		}
	}
	return rotated
}

// RotateCounterClockwise returns the shape turned 90° counter-clockwise.
func (s Shape) RotateCounterClockwise() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for i := range w {
		rotated[i] = make([]bool, h)
		for j := range h {
			rotated[i][j] = s[j][w-1-i]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells iterates over the occupied (column, row) offsets of the shape.
func (s Shape) Cells() func(yield func(x, y int) bool) {
	return func(yield func(x, y int) bool) {
		for y, row := range s {
			for x, filled := range row {
				if !filled {
					continue
				}
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

func (s Shape) clone() Shape {
	c := make(Shape, len(s))
	for i := range s {
		c[i] = make([]bool, len(s[i]))
		copy(c[i], s[i])
	}
	return c
}

// Position is the board coordinate of a shape's top-left corner.
type Position struct {
	X, Y int
}

// ActivePiece is the falling piece. The engine replaces it on every
// successful move or rotation rather than mutating it.
type ActivePiece struct {
	Kind     Kind
	Shape    Shape
	Color    Color
	Position Position
}

// Cells iterates over the board coordinates covered by the piece. Rows may
// be negative when the piece overhangs the top of the board.
func (p ActivePiece) Cells() func(yield func(x, y int) bool) {
	return func(yield func(x, y int) bool) {
		for mx, my := range p.Shape.Cells() {
			if !yield(p.Position.X+mx, p.Position.Y+my) {
				return
			}
		}
	}
}
