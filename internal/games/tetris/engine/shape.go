// Package engine implements the falling-block rules: shapes and their
// transforms, the playfield, the piece generator and the tick/command state
// machine. It has no knowledge of rendering, input devices or wall-clock time.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// TetrominoSize is the number of filled cells every shape must have.
const TetrominoSize = 4

var (
	ErrEmptyShape     = errors.New("engine: shape has no rows")
	ErrNotRectangular = errors.New("engine: shape rows differ in length")
	ErrNotTetromino   = errors.New("engine: shape must have exactly 4 filled cells")
)

// Shape is an immutable rectangular matrix of filled/empty cells.
// Cells are stored in row-major order: index = y*w + x.
// Transforms return new shapes and never modify the receiver, so a Shape can
// be shared freely between pieces.
type Shape struct {
	w, h  int
	cells []bool
}

// NewShape builds a shape from a row matrix. The matrix must be rectangular
// and contain exactly four filled cells.
func NewShape(rows [][]bool) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}
	w := len(rows[0])
	cells := make([]bool, 0, w*len(rows))
	filled := 0
	for _, row := range rows {
		if len(row) != w {
			return Shape{}, ErrNotRectangular
		}
		for _, c := range row {
			if c {
				filled++
			}
			cells = append(cells, c)
		}
	}
	if filled != TetrominoSize {
		return Shape{}, fmt.Errorf("%w (got %d)", ErrNotTetromino, filled)
	}
	return Shape{w: w, h: len(rows), cells: cells}, nil
}

// ParseShape builds a shape from text rows where '#' or 'X' marks a filled
// cell and '.' or ' ' an empty one.
func ParseShape(rows []string) (Shape, error) {
	matrix := make([][]bool, len(rows))
	for y, row := range rows {
		matrix[y] = make([]bool, 0, len(row))
		for _, ch := range row {
			switch ch {
			case '#', 'X':
				matrix[y] = append(matrix[y], true)
			case '.', ' ':
				matrix[y] = append(matrix[y], false)
			default:
				return Shape{}, fmt.Errorf("engine: unexpected character %q in shape row %q", ch, row)
			}
		}
	}
	return NewShape(matrix)
}

// MustParseShape is like ParseShape but panics on error. Used for built-in
// catalog data.
func MustParseShape(rows ...string) Shape {
	s, err := ParseShape(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int { return s.w }

// Height returns the number of rows.
func (s Shape) Height() int { return s.h }

// Filled reports whether the cell at (x, y) of the matrix is filled.
// Out-of-range positions are empty.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.cells[y*s.w+x]
}

// Blocks returns the matrix offsets of the filled cells, top row first.
func (s Shape) Blocks() []Coord {
	blocks := make([]Coord, 0, TetrominoSize)
	for y := range s.h {
		for x := range s.w {
			if s.cells[y*s.w+x] {
				blocks = append(blocks, Coord{X: x, Y: y})
			}
		}
	}
	return blocks
}

// Rows returns a fresh copy of the matrix as nested rows.
func (s Shape) Rows() [][]bool {
	rows := make([][]bool, s.h)
	for y := range s.h {
		rows[y] = make([]bool, s.w)
		copy(rows[y], s.cells[y*s.w:(y+1)*s.w])
	}
	return rows
}

// RotateClockwise returns the shape turned 90 degrees clockwise: the rows are
// reversed and then transposed, so an R x C matrix becomes C x R.
func (s Shape) RotateClockwise() Shape {
	out := Shape{w: s.h, h: s.w, cells: make([]bool, len(s.cells))}
	for y := range s.h {
		for x := range s.w {
			// source (x, y) lands in column h-1-y of row x
			out.cells[x*out.w+(s.h-1-y)] = s.cells[y*s.w+x]
		}
	}
	return out
}

// MirrorHorizontal returns the shape flipped left to right.
func (s Shape) MirrorHorizontal() Shape {
	out := Shape{w: s.w, h: s.h, cells: make([]bool, len(s.cells))}
	for y := range s.h {
		for x := range s.w {
			out.cells[y*s.w+(s.w-1-x)] = s.cells[y*s.w+x]
		}
	}
	return out
}

// MirrorVertical returns the shape flipped top to bottom.
func (s Shape) MirrorVertical() Shape {
	out := Shape{w: s.w, h: s.h, cells: make([]bool, len(s.cells))}
	for y := range s.h {
		copy(out.cells[(s.h-1-y)*s.w:(s.h-y)*s.w], s.cells[y*s.w:(y+1)*s.w])
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.w != other.w || s.h != other.h {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether the shape is the zero value.
func (s Shape) IsZero() bool {
	return s.w == 0 && s.h == 0
}

// String renders the shape as '#'/'.' rows separated by '/'.
func (s Shape) String() string {
	var sb strings.Builder
	for y := range s.h {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := range s.w {
			if s.cells[y*s.w+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
