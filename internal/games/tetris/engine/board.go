package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrInvalidDimensions is returned for boards with a non-positive size.
var ErrInvalidDimensions = errors.New("engine: board dimensions must be positive")

// Cell is a single board position. The zero value is empty.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is the well of locked blocks. Row 0 is the top.
// Cells are stored in row-major order: index = y*cols + x.
type Board struct {
	cols  int
	rows  int
	cells []Cell
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) (*Board, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}, nil
}

// Cols returns the board width in cells.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

func (b *Board) index(x, y int) int {
	return y*b.cols + x
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// At returns the cell at (x, y). Out-of-bounds positions are empty.
func (b *Board) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[b.index(x, y)]
}

// IsValidPlacement reports whether shape fits with its top-left at offset.
// A placement is rejected when a filled cell lands left of column 0, right of
// the last column, below the last row, or on an occupied cell. Cells above
// row 0 are allowed.
func (b *Board) IsValidPlacement(shape Shape, offset Coord) bool {
	for _, blk := range shape.Blocks() {
		x, y := offset.X+blk.X, offset.Y+blk.Y
		if x < 0 || x >= b.cols || y >= b.rows {
			return false
		}
		if y >= 0 && b.cells[b.index(x, y)].Filled {
			return false
		}
	}
	return true
}

// Merge locks shape into the board at anchor. It does not re-validate the
// placement; cells outside the grid are dropped.
func (b *Board) Merge(shape Shape, color core.Color, anchor Coord) {
	for _, blk := range shape.Blocks() {
		x, y := anchor.X+blk.X, anchor.Y+blk.Y
		if b.inBounds(x, y) {
			b.cells[b.index(x, y)] = Cell{Filled: true, Color: color}
		}
	}
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.rows {
		return false
	}
	for _, c := range b.cells[y*b.cols : (y+1)*b.cols] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row in one pass and returns how many were
// removed. Remaining rows keep their order and empty rows are inserted at the
// top so the height never changes.
func (b *Board) ClearFullLines() int {
	kept := make([]Cell, 0, len(b.cells))
	cleared := 0
	for y := range b.rows {
		if b.RowFull(y) {
			cleared++
			continue
		}
		kept = append(kept, b.cells[y*b.cols:(y+1)*b.cols]...)
	}
	if cleared == 0 {
		return 0
	}

	top := cleared * b.cols
	clear(b.cells[:top])
	copy(b.cells[top:], kept)
	return cleared
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{cols: b.cols, rows: b.rows, cells: cells}
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.cols != other.cols || b.rows != other.rows {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as rows of '#' (filled) and '.' (empty).
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for y := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.cols {
			if b.cells[b.index(x, y)].Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
