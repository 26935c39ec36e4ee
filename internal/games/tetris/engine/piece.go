package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Coord is a board position. X grows to the right, Y grows downward and row 0
// is the top of the well.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Piece is a shape with a colour placed on the board. Anchor is the board
// position of the shape matrix's top-left cell.
//
// Piece is a value: every transform returns a new piece and leaves the
// receiver unchanged.
type Piece struct {
	Shape  Shape
	Color  core.Color
	Anchor Coord
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor = Coord{X: p.Anchor.X + dx, Y: p.Anchor.Y + dy}
	return p
}

// At returns the piece with its anchor replaced.
func (p Piece) At(anchor Coord) Piece {
	p.Anchor = anchor
	return p
}

// RotateClockwise returns the piece with its shape turned 90 degrees clockwise
// about the anchor.
func (p Piece) RotateClockwise() Piece {
	p.Shape = p.Shape.RotateClockwise()
	return p
}

// MirrorHorizontal returns the piece with its shape flipped left to right.
func (p Piece) MirrorHorizontal() Piece {
	p.Shape = p.Shape.MirrorHorizontal()
	return p
}

// MirrorVertical returns the piece with its shape flipped top to bottom.
func (p Piece) MirrorVertical() Piece {
	p.Shape = p.Shape.MirrorVertical()
	return p
}

// Cells returns the board coordinates covered by the piece.
func (p Piece) Cells() []Coord {
	blocks := p.Shape.Blocks()
	for i := range blocks {
		blocks[i] = blocks[i].Add(p.Anchor)
	}
	return blocks
}

// Covers reports whether the piece occupies the board cell (x, y).
func (p Piece) Covers(x, y int) bool {
	return p.Shape.Filled(x-p.Anchor.X, y-p.Anchor.Y)
}
