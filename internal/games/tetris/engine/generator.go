package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Source supplies uniform random integers in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generator produces new pieces by drawing a shape and a colour independently
// and uniformly from a catalog. It keeps no history.
type Generator struct {
	catalog Catalog
	src     Source
}

// NewGenerator creates a generator over the catalog.
func NewGenerator(catalog Catalog, src Source) (*Generator, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &Generator{catalog: catalog, src: src}, nil
}

// Next draws the shape first, then the colour.
func (g *Generator) Next() (Shape, core.Color) {
	shape := g.catalog.Shapes[g.src.Intn(len(g.catalog.Shapes))].Shape
	color := g.catalog.Palette[g.src.Intn(len(g.catalog.Palette))]
	return shape, color
}

// NextPiece draws a piece anchored at the origin.
func (g *Generator) NextPiece() Piece {
	shape, color := g.Next()
	return Piece{Shape: shape, Color: color}
}
