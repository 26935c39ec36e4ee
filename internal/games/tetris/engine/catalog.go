package engine

import (
	"errors"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrEmptyCatalog is returned when a catalog has no shapes or no colours.
var ErrEmptyCatalog = errors.New("engine: catalog needs at least one shape and one color")

// NamedShape pairs a shape with its catalog name.
type NamedShape struct {
	Name  string
	Shape Shape
}

// Catalog is the fixed set of shapes and colours pieces are drawn from.
type Catalog struct {
	Shapes  []NamedShape
	Palette []core.Color
}

// DefaultCatalog returns the seven classic tetrominoes in spawn orientation
// and a seven-colour palette.
func DefaultCatalog() Catalog {
	return Catalog{
		Shapes: []NamedShape{
			{Name: "I", Shape: MustParseShape("####")},
			{Name: "O", Shape: MustParseShape("##", "##")},
			{Name: "T", Shape: MustParseShape(".#.", "###")},
			{Name: "Z", Shape: MustParseShape("##.", ".##")},
			{Name: "S", Shape: MustParseShape(".##", "##.")},
			{Name: "J", Shape: MustParseShape("#..", "###")},
			{Name: "L", Shape: MustParseShape("..#", "###")},
		},
		Palette: []core.Color{
			core.ColorCyan,
			core.ColorOrange,
			core.ColorBlue,
			core.ColorYellow,
			core.ColorMagenta,
			core.ColorGreen,
			core.ColorRed,
		},
	}
}

// Validate checks the catalog is usable by a generator.
func (c Catalog) Validate() error {
	if len(c.Shapes) == 0 || len(c.Palette) == 0 {
		return ErrEmptyCatalog
	}
	for _, ns := range c.Shapes {
		if ns.Shape.IsZero() {
			return ErrEmptyShape
		}
	}
	return nil
}

// Lookup returns the shape registered under name.
func (c Catalog) Lookup(name string) (Shape, bool) {
	for _, ns := range c.Shapes {
		if ns.Name == name {
			return ns.Shape, true
		}
	}
	return Shape{}, false
}
