package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// boardFromRows builds a board from '#'/'.' rows, top row first.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				b.cells[b.index(x, y)] = Cell{Filled: true, Color: core.ColorGray}
			}
		}
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(10, 20)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	if b.Cols() != 10 || b.Rows() != 20 {
		t.Errorf("NewBoard() size = %dx%d, expected 10x20", b.Cols(), b.Rows())
	}
	if b.FilledCount() != 0 {
		t.Errorf("new board has %d filled cells, expected 0", b.FilledCount())
	}
}

func TestNewBoardInvalid(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
	}{
		{"zero cols", 0, 20},
		{"zero rows", 10, 0},
		{"negative", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewBoard(tc.cols, tc.rows); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewBoard(%d, %d) error = %v, expected %v", tc.cols, tc.rows, err, ErrInvalidDimensions)
			}
		})
	}
}

func TestBoardAtOutOfBounds(t *testing.T) {
	b := boardFromRows(t, "##", "##")
	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if b.At(c.X, c.Y).Filled {
			t.Errorf("At(%d, %d) should be empty", c.X, c.Y)
		}
	}
}

func TestIsValidPlacement(t *testing.T) {
	b, _ := NewBoard(10, 20)
	b.cells[b.index(5, 19)] = Cell{Filled: true}
	o := MustParseShape("##", "##")

	tests := []struct {
		name   string
		offset Coord
		want   bool
	}{
		{"spawn", Coord{4, 0}, true},
		{"left edge", Coord{0, 0}, true},
		{"past left edge", Coord{-1, 0}, false},
		{"right edge", Coord{8, 0}, true},
		{"past right edge", Coord{9, 0}, false},
		{"floor", Coord{0, 18}, true},
		{"below floor", Coord{0, 19}, false},
		{"partly above top", Coord{0, -1}, true},
		{"fully above top", Coord{3, -5}, true},
		{"overlaps block", Coord{4, 18}, false},
		{"beside block", Coord{6, 18}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsValidPlacement(o, tc.offset); got != tc.want {
				t.Errorf("IsValidPlacement(O, %v) = %v, expected %v", tc.offset, got, tc.want)
			}
		})
	}
}

func TestIsValidPlacementIgnoresEmptyMatrixCells(t *testing.T) {
	b := boardFromRows(t,
		"#...",
		"....",
	)
	// T's top-left matrix cell is empty, so it may sit over the block.
	tee := MustParseShape(".#.", "###")
	if !b.IsValidPlacement(tee, Coord{0, 0}) {
		t.Error("IsValidPlacement() should ignore empty matrix cells")
	}
}

func TestMerge(t *testing.T) {
	b, _ := NewBoard(4, 4)
	b.Merge(MustParseShape(".#.", "###"), core.ColorMagenta, Coord{1, 2})

	want := strings.Join([]string{
		"....",
		"....",
		"..#.",
		".###",
	}, "\n")
	if b.String() != want {
		t.Errorf("after Merge:\n%s\nexpected:\n%s", b, want)
	}
	if c := b.At(2, 2); c.Color != core.ColorMagenta {
		t.Errorf("merged cell color = %v, expected %v", c.Color, core.ColorMagenta)
	}
}

func TestMergeSkipsCellsAboveTop(t *testing.T) {
	b, _ := NewBoard(4, 4)
	b.Merge(MustParseShape("#", "#", "#", "#"), core.ColorCyan, Coord{0, -2})

	if got := b.FilledCount(); got != 2 {
		t.Errorf("FilledCount() = %d, expected 2", got)
	}
	if !b.At(0, 0).Filled || !b.At(0, 1).Filled {
		t.Error("cells inside the board should be merged")
	}
}

func TestClearFullLinesSingleGap(t *testing.T) {
	b := boardFromRows(t,
		"..........",
		"..........",
		"#.........",
		"####.#####",
	)
	b.Merge(MustParseShape("#", "#", "#", "#"), core.ColorCyan, Coord{4, 0})

	if got := b.ClearFullLines(); got != 1 {
		t.Fatalf("ClearFullLines() = %d, expected 1", got)
	}

	want := strings.Join([]string{
		"..........",
		"....#.....",
		"....#.....",
		"#...#.....",
	}, "\n")
	if b.String() != want {
		t.Errorf("after clear:\n%s\nexpected:\n%s", b, want)
	}
	if b.Rows() != 4 {
		t.Errorf("Rows() = %d, expected 4", b.Rows())
	}
}

func TestClearFullLinesNonContiguous(t *testing.T) {
	b := boardFromRows(t,
		"#.........",
		"##########",
		".#........",
		"##########",
	)
	b.cells[b.index(1, 2)].Color = core.ColorRed

	if got := b.ClearFullLines(); got != 2 {
		t.Fatalf("ClearFullLines() = %d, expected 2", got)
	}

	want := strings.Join([]string{
		"..........",
		"..........",
		"#.........",
		".#........",
	}, "\n")
	if b.String() != want {
		t.Errorf("after clear:\n%s\nexpected:\n%s", b, want)
	}
	if c := b.At(1, 3); c.Color != core.ColorRed {
		t.Errorf("shifted cell color = %v, expected %v", c.Color, core.ColorRed)
	}
}

func TestClearFullLinesProperty(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"none", []string{"...", "#.#", "##."}, 0},
		{"one", []string{"...", "#.#", "###"}, 1},
		{"all", []string{"###", "###", "###"}, 3},
		{"top", []string{"###", "#..", "..."}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromRows(t, tc.rows...)
			filledBefore := b.FilledCount()

			got := b.ClearFullLines()
			if got != tc.want {
				t.Fatalf("ClearFullLines() = %d, expected %d", got, tc.want)
			}
			if b.Rows() != len(tc.rows) {
				t.Errorf("Rows() = %d, expected %d", b.Rows(), len(tc.rows))
			}
			for y := range got {
				for x := range b.Cols() {
					if b.At(x, y).Filled {
						t.Errorf("row %d should be empty after clearing %d rows", y, got)
					}
				}
			}
			if filled := b.FilledCount(); filled != filledBefore-got*b.Cols() {
				t.Errorf("FilledCount() = %d, expected %d", filled, filledBefore-got*b.Cols())
			}
			for y := range b.Rows() {
				if b.RowFull(y) {
					t.Errorf("row %d still full", y)
				}
			}
		})
	}
}

func TestBoardClone(t *testing.T) {
	b := boardFromRows(t, "#.", "..")
	c := b.Clone()
	c.Merge(MustParseShape("##", "##"), core.ColorRed, Coord{0, 0})

	if b.FilledCount() != 1 {
		t.Errorf("original FilledCount() = %d, expected 1", b.FilledCount())
	}
	if b.Equal(c) {
		t.Error("clone should not share cells with the original")
	}
}
