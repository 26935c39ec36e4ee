// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Timing     TetrisTiming     `yaml:"timing"`
	Pieces     TetrisPieces     `yaml:"pieces"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// TetrisBoard defines the playfield size. Columns and rows are derived from
// the pixel size and the cell size.
type TetrisBoard struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// TetrisTiming defines the frame clock and the automatic fall interval.
type TetrisTiming struct {
	TickRate  int `yaml:"tick_rate"`  // Nominal frames per second
	FallTicks int `yaml:"fall_ticks"` // Ticks per drop step, 0 = derive from difficulty
}

// TetrisPieces defines the shape catalog and the colour palette.
type TetrisPieces struct {
	Shapes  []ShapeConfig `yaml:"shapes"`
	Palette []string      `yaml:"palette"`
}

// ShapeConfig is one named shape written as rows of '#' and '.'.
type ShapeConfig struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Dimensions returns the board size in cells.
func (c TetrisConfig) Dimensions() (cols, rows int) {
	if c.Board.CellSize <= 0 {
		return 0, 0
	}
	return c.Board.Width / c.Board.CellSize, c.Board.Height / c.Board.CellSize
}

// FallTicks returns the number of ticks between drop steps. An explicit
// timing.fall_ticks wins; otherwise the difficulty preset is applied to
// tickRate. The result is never below 1.
func (c TetrisConfig) FallTicks(tickRate int) int {
	if c.Timing.FallTicks > 0 {
		return c.Timing.FallTicks
	}
	if tickRate <= 0 {
		tickRate = c.Timing.TickRate
	}
	return FallTicksForPreset(c.Difficulty, tickRate)
}

// Colors resolves the palette names.
func (c TetrisConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Pieces.Palette))
	for _, name := range c.Pieces.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: palette: %w", ErrInvalidConfig, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate checks the configuration can start a game.
// Shape contents are checked when the catalog is built.
func (c TetrisConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 || c.Board.CellSize <= 0 {
		return fmt.Errorf("%w: board width, height and cell_size must be positive", ErrInvalidConfig)
	}
	if cols, rows := c.Dimensions(); cols < 1 || rows < 1 {
		return fmt.Errorf("%w: board %dx%d is smaller than one cell of size %d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, c.Board.CellSize)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidConfig)
	}
	if c.Timing.FallTicks < 0 {
		return fmt.Errorf("%w: fall_ticks must not be negative", ErrInvalidConfig)
	}
	if len(c.Pieces.Shapes) == 0 {
		return fmt.Errorf("%w: no shapes", ErrInvalidConfig)
	}
	for i, s := range c.Pieces.Shapes {
		if len(s.Rows) == 0 {
			return fmt.Errorf("%w: shape %d (%q) has no rows", ErrInvalidConfig, i, s.Name)
		}
	}
	if len(c.Pieces.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}
