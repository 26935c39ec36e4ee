package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration: a 10x20 well,
// 60 ticks per second and the seven classic shapes.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:    300,
			Height:   600,
			CellSize: 30,
		},
		Timing: TetrisTiming{
			TickRate:  60,
			FallTicks: 0, // tick_rate / 2 on normal
		},
		Pieces: TetrisPieces{
			Shapes: []ShapeConfig{
				{Name: "I", Rows: []string{"####"}},
				{Name: "O", Rows: []string{"##", "##"}},
				{Name: "T", Rows: []string{".#.", "###"}},
				{Name: "Z", Rows: []string{"##.", ".##"}},
				{Name: "S", Rows: []string{".##", "##."}},
				{Name: "J", Rows: []string{"#..", "###"}},
				{Name: "L", Rows: []string{"..#", "###"}},
			},
			Palette: []string{"cyan", "orange", "blue", "yellow", "magenta", "green", "red"},
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
