package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidFallTicks is returned when the fall threshold is not positive.
var ErrInvalidFallTicks = errors.New("engine: fall ticks must be positive")

// Config fixes the rules of one game. It cannot change while the game runs.
type Config struct {
	Cols      int     // board width in cells
	Rows      int     // board height in cells
	FallTicks int     // ticks between automatic drop steps
	Catalog   Catalog // shapes and colours to draw from
}

// DefaultEngineConfig returns the classic 10x20 well with a drop every 30
// ticks and the default catalog.
func DefaultEngineConfig() Config {
	return Config{
		Cols:      10,
		Rows:      20,
		FallTicks: 30,
		Catalog:   DefaultCatalog(),
	}
}

// Validate checks the config can build an engine.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Cols, c.Rows)
	}
	if c.FallTicks <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFallTicks, c.FallTicks)
	}
	return c.Catalog.Validate()
}

// Engine is the falling-block state machine. It owns the board, the current
// and next pieces, the score, the fall timer and the game-over flag.
//
// The engine is not safe for concurrent use. Once Over reports true every
// command and Tick is a no-op; start a new game by creating a new Engine.
type Engine struct {
	cfg   Config
	board *Board
	gen   *Generator

	current Piece
	next    Piece

	score  int
	timer  int
	over   bool
	locked int
}

// New creates an engine, draws the current piece then the next piece, and
// places the current piece at the spawn position.
func New(cfg Config, src Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, err
	}
	gen, err := NewGenerator(cfg.Catalog, src)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		board: board,
		gen:   gen,
	}
	e.current = gen.NextPiece().At(e.SpawnPoint())
	e.next = gen.NextPiece()
	if !e.fits(e.current) {
		e.over = true
	}
	return e, nil
}

// SpawnPoint returns the anchor new pieces start from.
func (e *Engine) SpawnPoint() Coord {
	return Coord{X: e.board.Cols()/2 - 1, Y: 0}
}

func (e *Engine) fits(p Piece) bool {
	return e.board.IsValidPlacement(p.Shape, p.Anchor)
}

// Tick advances the fall timer by one. When the timer reaches the fall
// threshold it is reset and a drop step runs. Returns the game-over flag.
func (e *Engine) Tick() bool {
	if e.over {
		return true
	}
	e.timer++
	if e.timer >= e.cfg.FallTicks {
		e.timer = 0
		e.step()
	}
	return e.over
}

// SoftDrop runs one drop step immediately without touching the fall timer.
// Returns the game-over flag.
func (e *Engine) SoftDrop() bool {
	if e.over {
		return true
	}
	e.step()
	return e.over
}

// step moves the current piece down one row, or locks it when it cannot move.
func (e *Engine) step() {
	if moved := e.current.Moved(0, 1); e.fits(moved) {
		e.current = moved
		return
	}
	e.lock()
}

// lock merges the current piece, clears full rows and spawns the next piece.
func (e *Engine) lock() {
	e.board.Merge(e.current.Shape, e.current.Color, e.current.Anchor)
	e.locked++
	e.score += e.board.ClearFullLines()

	e.current = e.next.At(e.SpawnPoint())
	e.next = e.gen.NextPiece()
	if !e.fits(e.current) {
		e.over = true
	}
}

// MoveHorizontal shifts the current piece by dx columns if the result is a
// valid placement. Returns whether the piece moved.
func (e *Engine) MoveHorizontal(dx int) bool {
	if e.over {
		return false
	}
	moved := e.current.Moved(dx, 0)
	if !e.fits(moved) {
		return false
	}
	e.current = moved
	return true
}

// MoveLeft shifts the current piece one column left if possible.
func (e *Engine) MoveLeft() bool { return e.MoveHorizontal(-1) }

// MoveRight shifts the current piece one column right if possible.
func (e *Engine) MoveRight() bool { return e.MoveHorizontal(1) }

// Rotate turns the current piece clockwise about its anchor. When the rotated
// piece does not fit it is turned three more times, which restores the
// original orientation. Returns whether the new orientation was kept.
func (e *Engine) Rotate() bool {
	if e.over {
		return false
	}
	e.current = e.current.RotateClockwise()
	if e.fits(e.current) {
		return true
	}
	for range 3 {
		e.current = e.current.RotateClockwise()
	}
	return false
}

// FlipHorizontal mirrors the current piece left to right. The result is not
// checked against the board.
func (e *Engine) FlipHorizontal() {
	if e.over {
		return
	}
	e.current = e.current.MirrorHorizontal()
}

// FlipVertical mirrors the current piece top to bottom. The result is not
// checked against the board.
func (e *Engine) FlipVertical() {
	if e.over {
		return
	}
	e.current = e.current.MirrorVertical()
}

// Cell returns the locked board cell at (x, y).
func (e *Engine) Cell(x, y int) Cell { return e.board.At(x, y) }

// Cols returns the board width.
func (e *Engine) Cols() int { return e.board.Cols() }

// Rows returns the board height.
func (e *Engine) Rows() int { return e.board.Rows() }

// Current returns the falling piece.
func (e *Engine) Current() Piece { return e.current }

// Next returns the piece that spawns after the current one locks.
func (e *Engine) Next() Piece { return e.next }

// Score returns the total number of cleared rows.
func (e *Engine) Score() int { return e.score }

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.over }

// Locked returns how many pieces have been merged into the board.
func (e *Engine) Locked() int { return e.locked }

// Timer returns the current fall timer value.
func (e *Engine) Timer() int { return e.timer }

// Config returns the rules the engine was built with.
func (e *Engine) Config() Config { return e.cfg }
