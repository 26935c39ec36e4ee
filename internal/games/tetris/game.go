// Package tetris adapts the falling-block engine to the platform's Game
// interface: title and game-over screens, pause, input mapping and the HUD.
package tetris

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// Phase is the screen the game is on.
type Phase string

const (
	PhaseTitle    Phase = "title"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Package-level settings shared by every new game. Set them before games are
// created; running games keep the rules they started with.
var (
	rules  = engine.DefaultEngineConfig()
	logger = log.New(io.Discard)
)

// Configure validates cfg and makes it the rule set for new games.
func Configure(cfg config.TetrisConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	catalog, err := BuildCatalog(cfg.Pieces)
	if err != nil {
		return err
	}
	cols, rows := cfg.Dimensions()
	ec := engine.Config{
		Cols:      cols,
		Rows:      rows,
		FallTicks: cfg.FallTicks(cfg.Timing.TickRate),
		Catalog:   catalog,
	}
	if err := ec.Validate(); err != nil {
		return err
	}
	rules = ec
	return nil
}

// Rules returns the engine config new games start with.
func Rules() engine.Config {
	return rules
}

// SetLogger sets the logger used for game events. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// BuildCatalog parses configured shapes and palette into an engine catalog.
func BuildCatalog(p config.TetrisPieces) (engine.Catalog, error) {
	var cat engine.Catalog
	for _, sc := range p.Shapes {
		shape, err := engine.ParseShape(sc.Rows)
		if err != nil {
			return engine.Catalog{}, fmt.Errorf("shape %q: %w", sc.Name, err)
		}
		cat.Shapes = append(cat.Shapes, engine.NamedShape{Name: sc.Name, Shape: shape})
	}
	for _, name := range p.Palette {
		c, err := core.ParseColor(name)
		if err != nil {
			return engine.Catalog{}, err
		}
		cat.Palette = append(cat.Palette, c)
	}
	if err := cat.Validate(); err != nil {
		return engine.Catalog{}, err
	}
	return cat, nil
}

// Game implements Tetris on top of engine.Engine.
type Game struct {
	cfg  engine.Config
	rng  *rand.Rand
	eng  *engine.Engine
	tick uint64

	phase  Phase
	paused bool
	played int // games started since Reset
}

// New creates a game using the current package rules.
func New() *Game {
	return &Game{
		cfg:   rules,
		phase: PhaseTitle,
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset returns to the title screen. The seed drives every piece drawn until
// the next Reset, including restarted games.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.eng = nil
	g.tick = 0
	g.phase = PhaseTitle
	g.paused = false
	g.played = 0
}

// Resize is a no-op: the layout is computed from the screen passed to
// Render, so a resize never needs a Reset.
func (g *Game) Resize(w, h int) {}

// start replaces the engine with a fresh one.
func (g *Game) start() {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(0))
	}
	eng, err := engine.New(g.cfg, g.rng)
	if err != nil {
		logger.Error("cannot start game", "error", err)
		return
	}
	g.eng = eng
	g.phase = PhasePlaying
	g.paused = false
	g.played++
	logger.Debug("game started",
		"game", g.played,
		"board", fmt.Sprintf("%dx%d", g.cfg.Cols, g.cfg.Rows),
		"fall_ticks", g.cfg.FallTicks,
		"current", pieceString(eng.Current()),
	)
	if eng.Over() {
		g.finish()
	}
}

// finish moves to the game-over screen.
func (g *Game) finish() {
	g.phase = PhaseGameOver
	logger.Debug("game over", "game", g.played, "score", g.eng.Score(), "pieces", g.eng.Locked())
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseTitle:
		if input.Has(core.ActionConfirm) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	case PhaseGameOver:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionRestart) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.eng.Score()
	g.applyCommands(input)
	g.eng.Tick()

	cleared := g.eng.Score() - before
	if cleared > 0 {
		logger.Debug("lines cleared", "count", cleared, "score", g.eng.Score())
	}
	if g.eng.Over() {
		g.finish()
	}
	return core.StepResult{State: g.State(), Cleared: cleared}
}

// applyCommands runs the frame's commands in a fixed order: moves, rotation,
// flips, then the soft drop.
func (g *Game) applyCommands(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.eng.MoveLeft()
	}
	if input.Has(core.ActionRight) {
		g.eng.MoveRight()
	}
	if input.Has(core.ActionRotate) {
		g.eng.Rotate()
	}
	if input.Has(core.ActionFlipH) {
		g.eng.FlipHorizontal()
	}
	if input.Has(core.ActionFlipV) {
		g.eng.FlipVertical()
	}
	if input.Has(core.ActionDown) {
		g.eng.SoftDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.eng != nil {
		score = g.eng.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Idle:     g.phase == PhaseTitle,
	}
}

// Phase returns the current screen.
func (g *Game) Phase() Phase { return g.phase }

// Engine returns the running engine, or nil on the title screen.
func (g *Game) Engine() *engine.Engine { return g.eng }
