package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Paused bool
	Played int

	// Engine is the zero value on the title screen.
	Engine engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		Paused: g.paused,
		Played: g.played,
	}
	if g.eng != nil {
		s.Engine = g.eng.Snapshot()
	}
	return s
}
