package engine

// Snapshot is a copy of the engine state used by tests and debug logging.
type Snapshot struct {
	Board   *Board
	Current Piece
	Next    Piece
	Score   int
	Timer   int
	Over    bool
	Locked  int
}

// Snapshot captures the current engine state. The board is deep-copied;
// shapes are immutable and safe to share.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:   e.board.Clone(),
		Current: e.current,
		Next:    e.next,
		Score:   e.score,
		Timer:   e.timer,
		Over:    e.over,
		Locked:  e.locked,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Board.Equal(o.Board) &&
		piecesEqual(s.Current, o.Current) &&
		piecesEqual(s.Next, o.Next) &&
		s.Score == o.Score &&
		s.Timer == o.Timer &&
		s.Over == o.Over &&
		s.Locked == o.Locked
}

func piecesEqual(a, b Piece) bool {
	return a.Color == b.Color && a.Anchor == b.Anchor && a.Shape.Equal(b.Shape)
}
