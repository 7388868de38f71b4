package engine

// Snapshot captures the session state for rendering, agents and replay.
// The board is a deep copy; mutating it never affects the engine.
type Snapshot struct {
	Size    int
	Score   int
	Moves   int
	Board   Board
	MaxTile int // Highest tile on board
	Status  Status
}

// Snapshot returns a read-only copy of the current session state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Size:    e.size,
		Score:   e.score,
		Moves:   e.moves,
		Board:   e.board.Clone(),
		MaxTile: e.board.MaxTile(),
		Status:  e.status,
	}
}
