package agent

import "github.com/vovakirdan/tui-2048/internal/engine"

// Greedy looks one move ahead: highest immediate score delta, ties broken by
// the number of empty cells left, then by direction order.
type Greedy struct{}

// NewGreedy creates a greedy agent.
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Name returns the agent identifier.
func (g *Greedy) Name() string {
	return "greedy"
}

// Decide returns false when no direction changes the board.
func (g *Greedy) Decide(board engine.Board, _ int) (engine.Direction, bool) {
	bestDir := engine.DirUp
	bestScore, bestEmpty := -1, -1
	found := false

	for _, dir := range engine.Directions() {
		out := engine.Slide(board, dir)
		if !out.Changed {
			continue
		}

		empty := len(out.Board.EmptyCells())
		if out.ScoreDelta > bestScore || (out.ScoreDelta == bestScore && empty > bestEmpty) {
			bestDir = dir
			bestScore = out.ScoreDelta
			bestEmpty = empty
			found = true
		}
	}

	return bestDir, found
}
