package agent

import (
	"math"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// maxChanceSamples caps how many empty cells a chance node expands.
const maxChanceSamples = 6

// Expectimax searches alternating player and spawn layers to a fixed depth.
// Root moves are evaluated concurrently; deeper layers run sequentially.
type Expectimax struct {
	evaluator Evaluator
	depth     int
}

// NewExpectimax creates a search agent. Depth below 1 is raised to 1.
func NewExpectimax(evaluator Evaluator, depth int) *Expectimax {
	if depth < 1 {
		depth = 1
	}
	return &Expectimax{evaluator: evaluator, depth: depth}
}

// Name returns the agent identifier.
func (e *Expectimax) Name() string {
	return "expectimax"
}

// Depth returns the search depth in player moves.
func (e *Expectimax) Depth() int {
	return e.depth
}

// Decide returns false when no direction changes the board.
// Ties resolve to the earliest direction in engine.Directions order.
func (e *Expectimax) Decide(board engine.Board, _ int) (engine.Direction, bool) {
	type candidate struct {
		dir   engine.Direction
		board engine.Board
		score float64
	}

	var candidates []candidate
	for _, dir := range engine.Directions() {
		out := engine.Slide(board, dir)
		if out.Changed {
			candidates = append(candidates, candidate{dir: dir, board: out.Board})
		}
	}

	switch len(candidates) {
	case 0:
		return engine.DirUp, false
	case 1:
		return candidates[0].dir, true
	}

	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(c *candidate) {
			defer wg.Done()
			c.score = e.expected(c.board, e.depth-1)
		}(&candidates[i])
	}
	wg.Wait()

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best.dir, true
}

// expected averages over spawn outcomes on a sample of empty cells.
func (e *Expectimax) expected(board engine.Board, depth int) float64 {
	empty := board.EmptyCells()
	if len(empty) == 0 || depth <= 0 {
		return e.evaluator.Evaluate(board)
	}

	sample := sampleCells(empty, maxChanceSamples)
	pFour := engine.SpawnFourProbability

	total := 0.0
	for _, cell := range sample {
		child := board.Clone()

		child[cell.Y][cell.X] = 2
		two := e.best(child, depth)

		child[cell.Y][cell.X] = 4
		four := e.best(child, depth)

		total += (1-pFour)*two + pFour*four
	}
	return total / float64(len(sample))
}

// best takes the maximum over the player's changing moves.
func (e *Expectimax) best(board engine.Board, depth int) float64 {
	if depth <= 0 {
		return e.evaluator.Evaluate(board)
	}

	bestScore := math.Inf(-1)
	moved := false
	for _, dir := range engine.Directions() {
		out := engine.Slide(board, dir)
		if !out.Changed {
			continue
		}
		moved = true
		if s := e.expected(out.Board, depth-1); s > bestScore {
			bestScore = s
		}
	}

	if !moved {
		return e.evaluator.Evaluate(board)
	}
	return bestScore
}

// sampleCells picks up to limit cells spread evenly through cells.
func sampleCells(cells []engine.Cell, limit int) []engine.Cell {
	if len(cells) <= limit {
		return cells
	}

	step := len(cells) / limit
	if step == 0 {
		step = 1
	}
	out := make([]engine.Cell, 0, limit)
	for i := 0; i < len(cells) && len(out) < limit; i += step {
		out = append(out, cells[i])
	}
	return out
}
