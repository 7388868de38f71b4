package agent

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Evaluator scores a board position; higher is better.
type Evaluator interface {
	Evaluate(b engine.Board) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(b engine.Board) float64

// Evaluate calls f(b).
func (f EvaluatorFunc) Evaluate(b engine.Board) float64 {
	return f(b)
}

// WeightedEvaluator combines evaluators with per-evaluator weights.
type WeightedEvaluator struct {
	evaluators []Evaluator
	weights    []float64
}

// NewWeightedEvaluator pairs evaluators[i] with weights[i].
// Extra entries in the longer slice are ignored.
func NewWeightedEvaluator(evaluators []Evaluator, weights []float64) *WeightedEvaluator {
	n := len(evaluators)
	if len(weights) < n {
		n = len(weights)
	}
	return &WeightedEvaluator{
		evaluators: evaluators[:n],
		weights:    weights[:n],
	}
}

// Evaluate returns the weighted sum.
func (w *WeightedEvaluator) Evaluate(b engine.Board) float64 {
	score := 0.0
	for i, ev := range w.evaluators {
		score += w.weights[i] * ev.Evaluate(b)
	}
	return score
}

// DefaultEvaluator is the heuristic used by the expectimax agent.
func DefaultEvaluator() Evaluator {
	return NewWeightedEvaluator(
		[]Evaluator{EmptyCells{}, Monotonicity{}, Smoothness{}, CornerBonus{}, Mergeable{}},
		[]float64{2.7, 1.0, 0.1, 3.0, 1.0},
	)
}

// EmptyCells counts empty cells.
type EmptyCells struct{}

func (EmptyCells) Evaluate(b engine.Board) float64 {
	return float64(len(b.EmptyCells()))
}

// Monotonicity rewards rows and columns that decrease away from a corner.
// The best of the four corners is used.
type Monotonicity struct{}

func (m Monotonicity) Evaluate(b engine.Board) float64 {
	best := math.Inf(-1)
	for _, fromTop := range []bool{true, false} {
		for _, fromLeft := range []bool{true, false} {
			if s := m.score(b, fromTop, fromLeft); s > best {
				best = s
			}
		}
	}
	return best
}

func (Monotonicity) score(b engine.Board, fromTop, fromLeft bool) float64 {
	n := b.Size()
	score := 0.0

	for r := 0; r < n; r++ {
		for c := 0; c < n-1; c++ {
			c1, c2 := c, c+1
			if !fromLeft {
				c1, c2 = n-1-c, n-2-c
			}
			if b[r][c1] >= b[r][c2] {
				score++
			}
		}
	}

	for c := 0; c < n; c++ {
		for r := 0; r < n-1; r++ {
			r1, r2 := r, r+1
			if !fromTop {
				r1, r2 = n-1-r, n-2-r
			}
			if b[r1][c] >= b[r2][c] {
				score++
			}
		}
	}

	return score
}

// Smoothness penalises log2 differences between neighbouring tiles.
type Smoothness struct{}

func (Smoothness) Evaluate(b engine.Board) float64 {
	n := b.Size()
	penalty := 0.0

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			logV := math.Log2(float64(v))
			if c < n-1 && b[r][c+1] != 0 {
				penalty += math.Abs(logV - math.Log2(float64(b[r][c+1])))
			}
			if r < n-1 && b[r+1][c] != 0 {
				penalty += math.Abs(logV - math.Log2(float64(b[r+1][c])))
			}
		}
	}

	return -penalty
}

// CornerBonus returns 1 when the largest tile sits in a corner.
type CornerBonus struct{}

func (CornerBonus) Evaluate(b engine.Board) float64 {
	n := b.Size()
	maxVal, maxRow, maxCol := 0, 0, 0

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
				maxRow, maxCol = r, c
			}
		}
	}

	if maxVal == 0 {
		return 0
	}
	if (maxRow == 0 || maxRow == n-1) && (maxCol == 0 || maxCol == n-1) {
		return 1
	}
	return 0
}

// Mergeable counts adjacent equal pairs.
type Mergeable struct{}

func (Mergeable) Evaluate(b engine.Board) float64 {
	n := b.Size()
	count := 0.0

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			if c < n-1 && b[r][c+1] == v {
				count++
			}
			if r < n-1 && b[r+1][c] == v {
				count++
			}
		}
	}

	return count
}
