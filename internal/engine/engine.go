package engine

import (
	"fmt"
	"math/rand"
)

// SpawnFourProbability is the chance a spawned tile is a 4 rather than a 2.
const SpawnFourProbability = 0.1

// Status is the derived session status.
type Status string

const (
	StatusOngoing          Status = "ongoing"
	StatusNoMovesAvailable Status = "no_moves_available"
)

// StepOutcome is the result of one full tick: a move, plus the spawn and
// status re-evaluation that follow a changed move.
type StepOutcome struct {
	MoveOutcome
	Spawned bool
	Status  Status
}

// Engine owns a single board and score. It is not safe for concurrent use;
// callers keep a single owner.
type Engine struct {
	size   int
	board  Board
	score  int
	moves  int
	rng    *rand.Rand
	status Status
}

// New starts a session on an empty size x size board with two spawned tiles.
// rng drives every spawn; pass a seeded source for reproducible games.
func New(size int, rng *rand.Rand) (*Engine, error) {
	if size < MinSize {
		return nil, fmt.Errorf("engine: board size %d (minimum %d): %w", size, MinSize, ErrInvalidConfiguration)
	}
	if rng == nil {
		return nil, fmt.Errorf("engine: nil random source: %w", ErrInvalidConfiguration)
	}

	e := &Engine{
		size: size,
		rng:  rng,
	}
	e.Restart()
	return e, nil
}

// NewWithBoard starts a session around an existing board and score.
// The board is copied; status is evaluated immediately.
func NewWithBoard(board Board, score int, rng *rand.Rand) (*Engine, error) {
	checked, err := BoardFromRows(board)
	if err != nil {
		return nil, err
	}
	if score < 0 {
		return nil, fmt.Errorf("engine: negative score %d: %w", score, ErrInvalidConfiguration)
	}
	if rng == nil {
		return nil, fmt.Errorf("engine: nil random source: %w", ErrInvalidConfiguration)
	}

	e := &Engine{
		size:  checked.Size(),
		board: checked,
		score: score,
		rng:   rng,
	}
	e.status = e.evaluate()
	return e, nil
}

// Restart clears the board and score and spawns two fresh tiles.
func (e *Engine) Restart() {
	e.board = NewBoard(e.size)
	e.score = 0
	e.moves = 0
	e.status = StatusOngoing

	e.SpawnTile()
	e.SpawnTile()
}

// ApplyMove slides the board in dir. A changed board is committed and the
// score delta added; an unchanged board leaves state untouched and the
// caller must not spawn.
func (e *Engine) ApplyMove(dir Direction) (MoveOutcome, error) {
	if !dir.Valid() {
		return MoveOutcome{}, fmt.Errorf("engine: direction %d: %w", int(dir), ErrInvalidArgument)
	}

	out := Slide(e.board, dir)
	if !out.Changed {
		return out, nil
	}

	e.board = out.Board.Clone()
	e.score += out.ScoreDelta
	e.moves++
	return out, nil
}

// SpawnTile places a 2 (90%) or 4 (10%) on a uniformly chosen empty cell.
// Returns false without changing anything if the board is full.
func (e *Engine) SpawnTile() bool {
	emptyCells := e.board.EmptyCells()
	if len(emptyCells) == 0 {
		return false
	}

	cell := emptyCells[e.rng.Intn(len(emptyCells))]

	value := 2
	if e.rng.Float64() < SpawnFourProbability {
		value = 4
	}

	e.board[cell.Y][cell.X] = value
	return true
}

// HasMovesAvailable reports whether an empty cell or a mergeable adjacent
// pair exists anywhere on the board.
func (e *Engine) HasMovesAvailable() bool {
	return CanMove(e.board)
}

// Step runs one tick: apply the move and, only if it changed the board,
// spawn a tile and re-evaluate status. Returns ErrSessionOver once the
// session is terminal.
func (e *Engine) Step(dir Direction) (StepOutcome, error) {
	if e.status == StatusNoMovesAvailable {
		return StepOutcome{Status: e.status}, ErrSessionOver
	}

	out, err := e.ApplyMove(dir)
	if err != nil {
		return StepOutcome{Status: e.status}, err
	}

	step := StepOutcome{MoveOutcome: out}
	if out.Changed {
		step.Spawned = e.SpawnTile()
		e.status = e.evaluate()
	}
	step.Status = e.status
	return step, nil
}

// evaluate derives the status from the current board alone.
func (e *Engine) evaluate() Status {
	if e.HasMovesAvailable() {
		return StatusOngoing
	}
	return StatusNoMovesAvailable
}

// Status returns the status as of the last evaluation.
func (e *Engine) Status() Status {
	return e.status
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.size
}

// Moves returns the number of changed moves this session.
func (e *Engine) Moves() int {
	return e.moves
}
