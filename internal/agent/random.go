package agent

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Random picks one of the four directions uniformly, whether or not it
// changes the board.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Name returns the agent identifier.
func (r *Random) Name() string {
	return "random"
}

// Decide always chooses a direction.
func (r *Random) Decide(engine.Board, int) (engine.Direction, bool) {
	dirs := engine.Directions()
	return dirs[r.rng.Intn(len(dirs))], true
}

// Scripted replays a fixed list of directions, then stops deciding.
type Scripted struct {
	moves []engine.Direction
	next  int
}

// NewScripted creates an agent that plays moves in order.
func NewScripted(moves ...engine.Direction) *Scripted {
	return &Scripted{moves: moves}
}

// Name returns the agent identifier.
func (s *Scripted) Name() string {
	return "scripted"
}

// Decide returns the next scripted move, or false once exhausted.
func (s *Scripted) Decide(engine.Board, int) (engine.Direction, bool) {
	if s.next >= len(s.moves) {
		return 0, false
	}
	dir := s.moves[s.next]
	s.next++
	return dir, true
}

func (s *Scripted) remaining() int {
	return len(s.moves) - s.next
}
