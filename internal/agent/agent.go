// Package agent provides the pluggable move deciders that drive a 2048
// session: keyboard input, random play, and search-based strategies.
package agent

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Agent chooses the next move for a session.
// Decide receives a snapshot board and the current score. It returns false
// when no direction is chosen this tick (e.g. no key pressed, or no move
// changes the board); it must return within bounded time.
type Agent interface {
	// Name returns the registry name of this agent (e.g. "random").
	Name() string

	// Decide picks the next direction.
	Decide(board engine.Board, score int) (engine.Direction, bool)
}

// Options carries construction parameters shared by agent factories.
type Options struct {
	// Rng is the random source for agents that make random choices.
	// Factories create a time-independent default when nil.
	Rng *rand.Rand

	// Depth is the search depth in player moves for search agents.
	Depth int
}

// DefaultDepth is the expectimax depth used when Options.Depth is not set.
const DefaultDepth = 3
