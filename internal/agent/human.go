package agent

import (
	"sync"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// humanBufferSize bounds how many key presses are queued between ticks.
const humanBufferSize = 8

// Human is the input-device agent. Key handlers Push directions; Decide
// hands out one queued direction per tick and reports false when none is
// pending, so the driver never blocks waiting for a key.
type Human struct {
	mu      sync.Mutex
	pending []engine.Direction
}

// NewHuman creates a human agent with an empty input queue.
func NewHuman() *Human {
	return &Human{}
}

// Name returns the agent identifier.
func (h *Human) Name() string {
	return "human"
}

// Push queues a direction from an input device.
// When the queue is full the oldest press is dropped.
func (h *Human) Push(dir engine.Direction) {
	if !dir.Valid() {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.pending) >= humanBufferSize {
		h.pending = h.pending[1:]
	}
	h.pending = append(h.pending, dir)
}

// Clear drops all queued input.
func (h *Human) Clear() {
	h.mu.Lock()
	h.pending = nil
	h.mu.Unlock()
}

// Pending returns the number of queued directions.
func (h *Human) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Decide returns the oldest queued direction, if any.
func (h *Human) Decide(engine.Board, int) (engine.Direction, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.pending) == 0 {
		return 0, false
	}
	dir := h.pending[0]
	h.pending = h.pending[1:]
	return dir, true
}
