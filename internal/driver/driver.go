// Package driver runs the headless game loop: each tick asks an agent for a
// direction, applies it to the engine, spawns after a changed move and
// re-evaluates the status.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// EndReason says why Run stopped.
type EndReason string

const (
	ReasonNoMoves   EndReason = "no_moves"
	ReasonCancelled EndReason = "cancelled"
	ReasonTickLimit EndReason = "tick_limit"
	ReasonStalled   EndReason = "stalled"
)

// TickResult describes a single tick.
type TickResult struct {
	Tick      int
	Direction engine.Direction
	Idle      bool // agent chose no direction
	Outcome   engine.StepOutcome
	Score     int
}

// Result summarises a finished run.
type Result struct {
	FinalScore int
	MaxTile    int
	Moves      int
	Ticks      int
	Reason     EndReason
	Board      engine.Board
}

// Option configures a Runner.
type Option func(*Runner)

// WithMaxTicks stops Run after n ticks. Zero means no limit.
func WithMaxTicks(n int) Option {
	return func(r *Runner) { r.maxTicks = n }
}

// WithStallLimit stops Run after n consecutive ticks that did not change
// the board. Zero means no limit.
func WithStallLimit(n int) Option {
	return func(r *Runner) { r.stallLimit = n }
}

// WithDelay waits d between ticks.
func WithDelay(d time.Duration) Option {
	return func(r *Runner) { r.delay = d }
}

// WithObserver registers a callback invoked after every tick.
func WithObserver(fn func(TickResult)) Option {
	return func(r *Runner) { r.observer = fn }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runner owns an engine and an agent for the duration of a run.
// It is not safe for concurrent use.
type Runner struct {
	eng   *engine.Engine
	agent agent.Agent

	maxTicks   int
	stallLimit int
	delay      time.Duration
	observer   func(TickResult)
	logger     *log.Logger

	ticks  int
	stalls int
}

// NewRunner creates a runner for eng driven by ag.
func NewRunner(eng *engine.Engine, ag agent.Agent, opts ...Option) *Runner {
	r := &Runner{
		eng:    eng,
		agent:  ag,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tick performs one decide/apply/spawn/evaluate cycle.
// It returns engine.ErrSessionOver once the session is terminal.
func (r *Runner) Tick() (TickResult, error) {
	if r.eng.Status() == engine.StatusNoMovesAvailable {
		return TickResult{Tick: r.ticks}, engine.ErrSessionOver
	}

	r.ticks++
	snap := r.eng.Snapshot()
	res := TickResult{Tick: r.ticks, Score: snap.Score}

	dir, ok := r.agent.Decide(snap.Board, snap.Score)
	if !ok {
		res.Idle = true
		res.Outcome.Status = snap.Status
		r.stalls++
		r.notify(res)
		return res, nil
	}

	out, err := r.eng.Step(dir)
	if err != nil {
		return res, fmt.Errorf("driver: tick %d: %w", r.ticks, err)
	}

	res.Direction = dir
	res.Outcome = out
	res.Score = r.eng.Score()

	if out.Changed {
		r.stalls = 0
		r.logger.Debug("move", "tick", r.ticks, "dir", dir, "delta", out.ScoreDelta, "score", res.Score)
	} else {
		r.stalls++
	}

	r.notify(res)
	return res, nil
}

// Run ticks until the session ends, ctx is cancelled, or a configured
// limit is reached.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	reason, err := r.loop(ctx)
	if err != nil {
		return r.result(reason), err
	}

	res := r.result(reason)
	r.logger.Info("session ended",
		"agent", r.agent.Name(),
		"score", res.FinalScore,
		"max_tile", res.MaxTile,
		"moves", res.Moves,
		"reason", res.Reason,
	)
	return res, nil
}

func (r *Runner) loop(ctx context.Context) (EndReason, error) {
	for {
		if r.eng.Status() == engine.StatusNoMovesAvailable {
			return ReasonNoMoves, nil
		}
		if ctx.Err() != nil {
			return ReasonCancelled, nil
		}
		if r.maxTicks > 0 && r.ticks >= r.maxTicks {
			return ReasonTickLimit, nil
		}
		if r.stallLimit > 0 && r.stalls >= r.stallLimit {
			return ReasonStalled, nil
		}

		if _, err := r.Tick(); err != nil {
			if errors.Is(err, engine.ErrSessionOver) {
				return ReasonNoMoves, nil
			}
			return "", err
		}

		if r.delay > 0 {
			select {
			case <-ctx.Done():
				return ReasonCancelled, nil
			case <-time.After(r.delay):
			}
		}
	}
}

func (r *Runner) result(reason EndReason) Result {
	snap := r.eng.Snapshot()
	return Result{
		FinalScore: snap.Score,
		MaxTile:    snap.MaxTile,
		Moves:      snap.Moves,
		Ticks:      r.ticks,
		Reason:     reason,
		Board:      snap.Board,
	}
}

func (r *Runner) notify(res TickResult) {
	if r.observer != nil {
		r.observer(res)
	}
}
