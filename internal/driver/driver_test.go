package driver

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

func newEngine(t *testing.T, rows [][]int) *engine.Engine {
	t.Helper()
	b, err := engine.BoardFromRows(rows)
	require.NoError(t, err)
	e, err := engine.NewWithBoard(b, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return e
}

func tiles(b engine.Board) int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestTickMergesAndSpawns(t *testing.T) {
	e := newEngine(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	r := NewRunner(e, agent.NewScripted(engine.DirLeft))

	res, err := r.Tick()
	require.NoError(t, err)
	assert.False(t, res.Idle)
	assert.Equal(t, engine.DirLeft, res.Direction)
	assert.True(t, res.Outcome.Changed)
	assert.True(t, res.Outcome.Spawned)
	assert.Equal(t, 4, res.Outcome.ScoreDelta)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 2, tiles(e.Snapshot().Board))
}

func TestTickNoOpDoesNotSpawn(t *testing.T) {
	e := newEngine(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := e.Snapshot().Board
	r := NewRunner(e, agent.NewScripted(engine.DirLeft))

	res, err := r.Tick()
	require.NoError(t, err)
	assert.False(t, res.Outcome.Changed)
	assert.False(t, res.Outcome.Spawned)
	assert.True(t, before.Equal(e.Snapshot().Board))
	assert.Equal(t, 0, e.Moves())
}

func TestTickIdleAgent(t *testing.T) {
	e, err := engine.New(4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	before := e.Snapshot()

	r := NewRunner(e, agent.NewHuman())
	res, err := r.Tick()
	require.NoError(t, err)
	assert.True(t, res.Idle)
	assert.Equal(t, engine.StatusOngoing, res.Outcome.Status)
	assert.True(t, before.Board.Equal(e.Snapshot().Board))
}

func TestTickOnDeadBoard(t *testing.T) {
	e := newEngine(t, [][]int{
		{2, 4},
		{4, 2},
	})
	r := NewRunner(e, agent.NewScripted(engine.DirLeft))

	_, err := r.Tick()
	require.ErrorIs(t, err, engine.ErrSessionOver)
	assert.Equal(t, 0, r.ticks)
}

func TestRunEndReasons(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		agent     func() agent.Agent
		opts      []Option
		cancel    bool
		want      EndReason
		wantTicks int
	}{
		{
			name:  "plays to the end",
			size:  2,
			agent: func() agent.Agent { return agent.NewGreedy() },
			want:  ReasonNoMoves,
		},
		{
			name:      "tick limit",
			size:      4,
			agent:     func() agent.Agent { return agent.NewGreedy() },
			opts:      []Option{WithMaxTicks(5)},
			want:      ReasonTickLimit,
			wantTicks: 5,
		},
		{
			name:      "stalls on idle agent",
			size:      4,
			agent:     func() agent.Agent { return agent.NewHuman() },
			opts:      []Option{WithStallLimit(3)},
			want:      ReasonStalled,
			wantTicks: 3,
		},
		{
			name:      "cancelled context",
			size:      4,
			agent:     func() agent.Agent { return agent.NewGreedy() },
			cancel:    true,
			want:      ReasonCancelled,
			wantTicks: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := engine.New(tt.size, rand.New(rand.NewSource(42)))
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			res, err := NewRunner(e, tt.agent(), tt.opts...).Run(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Reason)
			if tt.wantTicks > 0 || tt.cancel {
				assert.Equal(t, tt.wantTicks, res.Ticks)
			}
			assert.Equal(t, e.Score(), res.FinalScore)
			assert.Equal(t, e.Snapshot().MaxTile, res.MaxTile)
		})
	}
}

func TestRunObserverSeesEveryTick(t *testing.T) {
	e, err := engine.New(3, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	var seen []TickResult
	r := NewRunner(e, agent.NewRandom(rand.New(rand.NewSource(5))),
		WithMaxTicks(500),
		WithObserver(func(tr TickResult) { seen = append(seen, tr) }),
	)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, seen, res.Ticks)

	total := 0
	changed := 0
	for i, tr := range seen {
		assert.Equal(t, i+1, tr.Tick)
		total += tr.Outcome.ScoreDelta
		if tr.Outcome.Changed {
			changed++
		}
	}
	assert.Equal(t, res.FinalScore, total, "score must equal the sum of merge deltas")
	assert.Equal(t, res.Moves, changed)
}

func TestRunSumNeverDecreases(t *testing.T) {
	e, err := engine.New(4, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	prev := e.Snapshot().Board.Sum()
	r := NewRunner(e, agent.NewGreedy(), WithObserver(func(tr TickResult) {
		sum := e.Snapshot().Board.Sum()
		require.GreaterOrEqual(t, sum, prev)
		if tr.Outcome.Spawned {
			require.Greater(t, sum, prev)
		}
		prev = sum
	}))

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonNoMoves, res.Reason)
	assert.Equal(t, engine.StatusNoMovesAvailable, e.Status())
}

func TestRunDelayHonoursCancel(t *testing.T) {
	e, err := engine.New(4, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRunner(e, agent.NewGreedy(),
		WithDelay(time.Hour),
		WithObserver(func(TickResult) { cancel() }),
	)

	done := make(chan Result, 1)
	go func() {
		res, _ := r.Run(ctx)
		done <- res
	}()

	select {
	case res := <-done:
		assert.Equal(t, ReasonCancelled, res.Reason)
		assert.Equal(t, 1, res.Ticks)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}
