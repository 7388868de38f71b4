package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, opts GameOptions) Model {
	t.Helper()
	if opts.Size == 0 {
		opts.Size = 4
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

// withDeadBoard swaps in an engine whose board has no moves left.
func withDeadBoard(t *testing.T, m Model, score int) Model {
	t.Helper()
	b, err := engine.BoardFromRows([][]int{
		{2, 4},
		{4, 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	eng, err := engine.NewWithBoard(b, score, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	m.eng = eng
	return m
}

func TestNewModelRejectsBadSize(t *testing.T) {
	if _, err := NewModel(GameOptions{Size: 1}); err == nil {
		t.Error("NewModel() with size 1 should fail")
	}
}

func TestNewModelDefaultsToHuman(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	if m.human == nil {
		t.Fatal("default agent should be interactive")
	}
	if got := m.Snapshot().Board.Sum(); got < 4 {
		t.Errorf("new session sum = %d, want two spawned tiles", got)
	}
}

func TestHumanKeysQueueUntilTick(t *testing.T) {
	h := agent.NewHuman()
	m := newTestModel(t, GameOptions{Agent: h})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	next, _ = m.Update(runeKey('w'))
	m = next.(Model)

	if h.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", h.Pending())
	}

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if h.Pending() != 1 {
		t.Errorf("pending after one tick = %d, want 1", h.Pending())
	}
}

func TestDirectionKeysIgnoredForAutomatedAgent(t *testing.T) {
	m := newTestModel(t, GameOptions{Agent: agent.NewGreedy()})
	before := m.Snapshot()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)

	if !before.Board.Equal(m.Snapshot().Board) {
		t.Error("arrow keys should not move the board for an automated agent")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, GameOptions{})

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if !m.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestAutomatedAgentDecidesOffTick(t *testing.T) {
	m := newTestModel(t, GameOptions{Agent: agent.NewGreedy()})

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if !m.thinking {
		t.Fatal("tick should start a decision")
	}
	if cmd == nil {
		t.Fatal("tick should return commands")
	}

	// A second tick while thinking must not start another decision.
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)

	decision := decideCmd(m.agent, m.eng.Snapshot(), m.generation)().(decisionMsg)
	if !decision.ok {
		t.Fatal("greedy should find a move on a fresh board")
	}

	next, _ = m.Update(decision)
	m = next.(Model)
	if m.thinking {
		t.Error("decision should clear thinking")
	}
	if m.Snapshot().Moves != 1 {
		t.Errorf("moves = %d, want 1", m.Snapshot().Moves)
	}
}

func TestStaleDecisionIgnoredAfterRestart(t *testing.T) {
	m := newTestModel(t, GameOptions{Agent: agent.NewGreedy()})

	stale := decideCmd(m.agent, m.eng.Snapshot(), m.generation)().(decisionMsg)

	next, _ := m.Update(runeKey('r'))
	m = next.(Model)
	next, _ = m.Update(stale)
	m = next.(Model)

	if m.Snapshot().Moves != 0 {
		t.Errorf("stale decision applied: moves = %d", m.Snapshot().Moves)
	}
}

// startsDecision reports whether a tick command launched an agent decision
// alongside the next tick.
func startsDecision(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		t.Fatal("tick should return a command")
	}
	_, ok := cmd().(tea.BatchMsg)
	return ok
}

func TestRestartWaitsForInFlightDecision(t *testing.T) {
	ag := agent.NewRandom(rand.New(rand.NewSource(3)))
	m := newTestModel(t, GameOptions{Agent: ag, FPS: 1000})

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if !startsDecision(t, cmd) {
		t.Fatal("first tick should start a decision")
	}
	inFlight := decideCmd(m.agent, m.eng.Snapshot(), m.generation)

	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	if !m.thinking {
		t.Fatal("restart must not release a decision that is still running")
	}

	next, cmd = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if startsDecision(t, cmd) {
		t.Fatal("tick after restart started a second decision on the same agent")
	}

	next, _ = m.Update(inFlight())
	m = next.(Model)
	if m.thinking {
		t.Error("stale decision should free the agent")
	}
	if m.Snapshot().Moves != 0 {
		t.Errorf("stale decision applied: moves = %d", m.Snapshot().Moves)
	}

	next, cmd = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if !startsDecision(t, cmd) {
		t.Error("tick after the stale decision should start a new one")
	}
	if !m.thinking {
		t.Error("new decision should mark the agent busy")
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, GameOptions{Agent: agent.NewHuman(), Store: store})
	m = withDeadBoard(t, m, 128)

	for i := 0; i < 3; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	results, err := store.TopResults(2, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d saved results, want 1", len(results))
	}
	if results[0].Score != 128 || results[0].Agent != "human" || results[0].SessionID != m.SessionID() {
		t.Errorf("saved %+v", results[0])
	}
	if results[0].EndReason != string(engine.StatusNoMovesAvailable) {
		t.Errorf("end reason = %q", results[0].EndReason)
	}

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should announce game over")
	}
}

func TestRestartStartsNewSession(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	m = withDeadBoard(t, m, 64)
	oldID := m.SessionID()

	next, _ := m.Update(runeKey('r'))
	m = next.(Model)

	snap := m.Snapshot()
	if snap.Status != engine.StatusOngoing || snap.Score != 0 {
		t.Errorf("after restart status=%s score=%d", snap.Status, snap.Score)
	}
	if m.SessionID() == oldID {
		t.Error("restart should issue a new session id")
	}
	if m.saved {
		t.Error("restart should clear the saved flag")
	}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want engine.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, engine.DirUp},
		{"wasd s", runeKey('s'), engine.DirDown},
		{"vim h", runeKey('h'), engine.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, engine.DirRight},
		{"wasd a", runeKey('a'), engine.DirLeft},
		{"vim k", runeKey('k'), engine.DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Direction(tt.msg)
			if !ok || got != tt.want {
				t.Errorf("Direction() = %s, %v; want %s", got, ok, tt.want)
			}
		})
	}

	if _, ok := km.Direction(runeKey('x')); ok {
		t.Error("x should not map to a direction")
	}
}

func TestScoreboardTabsAcrossSizes(t *testing.T) {
	store := openStore(t)
	for _, size := range []int{3, 5} {
		if _, err := store.SaveResult(storage.Result{BoardSize: size, Agent: "random", Score: size * 100, EndReason: "no_moves"}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 4, 100, 40)
	if m.SelectedSize() != 4 {
		t.Fatalf("selected = %d, want 4", m.SelectedSize())
	}
	if len(m.Results()) != 0 {
		t.Errorf("size 4 should have no results")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.SelectedSize() != 5 || len(m.Results()) != 1 {
		t.Errorf("after tab: size %d with %d results", m.SelectedSize(), len(m.Results()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.SelectedSize() != 3 {
		t.Errorf("after two shift+tab: size %d, want 3", m.SelectedSize())
	}
	if !strings.Contains(m.View(), "3x3") {
		t.Error("View() should show the size tab")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 4, 80, 24)
	if !strings.Contains(m.View(), "No results recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}
