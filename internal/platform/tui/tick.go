// Package tui provides the Bubble Tea front end for tui2048: the game
// screen, the scoreboard and the SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// decisionMsg carries an automated agent's choice back to Update.
type decisionMsg struct {
	generation int
	dir        engine.Direction
	ok         bool
}

// decideCmd runs ag on a board snapshot outside the Update goroutine.
func decideCmd(ag agent.Agent, snap engine.Snapshot, generation int) tea.Cmd {
	return func() tea.Msg {
		dir, ok := ag.Decide(snap.Board, snap.Score)
		return decisionMsg{generation: generation, dir: dir, ok: ok}
	}
}
