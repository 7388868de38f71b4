package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/render"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// GameOptions configures a game screen.
type GameOptions struct {
	Size   int
	Seed   int64
	FPS    int
	Delay  time.Duration // pause between automated moves
	Agent  agent.Agent
	Store  *storage.Store // nil disables result saving
	Width  int
	Height int
}

// Model is the Bubble Tea model for one 2048 session.
// It is the single owner of its engine; automated agents decide on
// snapshots in a tea.Cmd and report back via decisionMsg.
type Model struct {
	eng   *engine.Engine
	agent agent.Agent
	human *agent.Human // set when agent is interactive
	store *storage.Store

	keys KeyMap
	help help.Model

	fps   int
	delay time.Duration

	sessionID  string
	generation int // bumped on restart to drop stale decisions
	thinking   bool
	lastMove   time.Time
	best       int
	saved      bool
	saveErr    error

	width    int
	height   int
	quitting bool
}

// NewModel creates a game screen. The engine is built from opts.Size and
// opts.Seed.
func NewModel(opts GameOptions) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Agent == nil {
		opts.Agent = agent.NewHuman()
	}

	eng, err := engine.New(opts.Size, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	m := Model{
		eng:       eng,
		agent:     opts.Agent,
		store:     opts.Store,
		keys:      DefaultKeyMap(),
		help:      h,
		fps:       opts.FPS,
		delay:     opts.Delay,
		sessionID: storage.NewSessionID(),
		width:     opts.Width,
		height:    opts.Height,
	}
	if hu, ok := opts.Agent.(*agent.Human); ok {
		m.human = hu
	}

	if m.store != nil {
		if best, err := m.store.HighScore(opts.Size); err == nil {
			m.best = best
		}
	}

	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case decisionMsg:
		return m.handleDecision(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok && m.human != nil {
		m.human.Push(dir)
	}
	return m, nil
}

// handleTick runs one driver tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.fps)

	if m.eng.Status() == engine.StatusNoMovesAvailable {
		m.saveResult()
		return m, next
	}

	if m.human != nil {
		snap := m.eng.Snapshot()
		if dir, ok := m.human.Decide(snap.Board, snap.Score); ok {
			m.step(dir)
		}
		return m, next
	}

	if m.thinking || time.Since(m.lastMove) < m.delay {
		return m, next
	}
	m.thinking = true
	return m, tea.Batch(next, decideCmd(m.agent, m.eng.Snapshot(), m.generation))
}

// handleDecision applies an automated agent's move.
// A stale decision still frees the agent for the next tick.
func (m Model) handleDecision(msg decisionMsg) (tea.Model, tea.Cmd) {
	m.thinking = false
	if msg.generation != m.generation {
		return m, nil
	}
	m.lastMove = time.Now()

	if msg.ok && m.eng.Status() == engine.StatusOngoing {
		m.step(msg.dir)
	}
	return m, nil
}

// step applies dir and records the result if the session just ended.
func (m *Model) step(dir engine.Direction) {
	out, err := m.eng.Step(dir)
	if err != nil {
		return
	}
	if m.eng.Score() > m.best {
		m.best = m.eng.Score()
	}
	if out.Status == engine.StatusNoMovesAvailable {
		m.saveResult()
	}
}

// saveResult records the finished session once.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	if m.store == nil || m.eng.Score() == 0 {
		return
	}

	snap := m.eng.Snapshot()
	_, m.saveErr = m.store.SaveResult(storage.Result{
		SessionID: m.sessionID,
		BoardSize: snap.Size,
		Agent:     m.agent.Name(),
		Score:     snap.Score,
		MaxTile:   snap.MaxTile,
		Moves:     snap.Moves,
		EndReason: string(snap.Status),
	})
}

// restart begins a new session on the same engine.
func (m *Model) restart() {
	m.eng.Restart()
	m.sessionID = storage.NewSessionID()
	m.generation++
	m.saved = false
	m.saveErr = nil
	if m.human != nil {
		m.human.Clear()
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.eng.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString(infoStyle.Render(fmt.Sprintf("  %dx%d  agent: %s", snap.Size, snap.Size, m.agent.Name())))
	b.WriteString("\n\n")
	b.WriteString(render.HUD(snap.Score, m.best, snap.Status))
	b.WriteString("\n\n")
	b.WriteString(render.Board(snap.Board))
	b.WriteString("\n")

	if snap.Status == engine.StatusNoMovesAvailable {
		b.WriteString(infoStyle.Render("Press r to restart"))
		b.WriteString("\n")
	}
	if m.saveErr != nil {
		b.WriteString(errStyle.Render(m.saveErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(infoStyle.Render(m.help.View(m.keys)))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Snapshot returns a copy of the current session state.
func (m Model) Snapshot() engine.Snapshot {
	return m.eng.Snapshot()
}

// SessionID returns the ledger id of the current session.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run starts the Bubble Tea program for a single game screen.
func Run(opts GameOptions) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
