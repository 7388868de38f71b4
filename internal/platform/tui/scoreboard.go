package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Scoreboard layout constants
const (
	maxResults     = 100 // Max results to load per board size
	tableMinHeight = 5
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextSize key.Binding
	PrevSize key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSize, k.PrevSize, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextSize, k.PrevSize, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next size"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev size"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the results table.
type ScoreboardModel struct {
	sizes    []int // board sizes with tabs
	cursor   int   // index into sizes
	store    *storage.Store
	results  []storage.Result
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard opened on boardSize.
func NewScoreboardModel(store *storage.Store, boardSize, width, height int) ScoreboardModel {
	sizes := []int{boardSize}
	if store != nil {
		if recorded, err := store.BoardSizes(); err == nil {
			sizes = mergeSizes(recorded, boardSize)
		}
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		sizes:  sizes,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for i, s := range sizes {
		if s == boardSize {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.loadResults()
	return m
}

// mergeSizes returns recorded plus extra, sorted and de-duplicated.
func mergeSizes(recorded []int, extra int) []int {
	seen := map[int]bool{extra: true}
	out := []int{extra}
	for _, s := range recorded {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 7},
		{Title: "Moves", Width: 7},
		{Title: "Agent", Width: 11},
		{Title: "Date", Width: 13},
	}

	height := m.height - 10
	if height < tableMinHeight {
		height = tableMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadResults loads results and stats for the selected board size.
func (m *ScoreboardModel) loadResults() {
	m.results, m.stats, m.loadErr = nil, nil, nil

	if m.store != nil {
		size := m.sizes[m.cursor]
		m.results, m.loadErr = m.store.TopResults(size, maxResults)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(size)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			r.Agent,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSize):
			m.cursor = (m.cursor + 1) % len(m.sizes)
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.PrevSize):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.sizes) - 1
			}
			m.loadResults()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	if line := m.renderStats(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per board size.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.sizes))
	for i, s := range m.sizes {
		name := fmt.Sprintf("%dx%d", s, s)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderStats renders the aggregate line for the selected size.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("games %d  best %d  avg %.0f  best tile %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestTile)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(1, 2).
			Render(m.loadErr.Error())
	}
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No results recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// SelectedSize returns the board size whose results are shown.
func (m ScoreboardModel) SelectedSize() int {
	return m.sizes[m.cursor]
}

// Results returns the loaded results for the selected size.
func (m ScoreboardModel) Results() []storage.Result {
	return m.results
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, boardSize, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, boardSize, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
