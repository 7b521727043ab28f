package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-grow/internal/storage"
)

// maxRounds caps how many rounds the browser loads.
const maxRounds = 100

// RoundLogKeyMap defines the key bindings for the round log browser.
type RoundLogKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultRoundLogKeyMap returns default key bindings.
func DefaultRoundLogKeyMap() RoundLogKeyMap {
	return RoundLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundLogModel is the Bubble Tea model for browsing recorded rounds.
type RoundLogModel struct {
	title    string
	rounds   []storage.ScoreEntry
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     RoundLogKeyMap
	width    int
	height   int
	quitting bool
}

// NewRoundLogModel loads the best rounds of gameID from store.
func NewRoundLogModel(store *storage.Store, gameID, title string, width, height int) (RoundLogModel, error) {
	rounds, err := store.TopScores(gameID, maxRounds)
	if err != nil {
		return RoundLogModel{}, err
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return RoundLogModel{}, err
	}

	h := help.New()
	h.Width = width

	m := RoundLogModel{
		title:  title,
		rounds: rounds,
		stats:  stats,
		help:   h,
		keys:   DefaultRoundLogKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m, nil
}

// createTable creates a new table sized to the window.
func (m *RoundLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Round", Width: 7},
		{Title: "Date", Width: 14},
		{Title: "", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// updateTableRows fills the table from the loaded rounds.
func (m *RoundLogModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		mark := ""
		if r.NewHigh {
			mark = "new high"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Round),
			r.CreatedAt.Format("Jan 02 15:04"),
			mark,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the round log model.
func (m RoundLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the round log.
func (m RoundLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
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

// View renders the round log.
func (m RoundLogModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("BEST ROUNDS - %s", m.title)))
	b.WriteString("\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summaryStyle.Render(fmt.Sprintf("rounds %d  best %d  average %.1f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No rounds recorded yet.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunRoundLog shows the round log browser until the user quits.
func RunRoundLog(store *storage.Store, gameID, title string, width, height int) error {
	model, err := NewRoundLogModel(store, gameID, title, width, height)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
