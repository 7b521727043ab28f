package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-grow/internal/audio"
	"github.com/vovakirdan/tui-grow/internal/core"
	"github.com/vovakirdan/tui-grow/internal/registry"
	"github.com/vovakirdan/tui-grow/internal/storage"
)

// footerRows is the number of screen rows taken by the help footer.
const footerRows = 1

// Options carries the optional collaborators of a game session.
type Options struct {
	Store  *storage.Store // Round log; nil disables recording
	Sound  audio.Player   // Sound output; nil means silent
	Logger *log.Logger    // Session events; nil means discard
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	round      int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, arenaHeight(cfg.ScreenH)),
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     opts.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
	}
}

// arenaHeight is the screen height left for the game after the footer.
func arenaHeight(h int) int {
	return core.Max(h-footerRows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session ended", "rounds", m.round)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The game maps its world onto whatever screen it is given, so a resize
// never resets the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, arenaHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	for _, intent := range result.Intents {
		m.present(intent)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// present carries out one intent raised by the game.
func (m *Model) present(intent core.Intent) {
	switch in := intent.(type) {
	case core.PlaySoundIntent:
		m.sound.Play(in.Kind)
	case core.ShowGameOverIntent:
		m.round++
		m.recordRound(in)
	case core.ShowWeightIntent:
		// Labels are drawn from game state on every frame
	}
}

// recordRound writes a finished round to the log. Failures only cost the record.
func (m *Model) recordRound(in core.ShowGameOverIntent) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.RoundResult{
		GameID:  m.game.ID(),
		Round:   m.round,
		Score:   in.Score,
		NewHigh: in.NewHighScore,
	})
	if err != nil {
		m.logger.Warn("could not record round", "round", m.round, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return renderFrame(m.screen, m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	defer model.sound.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
