// Package grow implements an arcade growth game.
// The player is a square that absorbs smaller numbered balls to grow and
// dies on touching a bigger one. Gravity can be flipped at any time.
package grow

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
	"github.com/vovakirdan/tui-grow/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger receives round events; nil means discard
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger for games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts the simulation to the platform's Game interface.
type Game struct {
	sim     *Sim
	cfg     config.GrowConfig
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new grow game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "grow"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Grow"
}

// Reset initializes the game with a fresh simulation.
// The high score only lives as long as the simulation, so Reset clears it too;
// restarting after a game over goes through Step instead.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGrow(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("could not load config, using defaults", "error", err)
		}
		cfg = config.DefaultGrowConfig()
	}
	g.cfg = cfg
	g.paused = false
	g.sim = NewSim(cfg, runtime.Seed, WithLogger(logger))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Pause only applies to a running round
	if in.Has(core.ActionPause) && g.sim.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	intents := g.sim.Step(in, g.runtime.TickDelta())
	return core.StepResult{State: g.State(), Intents: intents}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	current, high := g.sim.Score()
	score := current
	if g.sim.State() == StatePlaying {
		score = g.sim.Weight()
	}
	return core.GameState{
		Score:     score,
		HighScore: high,
		GameOver:  g.sim.State() == StateGameOver,
		Paused:    g.paused,
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Register the game with the registry
func init() {
	registry.Register("grow", func() registry.Game {
		return New()
	})
}
