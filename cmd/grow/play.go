package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-grow/internal/audio"
	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
	"github.com/vovakirdan/tui-grow/internal/games/grow"
	"github.com/vovakirdan/tui-grow/internal/platform/tui"
	"github.com/vovakirdan/tui-grow/internal/registry"
	"github.com/vovakirdan/tui-grow/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: grow).

Controls:
  A/Left     - Push left
  D/Right    - Push right
  Space      - Flip gravity
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  grow play
  grow play --seed 42
  grow play --mute
  grow play --config ./my-grow.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'grow list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure games before creation
	grow.SetConfigPath(flagConfig)
	grow.SetLogger(logger)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open the round log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round log", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Sound:  openSound(logger),
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openSound picks the sound output from the game config and the --mute flag.
func openSound(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.Nop{}
	}
	cfg, err := config.LoadGrow(flagConfig)
	if err != nil {
		cfg = config.DefaultGrowConfig()
	}
	return audio.New(cfg.Sound, logger)
}

// openLogger returns a logger writing to path, or a discarding one when
// path is empty. Bubble Tea owns the terminal, so logs never go to stderr.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "grow",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
