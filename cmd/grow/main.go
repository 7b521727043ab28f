// grow is a terminal arcade game: absorb smaller numbers, avoid bigger ones.
//
// Usage:
//
//	grow play [game]         - Play (default: grow)
//	grow list                - List available games
//	grow scores [game]       - Show the round log of a database file
//	grow config              - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set round log database (default: in memory)
//	--log <path>    - Write session logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-grow/internal/games/grow"
	"github.com/vovakirdan/tui-grow/internal/storage"
)

const defaultGame = "grow"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grow",
	Short: "Grow - absorb the small, dodge the big",
	Long: `Grow is a terminal arcade game. You are a square with a weight.
Numbered balls fly in from the edges of the arena: touch a lighter one to
absorb it and grow, touch a heavier one and the round is over.

Available commands:
  play     - Play a game (default when no command is given)
  list     - Show all available games
  scores   - View the round log of a database file
  config   - Print the default game config

Examples:
  grow
  grow play --seed 42
  grow play --db ~/.grow/rounds.db
  grow scores --db ~/.grow/rounds.db`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryPath, "Path to round log database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
