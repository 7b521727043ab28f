package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-grow/internal/platform/tui"
	"github.com/vovakirdan/tui-grow/internal/registry"
	"github.com/vovakirdan/tui-grow/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the round log for a game",
	Long: `Display the best rounds recorded in a database file.

Rounds are only kept when a file is passed with --db; the default
in-memory log is gone when the game exits.

Examples:
  grow scores --db ~/.grow/rounds.db
  grow scores --db ~/.grow/rounds.db --limit 25
  grow scores --db ~/.grow/rounds.db --browse
  grow scores --db ~/.grow/rounds.db --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds for the game")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the rounds in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if flagDBPath == "" || flagDBPath == storage.MemoryPath {
		fmt.Fprintln(os.Stderr, "Error: the round log is in memory; pass --db <file>")
		os.Exit(1)
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'grow list' to see available games.")
		os.Exit(1)
	}

	title, _ := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared all rounds for %s.\n", title)
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRoundLog(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Best Rounds - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'grow play %s --db %s' to record one.\n", gameID, flagDBPath)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "Rank", "Score", "Round", "Date", "")
	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "----", "-----", "-----", "----", "")
	for i, entry := range scores {
		mark := ""
		if entry.NewHigh {
			mark = "new high"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-16s  %s\n", i+1, entry.Score, entry.Round, dateStr, mark)
	}

	// Summary line
	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
