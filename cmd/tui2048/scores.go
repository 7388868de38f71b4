package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagScoresTUI   bool
	flagClearScores bool
	flagSessionID   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best results for a board size",
	Long: `Display the best recorded results for the selected board size.

Examples:
  tui2048 scores
  tui2048 scores --size 5 --limit 20
  tui2048 scores --tui
  tui2048 scores --size 3 --clear
  tui2048 scores --session 6f1c2d9e-...`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all results for the board size")
	scoresCmd.Flags().StringVar(&flagSessionID, "session", "", "Show the result recorded for one session id")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	size := cfg.Board.Size

	// Open results storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagSessionID != "" {
		return printSession(store, flagSessionID)
	}

	if flagClearScores {
		if err := store.ClearResults(size); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %dx%d.\n", size, size)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, size, width, height)
	}

	results, err := store.TopResults(size, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Printf("Best Results - %dx%d\n", size, size)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tui2048 play --size %d' to set the first one!\n", size)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Tile", "Moves", "Agent", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "----", "-----", "-----", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-10s  %s\n", i+1, r.Score, r.MaxTile, r.Moves, r.Agent, dateStr)
	}

	fmt.Println()
	stats, err := store.Stats(size)
	if err == nil {
		fmt.Printf("Games: %d  Avg: %.0f  Best tile: %d\n", stats.GamesCount, stats.AvgScore, stats.BestTile)
		fmt.Printf("Best: %d\n", stats.HighScore)
	}
	return nil
}

// printSession prints the single result recorded under id.
func printSession(store *storage.Store, id string) error {
	r, err := store.ResultBySession(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no result recorded for session %q", id)
	}

	fmt.Printf("Session %s\n", r.SessionID)
	fmt.Println()
	fmt.Printf("  Board:   %dx%d\n", r.BoardSize, r.BoardSize)
	fmt.Printf("  Agent:   %s\n", r.Agent)
	fmt.Printf("  Score:   %d\n", r.Score)
	fmt.Printf("  Tile:    %d\n", r.MaxTile)
	fmt.Printf("  Moves:   %d\n", r.Moves)
	fmt.Printf("  Ended:   %s\n", r.EndReason)
	fmt.Printf("  Date:    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
