package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/driver"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/render"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagGames      int
	flagMaxTicks   int
	flagStallLimit int
	flagWatch      bool
	flagNoSave     bool
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Run an automated agent headless",
	Long: `Play one or more games with an automated agent and no UI.

Each game prints its final board, score and why it ended. With --games
greater than one a summary follows. Results go to the results database
unless --no-save is given.

Examples:
  tui2048 auto --agent greedy
  tui2048 auto --agent expectimax --depth 2 --games 10
  tui2048 auto --agent random --size 3 --seed 7 --watch`,
	Args: cobra.NoArgs,
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop a game after this many ticks (0 = no limit)")
	autoCmd.Flags().IntVar(&flagStallLimit, "stall-limit", 1000, "Stop a game after this many ticks without a change (0 = no limit)")
	autoCmd.Flags().BoolVar(&flagWatch, "watch", false, "Print the board after every move, pausing --delay-ms")
	autoCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
}

func runAuto(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if info, _ := agent.Lookup(cfg.Agent.Name); info.Interactive {
		if cmd.Flags().Changed("agent") {
			return fmt.Errorf("auto needs an automated agent, %q reads the keyboard", cfg.Agent.Name)
		}
		cfg.Agent.Name = "expectimax"
	}
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1")
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed()
	var results []driver.Result
	for i := 0; i < flagGames; i++ {
		res, err := playHeadless(ctx, cfg, seed+int64(i)*2, logger)
		if err != nil {
			return err
		}
		results = append(results, res)

		fmt.Printf("game %d/%d  %s  reason %s\n", i+1, flagGames, render.Summary(res.FinalScore, res.MaxTile, res.Moves), res.Reason)
		if flagGames == 1 || flagWatch {
			fmt.Println(render.Plain(res.Board))
		}

		if store != nil && res.Moves > 0 {
			sessionID := storage.NewSessionID()
			if _, err := store.SaveResult(storage.Result{
				SessionID: sessionID,
				BoardSize: cfg.Board.Size,
				Agent:     cfg.Agent.Name,
				Score:     res.FinalScore,
				MaxTile:   res.MaxTile,
				Moves:     res.Moves,
				EndReason: string(res.Reason),
			}); err != nil {
				logger.Warn("could not save result", "error", err)
			} else {
				fmt.Printf("saved as session %s\n", sessionID)
			}
		}

		if res.Reason == driver.ReasonCancelled {
			break
		}
	}

	if len(results) > 1 {
		printSummary(results)
	}
	return nil
}

// playHeadless runs one game to completion with the configured agent.
func playHeadless(ctx context.Context, cfg config.Config, seed int64, logger *log.Logger) (driver.Result, error) {
	eng, err := engine.New(cfg.Board.Size, rand.New(rand.NewSource(seed)))
	if err != nil {
		return driver.Result{}, err
	}
	ag, err := newAgent(cfg, seed+1)
	if err != nil {
		return driver.Result{}, err
	}

	opts := []driver.Option{
		driver.WithLogger(logger),
		driver.WithMaxTicks(flagMaxTicks),
		driver.WithStallLimit(flagStallLimit),
	}
	if flagWatch {
		opts = append(opts,
			driver.WithDelay(cfg.Delay()),
			driver.WithObserver(func(tr driver.TickResult) {
				if !tr.Outcome.Changed {
					return
				}
				fmt.Printf("\n%s  score %d\n%s\n", tr.Direction, tr.Score, render.Plain(eng.Snapshot().Board))
			}),
		)
	}

	return driver.NewRunner(eng, ag, opts...).Run(ctx)
}

// printSummary prints aggregate statistics over several games.
func printSummary(results []driver.Result) {
	total, best := 0, 0
	tiles := make(map[int]int)
	for _, r := range results {
		total += r.FinalScore
		if r.FinalScore > best {
			best = r.FinalScore
		}
		tiles[r.MaxTile]++
	}

	fmt.Println()
	fmt.Printf("games %d  avg score %.1f  best score %d\n", len(results), float64(total)/float64(len(results)), best)

	keys := make([]int, 0, len(tiles))
	for tile := range tiles {
		keys = append(keys, tile)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	fmt.Println("max tile reached:")
	for _, tile := range keys {
		fmt.Printf("  %6d  %3d  (%.0f%%)\n", tile, tiles[tile], 100*float64(tiles[tile])/float64(len(results)))
	}
}
