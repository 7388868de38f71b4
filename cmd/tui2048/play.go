package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start the interactive game screen.

With the default human agent you move the tiles yourself. Any other agent
plays on its own while you watch.

Controls:
  Arrows/WASD/hjkl  - Move
  R                 - Restart
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  tui2048 play
  tui2048 play --size 5
  tui2048 play --agent expectimax --delay-ms 50
  tui2048 play --seed 42 --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := cfg.Seed()
	ag, err := newAgent(cfg, seed+1)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "size", cfg.Board.Size, "agent", ag.Name(), "seed", seed)

	return tui.Run(tui.GameOptions{
		Size:   cfg.Board.Size,
		Seed:   seed,
		FPS:    cfg.UI.FPS,
		Delay:  cfg.Delay(),
		Agent:  ag,
		Store:  store,
		Width:  width,
		Height: height,
	})
}
