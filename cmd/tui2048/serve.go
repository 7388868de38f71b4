package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own board and agent built from the current
settings. Results are stored per-server (all users share the same ledger).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tui2048/host_key

Examples:
  tui2048 serve                           # Listen on :23235 with auto-generated key
  tui2048 serve --ssh :2222               # Listen on port 2222
  tui2048 serve --host-key ./my_host_key  # Use specific host key
  tui2048 serve --agent expectimax        # Every visitor watches the solver

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		BoardSize:   cfg.Board.Size,
		FPS:         cfg.UI.FPS,
		AgentName:   cfg.Agent.Name,
		Depth:       cfg.Agent.Depth,
		Delay:       cfg.Delay(),
	}

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting 2048 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
