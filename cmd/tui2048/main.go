// tui2048 plays 2048 in the terminal, by hand or with an automated agent.
//
// Usage:
//
//	tui2048 play             - Play interactively (or watch an agent play)
//	tui2048 auto             - Run an automated agent headless
//	tui2048 serve            - Start SSH server for remote play
//	tui2048 scores           - Show the best results for a board size
//	tui2048 agents           - List available agents
//	tui2048 config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.tui2048, ./configs, embedded)
//	--size <n>        - Board size (default: 4)
//	--seed <value>    - RNG seed for reproducible games (0 = time based)
//	--agent <name>    - Move decider: human, random, greedy, expectimax
//	--db <path>       - Results database (default: ~/.tui2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is the 2048 sliding-tile game for the terminal.

Play it yourself, watch an agent play, run agents headless to compare
strategies, or host it over SSH.

Available commands:
  play     - Interactive game screen
  auto     - Headless automated games
  serve    - Start SSH server for remote play
  scores   - View best results
  agents   - List available agents
  config   - Print the effective configuration

Examples:
  tui2048 play
  tui2048 play --agent expectimax --depth 2
  tui2048 auto --agent greedy --games 20
  tui2048 serve --ssh :2222
  tui2048 scores --size 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	registerGlobalFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(configCmd)
}
