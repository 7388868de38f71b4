package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that the other commands would use, after the
config file search and any flags are applied. The output is valid YAML and
can be saved as ~/.tui2048/config.yaml.

Examples:
  tui2048 config
  tui2048 config --size 5 --agent greedy > ~/.tui2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
