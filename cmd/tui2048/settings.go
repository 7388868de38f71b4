package main

import (
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSize     int
	flagSeed     int64
	flagAgent    string
	flagDepth    int
	flagDelayMs  int
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func registerGlobalFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&flagConfig, "config", "", "Path to config YAML")
	f.IntVar(&flagSize, "size", 4, "Board size (NxN, at least 2)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagAgent, "agent", "human", "Agent: human, random, greedy, expectimax")
	f.IntVar(&flagDepth, "depth", agent.DefaultDepth, "Expectimax search depth")
	f.IntVar(&flagDelayMs, "delay-ms", 100, "Pause between automated moves in milliseconds")
	f.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	f.StringVar(&flagDBPath, "db", "~/.tui2048/scores.db", "Path to results database")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// loadSettings loads the config file, applies flags the user set
// explicitly, validates the result and builds the logger.
func loadSettings(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	var o config.Overrides
	if flags.Changed("size") {
		o.Size = &flagSize
	}
	if flags.Changed("seed") {
		o.Seed = &flagSeed
	}
	if flags.Changed("agent") {
		o.Agent = &flagAgent
	}
	if flags.Changed("depth") {
		o.Depth = &flagDepth
	}
	if flags.Changed("delay-ms") {
		o.DelayMs = &flagDelayMs
	}
	if flags.Changed("fps") {
		o.FPS = &flagFPS
	}
	if flags.Changed("db") {
		o.DBPath = &flagDBPath
	}
	if flags.Changed("log-level") {
		o.LogLevel = &flagLogLevel
	}
	cfg.Apply(o)

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tui2048",
		Level:           cfg.LogLevel(),
	})
	return cfg, logger, nil
}

// newAgent creates the configured agent with its own random source.
func newAgent(cfg config.Config, seed int64) (agent.Agent, error) {
	return agent.Create(cfg.Agent.Name, agent.Options{
		Rng:   rand.New(rand.NewSource(seed)),
		Depth: cfg.Agent.Depth,
	})
}
