// Package config provides YAML-based configuration loading and validation
// for tui2048.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Game    GameConfig    `yaml:"game"`
	Agent   AgentConfig   `yaml:"agent"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// GameConfig defines session parameters.
type GameConfig struct {
	Seed int64 `yaml:"seed"` // 0 = time based
}

// AgentConfig selects the move decider.
type AgentConfig struct {
	Name    string `yaml:"name"`
	Depth   int    `yaml:"depth"`    // expectimax search depth
	DelayMs int    `yaml:"delay_ms"` // pause between automated moves
}

// UIConfig defines terminal UI parameters.
type UIConfig struct {
	FPS int `yaml:"fps"`
}

// StorageConfig defines where finished results are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks the configuration for values the program cannot run with.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Size < engine.MinSize {
		errs = append(errs, fmt.Errorf("config: board.size %d (minimum %d): %w", c.Board.Size, engine.MinSize, engine.ErrInvalidConfiguration))
	}
	if !agent.Exists(c.Agent.Name) {
		errs = append(errs, fmt.Errorf("config: unknown agent %q", c.Agent.Name))
	}
	if c.Agent.Depth < 1 {
		errs = append(errs, fmt.Errorf("config: agent.depth %d must be at least 1", c.Agent.Depth))
	}
	if c.Agent.DelayMs < 0 {
		errs = append(errs, fmt.Errorf("config: agent.delay_ms %d is negative", c.Agent.DelayMs))
	}
	if c.UI.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: ui.fps %d must be positive", c.UI.FPS))
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("config: log.level %q: %w", c.Log.Level, err))
	}

	return errors.Join(errs...)
}

// Seed returns the configured seed, or a time-based one when unset.
func (c Config) Seed() int64 {
	if c.Game.Seed != 0 {
		return c.Game.Seed
	}
	return time.Now().UnixNano()
}

// Delay returns the pause between automated moves.
func (c Config) Delay() time.Duration {
	return time.Duration(c.Agent.DelayMs) * time.Millisecond
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
