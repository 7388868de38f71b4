package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

//go:embed defaults/tui2048.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when no file is found.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: engine.DefaultSize,
		},
		Game: GameConfig{
			Seed: 0,
		},
		Agent: AgentConfig{
			Name:    "human",
			Depth:   agent.DefaultDepth,
			DelayMs: 100,
		},
		UI: UIConfig{
			FPS: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.tui2048/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
