package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/tui2048.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.tui2048/config.yaml -> ./configs/tui2048.yaml -> embedded default.
// Keys missing from a file keep their default values. Only a customPath
// that cannot be read or parsed is an error; other candidates are skipped.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", filename)
}

// Overrides carries command-line values. Nil fields leave the loaded
// value untouched.
type Overrides struct {
	Size     *int
	Seed     *int64
	Agent    *string
	Depth    *int
	DelayMs  *int
	FPS      *int
	DBPath   *string
	LogLevel *string
}

// Apply copies every set override into c.
func (c *Config) Apply(o Overrides) {
	if o.Size != nil {
		c.Board.Size = *o.Size
	}
	if o.Seed != nil {
		c.Game.Seed = *o.Seed
	}
	if o.Agent != nil {
		c.Agent.Name = *o.Agent
	}
	if o.Depth != nil {
		c.Agent.Depth = *o.Depth
	}
	if o.DelayMs != nil {
		c.Agent.DelayMs = *o.DelayMs
	}
	if o.FPS != nil {
		c.UI.FPS = *o.FPS
	}
	if o.DBPath != nil {
		c.Storage.DBPath = *o.DBPath
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
}
