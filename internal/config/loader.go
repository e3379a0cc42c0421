package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const brickerFile = "bricker.yaml"

// LoadBricker loads bricker configuration.
// Search order: customPath -> ~/.bricker/configs/bricker.yaml -> ./configs/bricker.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadBricker(customPath string) (BrickerConfig, error) {
	cfg := DefaultBrickerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(brickerFile); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", brickerFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	var embedded BrickerConfig
	if err := yaml.Unmarshal(defaultBrickerYAML, &embedded); err != nil {
		return DefaultBrickerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

func tryFile(path string) (BrickerConfig, bool) {
	cfg := DefaultBrickerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricker", "configs", filename)
}

// ApplyBrickerPreset modifies the config based on a difficulty preset.
func ApplyBrickerPreset(cfg *BrickerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = cfg.Gameplay.MaxLives
		cfg.Paddle.Width = 10
		cfg.Physics.BallSpeed = 250
	case DifficultyHard:
		cfg.Gameplay.Lives = min(2, cfg.Gameplay.MaxLives)
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 400
	}
	if cfg.Physics.PuckSpeed <= cfg.Physics.BallSpeed {
		cfg.Physics.PuckSpeed = cfg.Physics.BallSpeed * 3 / 2
	}
}
