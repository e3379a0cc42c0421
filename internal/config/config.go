// Package config provides YAML-based game configuration loading and
// difficulty management for bricker.
package config

import (
	"errors"
	"fmt"
)

// BrickerConfig contains all configuration for the bricker game.
type BrickerConfig struct {
	Board      BrickerBoard     `yaml:"board"`
	Physics    BrickerPhysics   `yaml:"physics"`
	Paddle     BrickerPaddle    `yaml:"paddle"`
	Gameplay   BrickerGameplay  `yaml:"gameplay"`
	Sound      BrickerSound     `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BrickerBoard defines the brick grid.
type BrickerBoard struct {
	Rows             int `yaml:"rows"`
	Cols             int `yaml:"cols"`
	BehaviorsAllowed int `yaml:"behaviors_allowed"` // Max strategies combined in one brick
}

// BrickerPhysics defines movement speeds in fixed-point (1000 = 1 cell per tick).
type BrickerPhysics struct {
	BallSpeed      int `yaml:"ball_speed"`
	PuckSpeed      int `yaml:"puck_speed"`
	PaddleSpeed    int `yaml:"paddle_speed"`
	HeartFallSpeed int `yaml:"heart_fall_speed"`
}

// BrickerPaddle defines paddle parameters.
type BrickerPaddle struct {
	Width           int `yaml:"width"`
	ExtraPaddleHits int `yaml:"extra_paddle_hits"` // Collisions an extra paddle absorbs before vanishing
}

// BrickerGameplay defines rules and scoring.
type BrickerGameplay struct {
	Lives       int  `yaml:"lives"`
	MaxLives    int  `yaml:"max_lives"`
	BrickPoints int  `yaml:"brick_points"`
	Reveal      bool `yaml:"reveal"` // Color bricks by strategy
}

// BrickerSound defines sound effect assets.
type BrickerSound struct {
	Enabled   bool   `yaml:"enabled"`
	Explosion string `yaml:"explosion"`
	Blop      string `yaml:"blop"`
}

// Validate reports every invalid field at once.
func (c BrickerConfig) Validate() error {
	var errs []error
	if c.Board.Rows <= 0 {
		errs = append(errs, fmt.Errorf("board.rows must be positive, got %d", c.Board.Rows))
	}
	if c.Board.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board.cols must be positive, got %d", c.Board.Cols))
	}
	if c.Board.BehaviorsAllowed < 1 {
		errs = append(errs, fmt.Errorf("board.behaviors_allowed must be at least 1, got %d", c.Board.BehaviorsAllowed))
	}
	if c.Physics.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.ball_speed must be positive, got %d", c.Physics.BallSpeed))
	}
	if c.Physics.PuckSpeed <= c.Physics.BallSpeed {
		errs = append(errs, fmt.Errorf("physics.puck_speed (%d) must be greater than physics.ball_speed (%d)",
			c.Physics.PuckSpeed, c.Physics.BallSpeed))
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative, got %g",
			c.Difficulty.Scaling.SpeedMultiplier))
	}
	if c.Physics.PaddleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.paddle_speed must be positive, got %d", c.Physics.PaddleSpeed))
	}
	if c.Physics.HeartFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.heart_fall_speed must be positive, got %d", c.Physics.HeartFallSpeed))
	}
	if c.Paddle.Width <= 0 {
		errs = append(errs, fmt.Errorf("paddle.width must be positive, got %d", c.Paddle.Width))
	}
	if c.Paddle.ExtraPaddleHits <= 0 {
		errs = append(errs, fmt.Errorf("paddle.extra_paddle_hits must be positive, got %d", c.Paddle.ExtraPaddleHits))
	}
	if c.Gameplay.Lives < 1 || c.Gameplay.Lives > c.Gameplay.MaxLives {
		errs = append(errs, fmt.Errorf("gameplay.lives must be in [1, max_lives=%d], got %d",
			c.Gameplay.MaxLives, c.Gameplay.Lives))
	}
	if c.Gameplay.BrickPoints < 0 {
		errs = append(errs, fmt.Errorf("gameplay.brick_points must not be negative, got %d", c.Gameplay.BrickPoints))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
