package config

import (
	_ "embed"
)

//go:embed defaults/bricker.yaml
var defaultBrickerYAML []byte

// DefaultBrickerConfig returns the default bricker configuration.
func DefaultBrickerConfig() BrickerConfig {
	return BrickerConfig{
		Board: BrickerBoard{
			Rows:             5,
			Cols:             8,
			BehaviorsAllowed: 2,
		},
		Physics: BrickerPhysics{
			BallSpeed:      300, // 0.3 cells per tick
			PuckSpeed:      450, // pucks always outrun the ball
			PaddleSpeed:    500,
			HeartFallSpeed: 150,
		},
		Paddle: BrickerPaddle{
			Width:           8,
			ExtraPaddleHits: 4,
		},
		Gameplay: BrickerGameplay{
			Lives:       3,
			MaxLives:    4,
			BrickPoints: 10,
		},
		Sound: BrickerSound{
			Enabled:   true,
			Explosion: "assets/explosion.wav",
			Blop:      "assets/blop.wav",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBrickerYAML
}
