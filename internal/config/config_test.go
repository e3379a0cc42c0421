package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BrickerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultBrickerConfig() {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultBrickerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultBrickerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultBrickerConfig()
	cfg.Board.Rows = 0
	cfg.Board.Cols = -1
	cfg.Physics.PuckSpeed = cfg.Physics.BallSpeed
	cfg.Gameplay.Lives = cfg.Gameplay.MaxLives + 1
	cfg.Difficulty.Scaling.SpeedMultiplier = -0.5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"board.rows", "board.cols", "physics.puck_speed", "gameplay.lives", "speed_multiplier"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricker.yaml")
	data := "board:\n  rows: 2\n  cols: 3\ngameplay:\n  reveal: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBricker(path)
	if err != nil {
		t.Fatalf("LoadBricker: %v", err)
	}
	if cfg.Board.Rows != 2 || cfg.Board.Cols != 3 {
		t.Errorf("board = %+v, expected 2x3", cfg.Board)
	}
	if !cfg.Gameplay.Reveal {
		t.Error("reveal should be set from file")
	}
	if cfg.Physics.BallSpeed != DefaultBrickerConfig().Physics.BallSpeed {
		t.Errorf("unset keys should keep defaults, ball_speed = %d", cfg.Physics.BallSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadBricker(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBricker(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestApplyBrickerPreset(t *testing.T) {
	cfg := DefaultBrickerConfig()
	ApplyBrickerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultBrickerConfig()
	ApplyBrickerPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Physics.BallSpeed != 400 {
		t.Errorf("hard preset: lives=%d ball=%d", cfg.Gameplay.Lives, cfg.Physics.BallSpeed)
	}
	if cfg.Physics.PuckSpeed <= cfg.Physics.BallSpeed {
		t.Errorf("puck speed %d must stay above ball speed %d", cfg.Physics.PuckSpeed, cfg.Physics.BallSpeed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	cfg = DefaultBrickerConfig()
	ApplyBrickerPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != cfg.Gameplay.MaxLives {
		t.Errorf("easy preset should start at max lives, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Difficulty.InitialLevel != 0.0 {
		t.Errorf("easy initial level = %v", cfg.Difficulty.InitialLevel)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
