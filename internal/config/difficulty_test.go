package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Level(0, 0); got != 0.2 {
		t.Errorf("Level(0) = %v, expected 0.2", got)
	}
	if got := d.Level(50, 0); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Level(50) = %v, expected 0.6", got)
	}
	if got := d.Level(1000, 0); got != 1.0 {
		t.Errorf("Level past max = %v, expected 1.0", got)
	}
	if got := d.Speed(300, 1000, 0); got != 600 {
		t.Errorf("Speed at max = %v, expected 600", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0},
	})

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(1000, 1000); got != 0.5 {
		t.Errorf("Level = %v, expected initial level", got)
	}
	if got := d.Speed(100, 1000, 0); got != 200 {
		t.Errorf("Speed = %v, expected 200", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 0},
	})
	if got := d.Level(0, 5); got != 1.0 {
		t.Errorf("Level with zero max_at = %v, expected 1.0", got)
	}
}
