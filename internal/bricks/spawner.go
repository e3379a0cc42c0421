package bricks

import "github.com/vovakirdan/bricker/internal/core"

// Spawner creates the derived entities strategies ask for.
// The spawned entities own their own lifecycles.
type Spawner interface {
	// SpawnPuck adds a small auxiliary ball that never costs a life.
	SpawnPuck(center, velocity core.Vec)
	// SpawnExtraPaddle adds a player-controlled paddle centered at center.
	// The paddle must call Counters.ExtraPaddles.Release when it expires.
	SpawnExtraPaddle(center core.Vec)
	// SpawnHeart adds a falling life pickup centered at center.
	SpawnHeart(center core.Vec)
}

// Sound is a playable effect.
type Sound interface {
	Play()
}

// Sounds resolves sound effects by asset path.
type Sounds interface {
	Sound(path string) Sound
}

type silence struct{}

func (silence) Play() {}

// Silent is a Sounds implementation that never makes a noise.
type Silent struct{}

// Sound implements Sounds.
func (Silent) Sound(string) Sound { return silence{} }
