package bricks

import (
	"math"

	"github.com/vovakirdan/bricker/internal/core"
)

// puckCount is how many pucks one tile releases.
const puckCount = 2

// Pucks removes the tile and releases two fast auxiliary balls at the impact
// point, each heading in an independent random direction.
type Pucks struct {
	env *Env
}

// NewPucks returns a Pucks strategy bound to env.
func NewPucks(env *Env) *Pucks {
	return &Pucks{env: env}
}

// Execute implements Strategy.
func (s *Pucks) Execute(self, other Entity) {
	tile := s.env.removeTile(self)
	if tile == nil {
		return
	}

	at := tile.Center()
	if other != nil {
		at = other.Center()
	}
	for i := 0; i < puckCount; i++ {
		angle := s.env.Rand.Float64() * math.Pi
		v := core.FromAngle(angle, s.env.PuckSpeed)
		s.env.Spawner.SpawnPuck(at, v)
		s.env.Log.Debug("puck spawned", "x", at.X, "y", at.Y, "angle", angle)
	}
}

// Kind implements Strategy.
func (s *Pucks) Kind() Kind { return KindPucks }
