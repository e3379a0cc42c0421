package bricks

// ExtraPaddle removes the tile and, when no extra paddle is active, spawns one
// in the middle of the field.
type ExtraPaddle struct {
	env *Env
}

// NewExtraPaddle returns an ExtraPaddle strategy bound to env.
func NewExtraPaddle(env *Env) *ExtraPaddle {
	return &ExtraPaddle{env: env}
}

// Execute implements Strategy.
func (s *ExtraPaddle) Execute(self, _ Entity) {
	if s.env.removeTile(self) == nil {
		return
	}
	if !s.env.Counters.ExtraPaddles.TryAcquire() {
		s.env.Log.Debug("extra paddle already active")
		return
	}
	s.env.Spawner.SpawnExtraPaddle(s.env.Field.Center())
	s.env.Log.Debug("extra paddle spawned")
}

// Kind implements Strategy.
func (s *ExtraPaddle) Kind() Kind { return KindExtraPaddle }
