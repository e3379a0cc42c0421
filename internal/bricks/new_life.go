package bricks

// NewLife removes the tile and drops a heart pickup from it, unless lives are
// already at their cap.
type NewLife struct {
	env *Env
}

// NewNewLife returns a NewLife strategy bound to env.
func NewNewLife(env *Env) *NewLife {
	return &NewLife{env: env}
}

// Execute implements Strategy.
func (s *NewLife) Execute(self, _ Entity) {
	tile := s.env.removeTile(self)
	if tile == nil {
		return
	}
	if s.env.Counters.Lives.Full() {
		s.env.Log.Debug("lives full, no heart", "lives", s.env.Counters.Lives.Value())
		return
	}
	s.env.Spawner.SpawnHeart(tile.Center())
	s.env.Log.Debug("heart spawned", "row", tile.row, "col", tile.col)
}

// Kind implements Strategy.
func (s *NewLife) Kind() Kind { return KindNewLife }
