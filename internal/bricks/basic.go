package bricks

// Basic removes the tile and does nothing else.
type Basic struct {
	env *Env
}

// NewBasic returns a Basic strategy bound to env.
func NewBasic(env *Env) *Basic {
	return &Basic{env: env}
}

// Execute implements Strategy.
func (s *Basic) Execute(self, _ Entity) {
	s.env.removeTile(self)
}

// Kind implements Strategy.
func (s *Basic) Kind() Kind { return KindBasic }
