package bricks

// Explosion removes the tile and hits each of its four grid neighbours as if
// a ball had struck them. Neighbours run their own strategies; exploding
// neighbours continue the chain.
//
// Propagation is synchronous and depth-first. It terminates because every
// step either removes a tile or finds its cell already empty.
type Explosion struct {
	env   *Env
	sound Sound
}

// NewExplosion returns an Explosion strategy bound to env. The sound is
// resolved once from env.ExplosionSound.
func NewExplosion(env *Env) *Explosion {
	sounds := env.Sounds
	if sounds == nil {
		sounds = Silent{}
	}
	return &Explosion{env: env, sound: sounds.Sound(env.ExplosionSound)}
}

// Execute implements Strategy.
func (s *Explosion) Execute(self, _ Entity) {
	tile, ok := self.(*Tile)
	if !ok || tile == nil {
		return
	}
	if s.env.removeTile(tile) != nil {
		s.sound.Play()
	}

	// Cells are read at visit time: a neighbour removed earlier in this
	// chain is already nil.
	for _, d := range neighborOffsets {
		n := s.env.Grid.Get(tile.row+d[0], tile.col+d[1])
		if n == nil {
			continue
		}
		s.env.Log.Debug("explosion hits neighbour", "from_row", tile.row, "from_col", tile.col, "row", n.row, "col", n.col)
		n.Collide(tile, nil)
	}
}

// Kind implements Strategy.
func (s *Explosion) Kind() Kind { return KindExplosion }
