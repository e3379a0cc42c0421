package bricks

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/bricker/internal/core"
)

// Kind identifies a strategy variant.
type Kind int

const (
	KindBasic Kind = iota
	KindPucks
	KindExtraPaddle
	KindExplosion
	KindNewLife
	KindDouble
)

// Kinds lists every variant in factory bucket order.
var Kinds = []Kind{KindBasic, KindPucks, KindExtraPaddle, KindExplosion, KindNewLife, KindDouble}

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindPucks:
		return "pucks"
	case KindExtraPaddle:
		return "extra-paddle"
	case KindExplosion:
		return "explosion"
	case KindNewLife:
		return "new-life"
	case KindDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Strategy is the behavior bound to a tile, run when the tile is hit.
// Implementations are immutable and may be shared between tiles.
type Strategy interface {
	// Execute runs the behavior. self is normally the hit tile and other the
	// entity that hit it (nil during explosion propagation).
	Execute(self, other Entity)
	Kind() Kind
}

// Env holds the shared handles every strategy of a level works against.
// Strategies keep a pointer to it and never copy the Grid or Counters.
type Env struct {
	World    World
	Grid     *Grid
	Counters *Counters
	Spawner  Spawner
	Sounds   Sounds
	Rand     Rand
	Log      *log.Logger

	// Field is the play area; the extra paddle spawns at its center.
	Field core.Rect
	// PuckSpeed is the puck speed in cells per tick.
	PuckSpeed float64

	ExplosionSound string
}

// NewEnv returns an Env with a silent sound bank and a discarding logger.
// Callers fill in the remaining collaborators.
func NewEnv(world World, grid *Grid, counters *Counters, spawner Spawner, rng Rand) *Env {
	return &Env{
		World:     world,
		Grid:      grid,
		Counters:  counters,
		Spawner:   spawner,
		Sounds:    Silent{},
		Rand:      rng,
		Log:       log.New(io.Discard),
		PuckSpeed: 1,
	}
}

// removeTile performs the idempotent removal shared by every destroying
// variant. It returns the removed tile, or nil when self is not a tile or
// another call already removed it.
func (env *Env) removeTile(self Entity) *Tile {
	tile, ok := self.(*Tile)
	if !ok || tile == nil {
		return nil
	}
	if !env.World.Remove(tile, LayerStatic) {
		return nil
	}
	env.Counters.Bricks.Decrement()
	env.Grid.Clear(tile.row, tile.col)
	env.Log.Debug("tile removed", "row", tile.row, "col", tile.col, "bricks", env.Counters.Bricks.Value())
	return tile
}

// Populate builds a tile for every grid cell, assigning each the strategy
// returned by next. Tiles are stored in the grid, added to the static layer
// and counted. bounds maps a cell to its screen rectangle.
func (env *Env) Populate(bounds func(row, col int) core.Rect, next func(row, col int) Strategy) {
	for r := 0; r < env.Grid.Rows(); r++ {
		for c := 0; c < env.Grid.Cols(); c++ {
			t := NewTile(r, c, bounds(r, c), next(r, c))
			if !env.Grid.place(t) {
				continue
			}
			env.World.Add(t, LayerStatic)
			env.Counters.Bricks.Increment()
		}
	}
}
