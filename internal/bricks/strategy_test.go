package bricks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/bricker/internal/core"
)

func TestWinConditionAllBasic(t *testing.T) {
	f := newFixture(3, 4)
	basic := NewBasic(f.env)
	f.populate(func(int, int) Strategy { return basic })
	require.Equal(t, 12, f.env.Counters.Bricks.Value())

	hit := &ball{}
	removed := 0
	f.env.Grid.Each(func(tile *Tile) {
		tile.Collide(hit, &Collision{Normal: core.V(0, 1)})
		removed++
		assert.Equal(t, 12-removed, f.env.Counters.Bricks.Value())
	})

	assert.Equal(t, 0, f.env.Counters.Bricks.Value())
	assert.Equal(t, 0, f.world.count(LayerStatic))
}

func TestIdempotentDoubleHit(t *testing.T) {
	f := newFixture(1, 2)
	basic := NewBasic(f.env)
	f.populate(func(int, int) Strategy { return basic })

	tile := f.env.Grid.Get(0, 0)
	a, b := &ball{}, &ball{}
	tile.Collide(a, nil)
	tile.Collide(b, nil)

	assert.Equal(t, 1, f.env.Counters.Bricks.Value(), "two hits in one pass remove one brick")
	assert.Nil(t, f.env.Grid.Get(0, 0))
	assert.NotNil(t, f.env.Grid.Get(0, 1))
}

func TestIdempotentDoubleHitSpawnsOnce(t *testing.T) {
	f := newFixture(1, 1)
	pucks := NewPucks(f.env)
	f.populate(func(int, int) Strategy { return pucks })

	tile := f.env.Grid.Get(0, 0)
	tile.Collide(&ball{}, nil)
	tile.Collide(&ball{}, nil)

	assert.Len(t, f.spawner.pucks, 2, "only the first hit releases pucks")
	assert.Equal(t, 0, f.env.Counters.Bricks.Value())
}

func TestPucksVelocity(t *testing.T) {
	f := newFixture(1, 1)
	f.env.Rand = &scriptedRand{floats: []float64{0, 0.5}}
	pucks := NewPucks(f.env)
	f.populate(func(int, int) Strategy { return pucks })

	impact := &ball{at: core.V(7, 3)}
	f.env.Grid.Get(0, 0).Collide(impact, nil)

	require.Len(t, f.spawner.pucks, 2)
	for _, p := range f.spawner.pucks {
		assert.Equal(t, impact.at, p.center)
		assert.InDelta(t, f.env.PuckSpeed, p.velocity.Len(), 1e-9)
	}
	assert.InDelta(t, 0.6, f.spawner.pucks[0].velocity.X, 1e-9)
	assert.InDelta(t, 0, f.spawner.pucks[0].velocity.Y, 1e-9)
	assert.InDelta(t, 0, f.spawner.pucks[1].velocity.X, 1e-9)
	assert.InDelta(t, 0.6, f.spawner.pucks[1].velocity.Y, 1e-9)
}

func TestPucksAnglesInHalfTurn(t *testing.T) {
	f := newFixture(10, 10)
	pucks := NewPucks(f.env)
	f.populate(func(int, int) Strategy { return pucks })

	f.env.Grid.Each(func(tile *Tile) { tile.Collide(nil, nil) })

	require.Len(t, f.spawner.pucks, 200)
	for _, p := range f.spawner.pucks {
		angle := math.Atan2(p.velocity.Y, p.velocity.X)
		assert.GreaterOrEqual(t, angle, 0.0)
		assert.Less(t, angle, math.Pi)
	}
}

func TestPucksWithoutOtherUseTileCenter(t *testing.T) {
	f := newFixture(1, 1)
	pucks := NewPucks(f.env)
	f.populate(func(int, int) Strategy { return pucks })

	tile := f.env.Grid.Get(0, 0)
	tile.Collide(nil, nil)

	require.Len(t, f.spawner.pucks, 2)
	assert.Equal(t, tile.Center(), f.spawner.pucks[0].center)
}

func TestExtraPaddleExclusivity(t *testing.T) {
	f := newFixture(1, 3)
	extra := NewExtraPaddle(f.env)
	f.populate(func(int, int) Strategy { return extra })

	f.env.Grid.Get(0, 0).Collide(&ball{}, nil)
	f.env.Grid.Get(0, 1).Collide(&ball{}, nil)

	assert.Len(t, f.spawner.paddles, 1)
	assert.Equal(t, 1, f.env.Counters.ExtraPaddles.Value())
	assert.Equal(t, 1, f.env.Counters.Bricks.Value(), "both tiles still removed")
	assert.Equal(t, f.env.Field.Center(), f.spawner.paddles[0])

	// The spawned paddle expires and releases the gate.
	f.env.Counters.ExtraPaddles.Release()
	f.env.Grid.Get(0, 2).Collide(&ball{}, nil)
	assert.Len(t, f.spawner.paddles, 2)
	assert.Equal(t, 1, f.env.Counters.ExtraPaddles.Value())
}

func TestNewLifeRespectsCap(t *testing.T) {
	f := newFixture(1, 4)
	life := NewNewLife(f.env)
	f.populate(func(int, int) Strategy { return life })

	first := f.env.Grid.Get(0, 0)
	first.Collide(&ball{}, nil)
	require.Len(t, f.spawner.hearts, 1)
	assert.Equal(t, first.Center(), f.spawner.hearts[0])

	// Every pickup is collected; lives never pass the cap.
	for col := 1; col < 4; col++ {
		f.env.Counters.Lives.Increment()
		f.env.Grid.Get(0, col).Collide(&ball{}, nil)
		assert.LessOrEqual(t, f.env.Counters.Lives.Value(), f.env.Counters.Lives.Max())
	}
	assert.Equal(t, 4, f.env.Counters.Lives.Value())
	assert.Len(t, f.spawner.hearts, 1, "no heart once lives are full")
	assert.Equal(t, 0, f.env.Counters.Bricks.Value())
}

func TestExplosionChain(t *testing.T) {
	f := newFixture(3, 3)
	basic := NewBasic(f.env)
	explosion := NewExplosion(f.env)
	f.populate(func(row, col int) Strategy {
		if row == 1 && (col == 1 || col == 2) {
			return explosion
		}
		return basic
	})
	require.Equal(t, 9, f.env.Counters.Bricks.Value())

	f.env.Grid.Get(1, 1).Collide(&ball{}, nil)

	// Both explosions plus the basic neighbours of each: (0,1) (2,1) (1,0)
	// around the first and (0,2) (2,2) around the second.
	assert.Equal(t, 2, f.env.Counters.Bricks.Value())
	assert.Len(t, f.world.removed, 7)
	assert.NotNil(t, f.env.Grid.Get(0, 0))
	assert.NotNil(t, f.env.Grid.Get(2, 0))
	assert.Equal(t, 2, f.env.Grid.Live())
	assert.Equal(t, 2, f.explosionPlays(), "each exploding tile plays once")
}

func TestExplosionOnRemovedTileStillPropagates(t *testing.T) {
	f := newFixture(1, 3)
	basic := NewBasic(f.env)
	explosion := NewExplosion(f.env)
	f.populate(func(_, col int) Strategy {
		if col == 1 {
			return explosion
		}
		return basic
	})

	middle := f.env.Grid.Get(0, 1)
	require.True(t, f.world.Remove(middle, LayerStatic))

	explosion.Execute(middle, nil)

	assert.Nil(t, f.env.Grid.Get(0, 0))
	assert.Nil(t, f.env.Grid.Get(0, 2))
	assert.Equal(t, 0, f.explosionPlays())
}

func TestExplosionIgnoresNonTile(t *testing.T) {
	f := newFixture(1, 1)
	explosion := NewExplosion(f.env)
	f.populate(func(int, int) Strategy { return explosion })

	explosion.Execute(&ball{}, nil)
	assert.Equal(t, 1, f.env.Counters.Bricks.Value())
}

type recordingStrategy struct {
	calls [][2]Entity
}

func (r *recordingStrategy) Execute(self, other Entity) {
	r.calls = append(r.calls, [2]Entity{self, other})
}

func (r *recordingStrategy) Kind() Kind { return KindBasic }

func TestDoubleSwapsParticipants(t *testing.T) {
	first, second := &recordingStrategy{}, &recordingStrategy{}
	d := NewDouble(first, second)
	tile := NewTile(0, 0, cellBounds(0, 0), d)
	hit := &ball{}

	tile.Collide(hit, nil)

	require.Len(t, first.calls, 1)
	require.Len(t, second.calls, 1)
	assert.Same(t, tile, first.calls[0][0])
	assert.Same(t, hit, first.calls[0][1])
	assert.Same(t, hit, second.calls[0][0])
	assert.Same(t, tile, second.calls[0][1])
}

func TestDoubleSecondRemovalTargetsBall(t *testing.T) {
	f := newFixture(1, 1)
	d := NewDouble(NewBasic(f.env), NewPucks(f.env))
	f.populate(func(int, int) Strategy { return d })

	f.env.Grid.Get(0, 0).Collide(&ball{}, nil)

	assert.Equal(t, 0, f.env.Counters.Bricks.Value())
	assert.Empty(t, f.spawner.pucks, "swapped call sees the ball as self and removes nothing")
}

func TestDoubleUnderExplosionSecondHalfUsesTile(t *testing.T) {
	f := newFixture(1, 2)
	explosion := NewExplosion(f.env)
	extra := NewExtraPaddle(f.env)
	d := NewDouble(NewBasic(f.env), extra)
	f.populate(func(_, col int) Strategy {
		if col == 0 {
			return explosion
		}
		return d
	})

	// The neighbour is hit as Collide(explosionTile, nil), so the swapped
	// call targets the already removed explosion tile and does nothing.
	f.env.Grid.Get(0, 0).Collide(&ball{}, nil)

	assert.Equal(t, 0, f.env.Counters.Bricks.Value())
	assert.Empty(t, f.spawner.paddles)
}

func TestKindString(t *testing.T) {
	want := []string{"basic", "pucks", "extra-paddle", "explosion", "new-life", "double"}
	for i, k := range Kinds {
		assert.Equal(t, want[i], k.String())
	}
	assert.Equal(t, "unknown", Kind(42).String())
}
