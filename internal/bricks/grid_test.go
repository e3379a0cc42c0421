package bricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridGetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 3)
	assert.Nil(t, g.Get(-1, 0))
	assert.Nil(t, g.Get(0, 3))
	assert.Nil(t, g.Get(2, 0))
	assert.False(t, g.Clear(5, 5))
}

func TestGridNeighborsOrder(t *testing.T) {
	f := newFixture(3, 3)
	basic := NewBasic(f.env)
	f.populate(func(int, int) Strategy { return basic })

	n := f.env.Grid.Neighbors(1, 1)
	require.Len(t, n, 4)
	assert.Equal(t, [2]int{0, 1}, [2]int{n[0].Row(), n[0].Col()}, "up")
	assert.Equal(t, [2]int{2, 1}, [2]int{n[1].Row(), n[1].Col()}, "down")
	assert.Equal(t, [2]int{1, 0}, [2]int{n[2].Row(), n[2].Col()}, "left")
	assert.Equal(t, [2]int{1, 2}, [2]int{n[3].Row(), n[3].Col()}, "right")

	assert.Len(t, f.env.Grid.Neighbors(0, 0), 2, "corner has two neighbours")
}

func TestGridRoundTrip(t *testing.T) {
	f := newFixture(4, 5)
	factory := NewFactory(f.env)
	f.populate(func(int, int) Strategy { return factory.Strategy(3) })
	require.Equal(t, 20, f.env.Counters.Bricks.Value())

	hit := &ball{}
	cleared := make(map[*Tile]int)
	tiles := make([]*Tile, 0, 20)
	f.env.Grid.Each(func(t *Tile) { tiles = append(tiles, t) })

	// Hit every tile three times, in an order that mixes rows.
	for pass := 0; pass < 3; pass++ {
		for i := range tiles {
			tile := tiles[(i*7+pass)%len(tiles)]
			before := f.env.Grid.Get(tile.Row(), tile.Col())
			tile.Collide(hit, nil)
			if before != nil && f.env.Grid.Get(tile.Row(), tile.Col()) == nil {
				cleared[tile]++
			}
		}
	}

	assert.Equal(t, 0, f.env.Grid.Live())
	assert.Equal(t, 0, f.env.Counters.Bricks.Value())
	assert.Len(t, f.world.removed, 20, "each tile removed exactly once")
	for _, tile := range tiles {
		assert.Nil(t, f.env.Grid.Get(tile.Row(), tile.Col()))
		assert.False(t, f.env.Grid.Clear(tile.Row(), tile.Col()))
	}
	for tile, n := range cleared {
		assert.Equal(t, 1, n, "tile (%d,%d) cleared more than once", tile.Row(), tile.Col())
	}
}
