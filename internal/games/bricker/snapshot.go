package bricker

import "github.com/vovakirdan/bricker/internal/bricks"

// Snapshot is a flat view of the game state for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick        uint64
	PaddleX     int
	Score       int
	Lives       int
	Bricks      int
	State       string
	ServeDelay  int
	ExtraPaddle int // Hits left, 0 when none is active

	// Each ball is 5 ints: X, Y, VX, VY, Puck
	BallData []int
	// Each heart is 2 ints: X, Y
	HeartData []int
	// One entry per grid cell, row-major: 1 when a tile is live
	TileData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:    int(g.paddle.X),
		Score:      g.score(),
		Lives:      g.counters.Lives.Value(),
		Bricks:     g.counters.Bricks.Value(),
		State:      g.state,
		ServeDelay: g.serveDelay,
	}

	for _, e := range g.objects.Entities(bricks.LayerDefault) {
		switch o := e.(type) {
		case *Ball:
			puck := 0
			if o.Puck {
				puck = 1
			}
			snap.BallData = append(snap.BallData, int(o.X), int(o.Y), int(o.VX), int(o.VY), puck)
		case *Heart:
			snap.HeartData = append(snap.HeartData, int(o.X), int(o.Y))
		case *ExtraPaddle:
			snap.ExtraPaddle = o.HitsLeft()
		}
	}

	grid := g.env.Grid
	snap.TileData = make([]int, grid.Rows()*grid.Cols())
	grid.Each(func(t *bricks.Tile) {
		snap.TileData[t.Row()*grid.Cols()+t.Col()] = 1
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.PaddleX, snap.Score, snap.Lives, snap.Bricks, snap.ServeDelay, snap.ExtraPaddle} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, data := range [][]int{snap.BallData, snap.HeartData, snap.TileData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
