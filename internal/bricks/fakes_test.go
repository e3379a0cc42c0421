package bricks

import (
	"github.com/vovakirdan/bricker/internal/core"
)

type fakeWorld struct {
	layers  map[Layer]map[Entity]bool
	removed []Entity
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{layers: make(map[Layer]map[Entity]bool)}
}

func (w *fakeWorld) Add(e Entity, layer Layer) {
	if w.layers[layer] == nil {
		w.layers[layer] = make(map[Entity]bool)
	}
	w.layers[layer][e] = true
}

func (w *fakeWorld) Remove(e Entity, layer Layer) bool {
	if !w.layers[layer][e] {
		return false
	}
	delete(w.layers[layer], e)
	w.removed = append(w.removed, e)
	return true
}

func (w *fakeWorld) count(layer Layer) int {
	return len(w.layers[layer])
}

type puckSpawn struct {
	center, velocity core.Vec
}

type fakeSpawner struct {
	pucks   []puckSpawn
	paddles []core.Vec
	hearts  []core.Vec
}

func (s *fakeSpawner) SpawnPuck(center, velocity core.Vec) {
	s.pucks = append(s.pucks, puckSpawn{center, velocity})
}

func (s *fakeSpawner) SpawnExtraPaddle(center core.Vec) {
	s.paddles = append(s.paddles, center)
}

func (s *fakeSpawner) SpawnHeart(center core.Vec) {
	s.hearts = append(s.hearts, center)
}

type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

type fakeSounds struct {
	byPath map[string]*countingSound
}

func (f *fakeSounds) Sound(path string) Sound {
	if f.byPath == nil {
		f.byPath = make(map[string]*countingSound)
	}
	s, ok := f.byPath[path]
	if !ok {
		s = &countingSound{}
		f.byPath[path] = s
	}
	return s
}

// scriptedRand replays fixed draws and records the n passed to IntN.
type scriptedRand struct {
	ints   []int
	floats []float64
	ns     []int
}

func (r *scriptedRand) IntN(n int) int {
	r.ns = append(r.ns, n)
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type ball struct {
	at core.Vec
}

func (b *ball) Center() core.Vec { return b.at }

// fixture is a level whose collaborators are all fakes.
type fixture struct {
	env     *Env
	world   *fakeWorld
	spawner *fakeSpawner
	sounds  *fakeSounds
}

func newFixture(rows, cols int) *fixture {
	f := &fixture{
		world:   newFakeWorld(),
		spawner: &fakeSpawner{},
		sounds:  &fakeSounds{},
	}
	f.env = NewEnv(f.world, NewGrid(rows, cols), NewCounters(3, 4), f.spawner, NewRand(1))
	f.env.Sounds = f.sounds
	f.env.Field = core.NewRect(0, 0, 40, 20)
	f.env.PuckSpeed = 0.6
	f.env.ExplosionSound = "explosion.wav"
	return f
}

func cellBounds(row, col int) core.Rect {
	return core.NewRect(col*4, row+1, 4, 1)
}

// populate fills the grid, choosing each tile's strategy with pick.
func (f *fixture) populate(pick func(row, col int) Strategy) {
	f.env.Populate(cellBounds, pick)
}

func (f *fixture) explosionPlays() int {
	s, ok := f.sounds.byPath["explosion.wav"]
	if !ok {
		return 0
	}
	return s.plays
}
