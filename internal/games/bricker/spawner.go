package bricker

import (
	"github.com/vovakirdan/bricker/internal/bricks"
	"github.com/vovakirdan/bricker/internal/core"
)

// spawner creates the entities brick strategies ask for.
type spawner struct {
	g *Game
}

// SpawnPuck implements bricks.Spawner.
func (s spawner) SpawnPuck(center, velocity core.Vec) {
	p := &Ball{
		X:    FromFloat(center.X),
		Y:    FromFloat(center.Y),
		VX:   FromFloat(velocity.X),
		VY:   FromFloat(velocity.Y),
		Puck: true,
	}
	p.Retune(s.g.puckSpeed())
	s.g.objects.Add(p, bricks.LayerDefault)
}

// SpawnExtraPaddle implements bricks.Spawner.
func (s spawner) SpawnExtraPaddle(center core.Vec) {
	w := s.g.cfg.Paddle.Width
	p := &ExtraPaddle{
		Paddle: Paddle{
			X:     FromFloat(center.X).Sub(ToFixed(w).Div(2)),
			Y:     int(center.Y),
			Width: w,
		},
		hitsLeft: s.g.cfg.Paddle.ExtraPaddleHits,
		world:    s.g.objects,
		gate:     s.g.counters.ExtraPaddles,
	}
	p.Move(0, s.g.layout.Field)
	s.g.objects.Add(p, bricks.LayerDefault)
	logger.Debug("extra paddle in play", "row", p.Y, "hits", p.hitsLeft)
}

// SpawnHeart implements bricks.Spawner.
func (s spawner) SpawnHeart(center core.Vec) {
	h := &Heart{
		X:     FromFloat(center.X),
		Y:     FromFloat(center.Y),
		VY:    Fixed(s.g.cfg.Physics.HeartFallSpeed),
		main:  s.g.paddle,
		lives: s.g.counters.Lives,
		world: s.g.objects,
	}
	s.g.objects.Add(h, bricks.LayerDefault)
}
