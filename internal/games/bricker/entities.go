package bricker

import (
	"fmt"

	"github.com/vovakirdan/bricker/internal/bricks"
	"github.com/vovakirdan/bricker/internal/core"
)

// ExtraPaddle is a temporary second paddle. It vanishes after absorbing a
// fixed number of hits and frees the extra-paddle slot.
type ExtraPaddle struct {
	Paddle
	hitsLeft int
	world    bricks.World
	gate     *bricks.Gate
}

// HitsLeft returns the collisions the paddle can still absorb.
func (p *ExtraPaddle) HitsLeft() int {
	return p.hitsLeft
}

// Collide counts a hit and removes the paddle once it is worn out.
func (p *ExtraPaddle) Collide(bricks.Entity) {
	p.hitsLeft--
	if p.hitsLeft > 0 {
		return
	}
	if p.world.Remove(p, bricks.LayerDefault) {
		p.gate.Release()
	}
}

// Heart is a falling extra-life pickup. Only the main paddle can collect it;
// an extra paddle it passes through counts the contact as a hit.
type Heart struct {
	X, Y Fixed
	VY   Fixed

	main     *Paddle
	lives    *bricks.BoundedCounter
	world    bricks.World
	touching map[bricks.Entity]bool
}

// Center implements bricks.Entity.
func (h *Heart) Center() core.Vec {
	return core.V(h.X.Float(), h.Y.Float())
}

// Fall moves the heart down and drops it once it leaves the field.
func (h *Heart) Fall(field core.Rect) {
	h.Y = h.Y.Add(h.VY)
	if h.Y >= ToFixed(field.Bottom()) {
		h.world.Remove(h, bricks.LayerDefault)
	}
}

// Collide grants a life when other is the main paddle.
func (h *Heart) Collide(other bricks.Entity) {
	if other != h.main {
		return
	}
	if h.world.Remove(h, bricks.LayerDefault) {
		h.lives.Increment()
	}
}

// touch records whether the heart overlaps p this tick and reports whether
// the overlap just started.
func (h *Heart) touch(p bricks.Entity, overlaps bool) bool {
	if !overlaps {
		delete(h.touching, p)
		return false
	}
	if h.touching[p] {
		return false
	}
	if h.touching == nil {
		h.touching = make(map[bricks.Entity]bool)
	}
	h.touching[p] = true
	return true
}

// widget is a HUD element. Widgets only read game state.
type widget interface {
	bricks.Entity
	Draw(dst *core.Screen)
}

// LifeHearts shows the remaining lives as a row of hearts.
type LifeHearts struct {
	X, Y  int
	lives *bricks.BoundedCounter
}

// Center implements bricks.Entity.
func (w *LifeHearts) Center() core.Vec {
	return core.V(float64(w.X)+float64(w.lives.Max())/2, float64(w.Y)+0.5)
}

// Draw implements widget.
func (w *LifeHearts) Draw(dst *core.Screen) {
	for i := 0; i < w.lives.Max(); i++ {
		if i < w.lives.Value() {
			dst.SetColored(w.X+i, w.Y, HeartChar, core.ColorRed)
		} else {
			dst.SetColored(w.X+i, w.Y, EmptyHeartChar, core.ColorGray)
		}
	}
}

// LifeNumber shows the remaining lives as a colored number.
type LifeNumber struct {
	X, Y  int
	lives *bricks.BoundedCounter
}

// Center implements bricks.Entity.
func (w *LifeNumber) Center() core.Vec {
	return core.V(float64(w.X)+0.5, float64(w.Y)+0.5)
}

// Draw implements widget.
func (w *LifeNumber) Draw(dst *core.Screen) {
	dst.DrawTextColored(w.X, w.Y, fmt.Sprint(w.lives.Value()), LivesColor(w.lives.Value()))
}

// LivesColor returns the color of the numeric life counter.
func LivesColor(lives int) core.Color {
	switch {
	case lives >= 3:
		return core.ColorGreen
	case lives == 2:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}
