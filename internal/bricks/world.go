package bricks

import "github.com/vovakirdan/bricker/internal/core"

// Entity is anything that can take part in a collision.
type Entity interface {
	Center() core.Vec
}

// Layer groups live objects. Tiles always live in LayerStatic.
type Layer int

const (
	LayerDefault Layer = iota
	LayerStatic
	LayerUI
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerDefault:
		return "default"
	case LayerStatic:
		return "static"
	case LayerUI:
		return "ui"
	default:
		return "unknown"
	}
}

// World is the live-object collection the game owns.
//
// Remove must report whether this call performed the removal: a second
// Remove of the same entity, or a Remove from the wrong layer, returns false.
// The engine relies on that flag for at-most-once tile processing.
type World interface {
	Add(e Entity, layer Layer)
	Remove(e Entity, layer Layer) bool
}

// Collision carries the contact normal delivered by the physics layer.
// Strategies ignore it; only ball bounce uses it.
type Collision struct {
	Normal core.Vec
}
