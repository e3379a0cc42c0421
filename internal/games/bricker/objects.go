package bricker

import (
	"slices"

	"github.com/vovakirdan/bricker/internal/bricks"
)

type member struct {
	e     bricks.Entity
	layer bricks.Layer
}

// Objects is the game's live-object collection, split into layers.
// Insertion order is kept so updates and rendering are deterministic.
type Objects struct {
	layers map[bricks.Layer][]bricks.Entity
	live   map[member]struct{}
}

// NewObjects returns an empty collection.
func NewObjects() *Objects {
	return &Objects{
		layers: make(map[bricks.Layer][]bricks.Entity),
		live:   make(map[member]struct{}),
	}
}

// Add implements bricks.World. Adding an object already in layer is a no-op.
func (o *Objects) Add(e bricks.Entity, layer bricks.Layer) {
	k := member{e, layer}
	if _, ok := o.live[k]; ok {
		return
	}
	o.live[k] = struct{}{}
	o.layers[layer] = append(o.layers[layer], e)
}

// Remove implements bricks.World. It reports false when e is not in layer,
// which makes repeated removals no-ops.
func (o *Objects) Remove(e bricks.Entity, layer bricks.Layer) bool {
	k := member{e, layer}
	if _, ok := o.live[k]; !ok {
		return false
	}
	delete(o.live, k)
	list := o.layers[layer]
	if i := slices.Index(list, e); i >= 0 {
		o.layers[layer] = slices.Delete(list, i, i+1)
	}
	return true
}

// Contains reports whether e is live in layer.
func (o *Objects) Contains(e bricks.Entity, layer bricks.Layer) bool {
	_, ok := o.live[member{e, layer}]
	return ok
}

// Entities returns a copy of the layer, safe to iterate while removing.
func (o *Objects) Entities(layer bricks.Layer) []bricks.Entity {
	return slices.Clone(o.layers[layer])
}

// Len returns the number of live objects in layer.
func (o *Objects) Len(layer bricks.Layer) int {
	return len(o.layers[layer])
}

// Clear drops every object.
func (o *Objects) Clear() {
	clear(o.layers)
	clear(o.live)
}
