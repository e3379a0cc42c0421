package bricks

import "github.com/vovakirdan/bricker/internal/core"

// Tile is a breakable brick. It owns exactly one Strategy and delegates every
// delivered collision to it.
type Tile struct {
	row, col int
	bounds   core.Rect
	strategy Strategy
}

// NewTile creates a tile at grid position (row, col) occupying bounds on screen.
func NewTile(row, col int, bounds core.Rect, s Strategy) *Tile {
	return &Tile{row: row, col: col, bounds: bounds, strategy: s}
}

// Row returns the tile's grid row.
func (t *Tile) Row() int { return t.row }

// Col returns the tile's grid column.
func (t *Tile) Col() int { return t.col }

// Bounds returns the tile's screen rectangle.
func (t *Tile) Bounds() core.Rect { return t.bounds }

// Center implements Entity.
func (t *Tile) Center() core.Vec { return t.bounds.Center() }

// Strategy returns the behavior bound to the tile.
func (t *Tile) Strategy() Strategy { return t.strategy }

// Collide runs the tile's strategy once for a delivered collision.
// The collision normal is not used by any strategy.
func (t *Tile) Collide(other Entity, _ *Collision) {
	t.strategy.Execute(t, other)
}
