package bricker

import "github.com/vovakirdan/bricker/internal/core"

// HUD rows above the field.
const hudRows = 2

// Layout maps the brick grid and the play field onto the screen.
type Layout struct {
	Field       core.Rect // Area inside the walls, below the HUD
	Rows, Cols  int
	BrickLeft   int // X of the first brick column
	BrickTop    int // Y of the first brick row
	BrickWidth  int
	BrickHeight int
	PaddleY     int
}

// NewLayout computes the layout for a screen and brick grid.
// The bricks span the field width, centered, one row per brick.
func NewLayout(screenW, screenH, rows, cols int) Layout {
	field := core.NewRect(1, hudRows, screenW-2, screenH-hudRows)

	width := 1
	if cols > 0 && field.W/cols > 1 {
		width = field.W / cols
	}
	used := width * cols

	return Layout{
		Field:       field,
		Rows:        rows,
		Cols:        cols,
		BrickLeft:   field.X + (field.W-used)/2,
		BrickTop:    field.Y + 1,
		BrickWidth:  width,
		BrickHeight: 1,
		PaddleY:     screenH - 3,
	}
}

// MinSize returns the smallest screen that fits the grid with room to play.
func MinSize(rows, cols int) (w, h int) {
	return max(30, cols+2), max(15, rows+hudRows+10)
}

// Bounds returns the screen rectangle of brick (row, col).
func (l Layout) Bounds(row, col int) core.Rect {
	return core.NewRect(
		l.BrickLeft+col*l.BrickWidth,
		l.BrickTop+row*l.BrickHeight,
		l.BrickWidth,
		l.BrickHeight,
	)
}

// Cell maps a screen cell to a brick grid cell.
func (l Layout) Cell(x, y int) (row, col int, ok bool) {
	if x < l.BrickLeft || y < l.BrickTop {
		return 0, 0, false
	}
	row = (y - l.BrickTop) / l.BrickHeight
	col = (x - l.BrickLeft) / l.BrickWidth
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}
