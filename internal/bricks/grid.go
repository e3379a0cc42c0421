package bricks

// Grid is the row-major occupancy table of the level's tiles.
// A cell is nil exactly when no live tile occupies it. Cells are filled once
// at level build and each is cleared at most once afterwards.
type Grid struct {
	rows, cols int
	cells      [][]*Tile
}

// NewGrid returns an empty rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]*Tile, rows)
	for r := range cells {
		cells[r] = make([]*Tile, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the live tile at (row, col), or nil when the cell is empty or
// out of bounds.
func (g *Grid) Get(row, col int) *Tile {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// place puts t in its cell if the cell is free.
func (g *Grid) place(t *Tile) bool {
	if !g.InBounds(t.row, t.col) || g.cells[t.row][t.col] != nil {
		return false
	}
	g.cells[t.row][t.col] = t
	return true
}

// Clear empties (row, col) and reports whether a tile was there.
func (g *Grid) Clear(row, col int) bool {
	if g.Get(row, col) == nil {
		return false
	}
	g.cells[row][col] = nil
	return true
}

// Live returns the number of occupied cells.
func (g *Grid) Live() int {
	n := 0
	for _, row := range g.cells {
		for _, t := range row {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// Each calls fn for every live tile in row-major order.
func (g *Grid) Each(fn func(t *Tile)) {
	for _, row := range g.cells {
		for _, t := range row {
			if t != nil {
				fn(t)
			}
		}
	}
}

// neighborOffsets lists the four orthogonal neighbours in propagation order:
// up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the live orthogonal neighbours of (row, col) in the
// order up, down, left, right. Empty and out-of-bounds cells are skipped.
func (g *Grid) Neighbors(row, col int) []*Tile {
	out := make([]*Tile, 0, 4)
	for _, d := range neighborOffsets {
		if t := g.Get(row+d[0], col+d[1]); t != nil {
			out = append(out, t)
		}
	}
	return out
}
