package bricker

import (
	"math"

	"github.com/vovakirdan/bricker/internal/bricks"
	"github.com/vovakirdan/bricker/internal/core"
)

// Fixed-point scale factor: 1 cell = 1000 units.
// Movement stays deterministic for a given seed and input sequence.
const Scale = 1000

// A paddle edge hit sends the ball off with at most 3/4 of its speed sideways.
const (
	maxSideNum = 3
	maxSideDen = 4
)

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// FromFloat converts a value in cells to fixed-point, rounding to the nearest unit.
func FromFloat(v float64) Fixed {
	return Fixed(math.Round(v * Scale))
}

// Float returns the value in cells.
func (f Fixed) Float() float64 {
	return float64(f) / Scale
}

// ToCell converts fixed-point to cell coordinate (floored).
func (f Fixed) ToCell() int {
	if f < 0 {
		return -int((-f + Scale - 1) / Scale)
	}
	return int(f) / Scale
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Ball is the main ball or a puck.
type Ball struct {
	X, Y   Fixed // Position (center)
	VX, VY Fixed // Velocity per tick
	Stuck  bool  // Resting on the paddle before launch
	Puck   bool  // Pucks never cost a life
}

// Center implements bricks.Entity.
func (b *Ball) Center() core.Vec {
	return core.V(b.X.Float(), b.Y.Float())
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return b.X.ToCell()
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return b.Y.ToCell()
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X = b.X.Add(b.VX)
	b.Y = b.Y.Add(b.VY)
}

// Speed returns the length of the velocity vector.
func (b *Ball) Speed() float64 {
	return math.Hypot(float64(b.VX), float64(b.VY))
}

// Retune raises the velocity to at least speed, keeping its direction.
// Faster balls are left alone.
func (b *Ball) Retune(speed Fixed) {
	cur := b.Speed()
	if cur >= float64(speed) {
		return
	}
	if cur == 0 {
		b.VY = speed
		return
	}
	vx := Fixed(float64(b.VX) * float64(speed) / cur)
	vy := vertical(vx, speed, true)
	if b.VY < 0 {
		vy = -vy
	}
	b.VX, b.VY = vx, vy
}

// vertical returns the non-negative vertical component that pairs with vx
// for a velocity of length speed. Rounding down keeps a ball at or under
// speed; rounding up keeps a puck at or over it.
func vertical(vx, speed Fixed, roundUp bool) Fixed {
	rest := float64(speed)*float64(speed) - float64(vx)*float64(vx)
	if rest <= 0 {
		return 0
	}
	if roundUp {
		return Fixed(math.Ceil(math.Sqrt(rest)))
	}
	return Fixed(math.Floor(math.Sqrt(rest)))
}

// Paddle is a horizontal player-controlled bar.
type Paddle struct {
	X     Fixed // Left edge position (fixed-point)
	Y     int   // Cell row
	Width int   // Width in cells
}

// Center implements bricks.Entity.
func (p *Paddle) Center() core.Vec {
	return core.V(p.CenterX().Float(), float64(p.Y)+0.5)
}

// CellX returns paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return p.X.ToCell()
}

// CenterX returns paddle's center in fixed-point.
func (p *Paddle) CenterX() Fixed {
	return p.X.Add(ToFixed(p.Width).Div(2))
}

// Left returns left edge in fixed-point.
func (p *Paddle) Left() Fixed {
	return p.X
}

// Right returns right edge in fixed-point.
func (p *Paddle) Right() Fixed {
	return p.X.Add(ToFixed(p.Width))
}

// Move shifts the paddle by dx and keeps it inside the field.
func (p *Paddle) Move(dx Fixed, field core.Rect) {
	minX := ToFixed(field.X)
	maxX := ToFixed(field.Right() - p.Width)
	p.X = ClampFixed(p.X.Add(dx), minX, maxX)
}

// Covers reports whether the cell (x, y) lies on the paddle.
func (p *Paddle) Covers(x Fixed, y int) bool {
	return y == p.Y && x >= p.Left() && x <= p.Right()
}

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// Normal returns the unit normal pointing out of the hit side.
func (s CollisionSide) Normal() core.Vec {
	switch s {
	case CollisionTop:
		return core.V(0, -1)
	case CollisionBottom:
		return core.V(0, 1)
	case CollisionLeft:
		return core.V(-1, 0)
	case CollisionRight:
		return core.V(1, 0)
	default:
		return core.Vec{}
	}
}

// CheckWallCollision checks if ball hits the field walls.
// Returns the wall hit and whether the ball fell below the field.
func CheckWallCollision(ball *Ball, field core.Rect) (side CollisionSide, fellOff bool) {
	switch {
	case ball.X < ToFixed(field.X):
		ball.X = ToFixed(field.X)
		return CollisionLeft, false
	case ball.X >= ToFixed(field.Right()):
		ball.X = ToFixed(field.Right() - 1)
		return CollisionRight, false
	case ball.Y < ToFixed(field.Y):
		ball.Y = ToFixed(field.Y)
		return CollisionTop, false
	case ball.Y >= ToFixed(field.Bottom()):
		return CollisionBottom, true
	}
	return CollisionNone, false
}

// CheckPaddleCollision checks if ball hits the paddle.
// If collision occurs, the ball leaves upward at speed, angled by where it
// hit. Returns true if collision occurred.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, speed Fixed) bool {
	// Ball must be moving downward and at paddle's Y level
	if ball.VY <= 0 {
		return false
	}

	ballY := ball.CellY()
	if ballY != paddle.Y && ballY != paddle.Y-1 {
		return false
	}
	if ball.X < paddle.Left() || ball.X > paddle.Right() {
		return false
	}

	// Hit position from -Scale (left edge) to +Scale (right edge)
	hitOffset := ball.X.Sub(paddle.CenterX())
	halfWidth := ToFixed(paddle.Width).Div(2)
	var normalizedHit Fixed
	if halfWidth > 0 {
		normalizedHit = Fixed(int(hitOffset) * Scale / int(halfWidth))
	}
	normalizedHit = max(-Scale, min(Scale, normalizedHit))

	// Edge hits give more horizontal angle, capped so the ball still climbs.
	ball.VX = Fixed(int(normalizedHit) * int(speed) * maxSideNum / (maxSideDen * Scale))
	ball.VY = -vertical(ball.VX, speed, ball.Puck)

	// Ensure ball moves away from paddle
	ball.Y = ToFixed(paddle.Y - 1)
	return true
}

// CheckTileCollision finds the live tile under the ball, if any, and the side
// the ball most likely entered through.
func CheckTileCollision(ball *Ball, grid *bricks.Grid, l Layout) (*bricks.Tile, CollisionSide) {
	row, col, ok := l.Cell(ball.CellX(), ball.CellY())
	if !ok {
		return nil, CollisionNone
	}
	tile := grid.Get(row, col)
	if tile == nil {
		return nil, CollisionNone
	}

	b := tile.Bounds()
	distLeft := ball.X.Sub(ToFixed(b.X)).Abs()
	distRight := ball.X.Sub(ToFixed(b.Right())).Abs()
	distTop := ball.Y.Sub(ToFixed(b.Y)).Abs()
	distBottom := ball.Y.Sub(ToFixed(b.Bottom())).Abs()

	minHoriz, horizSide := distLeft, CollisionLeft
	if distRight < minHoriz {
		minHoriz, horizSide = distRight, CollisionRight
	}
	minVert, vertSide := distTop, CollisionTop
	if distBottom < minVert {
		minVert, vertSide = distBottom, CollisionBottom
	}

	// Prefer vertical bounce if ball is moving mostly vertically
	if ball.VY.Abs() > ball.VX.Abs() || minVert <= minHoriz {
		return tile, vertSide
	}
	return tile, horizSide
}

// ApplyCollisionBounce applies the appropriate bounce based on collision side.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop, CollisionBottom:
		ball.VY = -ball.VY
	case CollisionLeft, CollisionRight:
		ball.VX = -ball.VX
	}
}

// BounceOffWall turns the ball back into the field after a wall hit.
func BounceOffWall(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionLeft:
		ball.VX = ball.VX.Abs()
	case CollisionRight:
		ball.VX = -ball.VX.Abs()
	case CollisionTop:
		ball.VY = ball.VY.Abs()
	}
}
