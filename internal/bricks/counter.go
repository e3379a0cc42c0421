package bricks

// Counter is a non-negative count that only goes down during a level.
// The brick count uses it: Increment at level build, Decrement on removal.
type Counter struct {
	value int
}

// NewCounter returns a counter starting at n.
func NewCounter(n int) *Counter {
	if n < 0 {
		n = 0
	}
	return &Counter{value: n}
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

// Increment adds one. Only level setup calls it.
func (c *Counter) Increment() {
	c.value++
}

// Decrement subtracts one, stopping at zero.
func (c *Counter) Decrement() {
	if c.value > 0 {
		c.value--
	}
}

// Reset sets the count back to n.
func (c *Counter) Reset(n int) {
	if n < 0 {
		n = 0
	}
	c.value = n
}

// Gate is a 0/1 counter guarding a single concurrently active resource.
type Gate struct {
	active bool
}

// Value returns 1 while the resource is held, else 0.
func (g *Gate) Value() int {
	if g.active {
		return 1
	}
	return 0
}

// TryAcquire takes the gate if it is free and reports whether it did.
func (g *Gate) TryAcquire() bool {
	if g.active {
		return false
	}
	g.active = true
	return true
}

// Release frees the gate. Releasing a free gate is a no-op.
func (g *Gate) Release() {
	g.active = false
}

// Reset frees the gate.
func (g *Gate) Reset() {
	g.active = false
}

// BoundedCounter is a count clamped to [0, Max].
type BoundedCounter struct {
	value int
	max   int
}

// NewBoundedCounter returns a counter at value, clamped to [0, max].
func NewBoundedCounter(value, max int) *BoundedCounter {
	b := &BoundedCounter{max: max}
	b.Reset(value)
	return b
}

// Value returns the current count.
func (b *BoundedCounter) Value() int {
	return b.value
}

// Max returns the cap.
func (b *BoundedCounter) Max() int {
	return b.max
}

// Full reports whether the counter sits at its cap.
func (b *BoundedCounter) Full() bool {
	return b.value >= b.max
}

// Increment adds one unless the cap is reached. Reports whether it changed.
func (b *BoundedCounter) Increment() bool {
	if b.value >= b.max {
		return false
	}
	b.value++
	return true
}

// Decrement subtracts one unless already zero. Reports whether it changed.
func (b *BoundedCounter) Decrement() bool {
	if b.value <= 0 {
		return false
	}
	b.value--
	return true
}

// Reset sets the count, clamped to [0, Max].
func (b *BoundedCounter) Reset(value int) {
	switch {
	case value < 0:
		b.value = 0
	case value > b.max:
		b.value = b.max
	default:
		b.value = value
	}
}

// Counters bundles the counters shared by every strategy of a level.
type Counters struct {
	Bricks       *Counter
	ExtraPaddles *Gate
	Lives        *BoundedCounter
}

// NewCounters returns counters for a fresh level: no bricks yet, no extra
// paddle and lives clamped to [0, maxLives].
func NewCounters(lives, maxLives int) *Counters {
	return &Counters{
		Bricks:       NewCounter(0),
		ExtraPaddles: &Gate{},
		Lives:        NewBoundedCounter(lives, maxLives),
	}
}

// Reset reinitializes every counter for a new level.
func (c *Counters) Reset(lives int) {
	c.Bricks.Reset(0)
	c.ExtraPaddles.Reset()
	c.Lives.Reset(lives)
}
