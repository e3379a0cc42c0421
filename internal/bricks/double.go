package bricks

// Double runs two strategies on one hit. The second one is called with the
// participants swapped: Execute(first, other) runs First(first, other) and
// then Second(other, first).
type Double struct {
	First  Strategy
	Second Strategy
}

// NewDouble combines two strategies.
func NewDouble(first, second Strategy) *Double {
	return &Double{First: first, Second: second}
}

// Execute implements Strategy.
func (s *Double) Execute(first, other Entity) {
	s.First.Execute(first, other)
	s.Second.Execute(other, first)
}

// Kind implements Strategy.
func (s *Double) Kind() Kind { return KindDouble }
