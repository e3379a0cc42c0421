package bricks

import "strings"

// Bucket layout of one draw. Buckets [0, basicBuckets) are Basic, the next
// four map to one special variant each and the last one is Double.
const (
	basicBuckets  = 5
	singleBuckets = basicBuckets + 4
	allBuckets    = singleBuckets + 1
)

// Factory assigns strategies to tiles.
//
// Each draw picks uniformly among ten buckets: five Basic and one each of
// Pucks, ExtraPaddle, Explosion, NewLife and Double. A Double recurses into
// two more draws. Every Double consumes one unit of a per-tree budget of
// behaviorsAllowed-1; once it is spent the Double bucket is removed from the
// draw. A tree therefore has at most behaviorsAllowed leaves and at most
// behaviorsAllowed-1 nested Doubles.
type Factory struct {
	env *Env

	basic       *Basic
	pucks       *Pucks
	extraPaddle *ExtraPaddle
	explosion   *Explosion
	newLife     *NewLife
}

// NewFactory returns a factory whose strategies share env.
// Leaf strategies are stateless so a single instance of each is reused.
func NewFactory(env *Env) *Factory {
	return &Factory{
		env:         env,
		basic:       NewBasic(env),
		pucks:       NewPucks(env),
		extraPaddle: NewExtraPaddle(env),
		explosion:   NewExplosion(env),
		newLife:     NewNewLife(env),
	}
}

// Strategy builds one strategy tree. Values below 1 are treated as 1, which
// never produces a Double.
func (f *Factory) Strategy(behaviorsAllowed int) Strategy {
	if behaviorsAllowed < 1 {
		behaviorsAllowed = 1
	}
	budget := behaviorsAllowed - 1
	return f.pick(&budget)
}

func (f *Factory) pick(budget *int) Strategy {
	n := singleBuckets
	if *budget > 0 {
		n = allBuckets
	}

	switch b := f.env.Rand.IntN(n); {
	case b < basicBuckets:
		return f.basic
	case b == basicBuckets:
		return f.pucks
	case b == basicBuckets+1:
		return f.extraPaddle
	case b == basicBuckets+2:
		return f.explosion
	case b == basicBuckets+3:
		return f.newLife
	default:
		*budget--
		first := f.pick(budget)
		second := f.pick(budget)
		return NewDouble(first, second)
	}
}

// Depth returns the number of nested Doubles in s. A leaf has depth 0.
func Depth(s Strategy) int {
	d, ok := s.(*Double)
	if !ok {
		return 0
	}
	return 1 + max(Depth(d.First), Depth(d.Second))
}

// Leaves returns the number of non-Double strategies in s.
func Leaves(s Strategy) int {
	d, ok := s.(*Double)
	if !ok {
		return 1
	}
	return Leaves(d.First) + Leaves(d.Second)
}

// Describe renders a strategy tree, e.g. "double(basic, explosion)".
func Describe(s Strategy) string {
	var sb strings.Builder
	describe(&sb, s)
	return sb.String()
}

func describe(sb *strings.Builder, s Strategy) {
	d, ok := s.(*Double)
	if !ok {
		sb.WriteString(s.Kind().String())
		return
	}
	sb.WriteString("double(")
	describe(sb, d.First)
	sb.WriteString(", ")
	describe(sb, d.Second)
	sb.WriteString(")")
}
