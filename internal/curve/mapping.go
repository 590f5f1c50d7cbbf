package curve

import (
	"github.com/vovakirdan/spacefill/internal/core"
)

// Point is the result of a bounds-checked forward lookup.
type Point struct {
	core.Coord
	Valid bool
}

// Step is the result of a bounds-checked backward lookup.
type Step struct {
	Index int
	Valid bool
}

// Forward returns the coordinate visited at step i.
// ok is false when i is outside [0, Size()).
func (c *Curve) Forward(i int) (core.Coord, bool) {
	if i < 0 || i >= c.size {
		return core.Coord{}, false
	}
	return c.forward[i], true
}

// ForwardSlice looks up every index, preserving order. Out-of-range
// indices yield a Point with Valid unset.
func (c *Curve) ForwardSlice(indices []int) []Point {
	out := make([]Point, len(indices))
	for k, i := range indices {
		p, ok := c.Forward(i)
		out[k] = Point{Coord: p, Valid: ok}
	}
	return out
}

// ForwardCircular treats the step index as cyclic: i is reduced modulo
// Size() into [0, Size()), so negative indices count back from the end.
func (c *Curve) ForwardCircular(i int) core.Coord {
	return c.forward[c.wrap(i)]
}

// ForwardCircularSlice applies ForwardCircular to every index.
func (c *Curve) ForwardCircularSlice(indices []int) []core.Coord {
	out := make([]core.Coord, len(indices))
	for k, i := range indices {
		out[k] = c.ForwardCircular(i)
	}
	return out
}

func (c *Curve) wrap(i int) int {
	return ((i % c.size) + c.size) % c.size
}

// Backward returns the step index at which cell (x, y) is visited.
// ok is false when either coordinate is outside [0, Side()).
func (c *Curve) Backward(x, y int) (int, bool) {
	if x < 0 || x >= c.side || y < 0 || y >= c.side {
		return 0, false
	}
	return c.backward[x][y], true
}

// BackwardSlice looks up every coordinate, preserving order.
func (c *Curve) BackwardSlice(coords []core.Coord) []Step {
	out := make([]Step, len(coords))
	for k, p := range coords {
		i, ok := c.Backward(p.X, p.Y)
		out[k] = Step{Index: i, Valid: ok}
	}
	return out
}

// Next returns the cell visited after step i. A closed curve wraps from
// the last step to the first; an open curve has no successor there.
func (c *Curve) Next(i int) (core.Coord, bool) {
	if i < 0 || i >= c.size {
		return core.Coord{}, false
	}
	if i+1 < c.size {
		return c.forward[i+1], true
	}
	if c.closed {
		return c.forward[0], true
	}
	return core.Coord{}, false
}

// Points returns a copy of the visiting order.
func (c *Curve) Points() []core.Coord {
	out := make([]core.Coord, c.size)
	copy(out, c.forward)
	return out
}
