// Package curve builds Hilbert and Moore space-filling curves and maps
// between a curve's linear step index and its grid coordinates.
//
// A Curve is built once, in full, by NewHilbert or NewMoore and is never
// modified afterwards, so it can be shared freely between goroutines.
package curve

import (
	"fmt"

	"github.com/vovakirdan/spacefill/internal/core"
)

// Curve kinds known to the registry.
const (
	KindHilbert = "hilbert"
	KindMoore   = "moore"
)

// MaxOrder is the largest order accepted by the builders. Side length is
// 2^order and the tables hold 4^order entries.
const MaxOrder = 15

const unvisited = -1

// Curve is an immutable visiting order over a 2^order x 2^order grid.
type Curve struct {
	kind   string
	order  int
	side   int
	size   int
	closed bool

	forward  []core.Coord // step -> cell
	backward [][]int      // [x][y] -> step

	// filled marks forward slots during construction; nil once built.
	filled []bool
	count  int
}

// newCurve allocates the tables for a curve of the given order. Every
// backward slot starts at unvisited so a missed cell is detectable.
func newCurve(kind string, order int, closed bool) *Curve {
	side := 1 << order
	size := side * side

	c := &Curve{
		kind:     kind,
		order:    order,
		side:     side,
		size:     size,
		closed:   closed,
		forward:  make([]core.Coord, size),
		backward: make([][]int, side),
		filled:   make([]bool, size),
	}
	for x := range c.backward {
		col := make([]int, side)
		for y := range col {
			col[y] = unvisited
		}
		c.backward[x] = col
	}
	return c
}

// record writes step -> p and its inverse. Each step and each cell may be
// written exactly once.
func (c *Curve) record(step int, p core.Coord) error {
	if step < 0 || step >= c.size {
		return fmt.Errorf("%w: step %d outside [0,%d)", ErrIncomplete, step, c.size)
	}
	if !p.InSquare(c.side) {
		return fmt.Errorf("%w: step %d lands on %v outside %dx%d grid", ErrIncomplete, step, p, c.side, c.side)
	}
	if c.filled[step] {
		return fmt.Errorf("%w: step %d written twice", ErrIncomplete, step)
	}
	if prev := c.backward[p.X][p.Y]; prev != unvisited {
		return fmt.Errorf("%w: cell %v visited at steps %d and %d", ErrIncomplete, p, prev, step)
	}

	c.forward[step] = p
	c.backward[p.X][p.Y] = step
	c.filled[step] = true
	c.count++
	return nil
}

// finish asserts every step was recorded and releases build-only state.
func (c *Curve) finish() (*Curve, error) {
	if c.count != c.size {
		return nil, fmt.Errorf("%w: recorded %d of %d steps", ErrIncomplete, c.count, c.size)
	}
	c.filled = nil
	return c, nil
}

// Kind returns the curve kind, KindHilbert or KindMoore.
func (c *Curve) Kind() string { return c.kind }

// Order returns the recursion depth.
func (c *Curve) Order() int { return c.order }

// Side returns the grid side length.
func (c *Curve) Side() int { return c.side }

// Size returns the number of cells and the length of the visiting order.
func (c *Curve) Size() int { return c.size }

// Closed reports whether the last step is adjacent to the first.
func (c *Curve) Closed() bool { return c.closed }

// String returns a short description such as "moore(order=3, side=8)".
func (c *Curve) String() string {
	return fmt.Sprintf("%s(order=%d, side=%d)", c.kind, c.order, c.side)
}

func checkOrder(order, lowest int) error {
	if order < lowest || order > MaxOrder {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrOrderRange, order, lowest, MaxOrder)
	}
	return nil
}
