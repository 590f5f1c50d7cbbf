package curve

import (
	"fmt"

	"github.com/vovakirdan/spacefill/internal/core"
)

// quadrant maps a point of the base Hilbert curve into one quarter of the
// Moore grid.
type quadrant func(p core.Coord, half, side int) core.Coord

// mooreQuadrants lists the quarters in visiting order: bottom-right,
// top-right, top-left, bottom-left. The first two translate the base
// curve, the last two reflect it through both axes.
var mooreQuadrants = [4]quadrant{
	func(p core.Coord, half, side int) core.Coord { return core.C(half+p.X, p.Y) },
	func(p core.Coord, half, side int) core.Coord { return core.C(half+p.X, half+p.Y) },
	func(p core.Coord, half, side int) core.Coord { return core.C(half-1-p.X, side-1-p.Y) },
	func(p core.Coord, half, side int) core.Coord { return core.C(half-1-p.X, half-1-p.Y) },
}

// NewMoore builds the closed Moore curve of the given order from four
// copies of the Hilbert curve of order-1. Orders below 2 return an error
// wrapping ErrMooreOrder.
func NewMoore(order int) (*Curve, error) {
	if order <= 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMooreOrder, order)
	}
	if err := checkOrder(order, 2); err != nil {
		return nil, err
	}

	base, err := NewHilbert(order - 1)
	if err != nil {
		return nil, err
	}

	c := newCurve(KindMoore, order, true)
	half := base.side
	for q, transform := range mooreQuadrants {
		offset := q * base.size
		for i, p := range base.forward {
			if err := c.record(offset+i, transform(p, half, c.side)); err != nil {
				return nil, err
			}
		}
	}
	return c.finish()
}
