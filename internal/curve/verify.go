package curve

import (
	"fmt"

	"github.com/vovakirdan/spacefill/internal/core"
	"github.com/vovakirdan/spacefill/internal/registry"
)

// Verify checks the structural invariants of c and returns an error
// wrapping ErrInvariant for the first one that fails:
//   - the forward order visits every cell of the grid exactly once
//   - backward is the exact inverse of forward
//   - consecutive steps are grid-adjacent
//   - a closed curve's last step is adjacent to its first
func Verify(c registry.Curve) error {
	side, size := c.Side(), c.Size()
	if side <= 0 || size != side*side {
		return fmt.Errorf("%w: size %d is not side %d squared", ErrInvariant, size, side)
	}

	var prev core.Coord
	for i := 0; i < size; i++ {
		p, ok := c.Forward(i)
		if !ok {
			return fmt.Errorf("%w: step %d has no coordinate", ErrInvariant, i)
		}
		if !p.InSquare(side) {
			return fmt.Errorf("%w: step %d at %v is outside the grid", ErrInvariant, i, p)
		}
		if j, ok := c.Backward(p.X, p.Y); !ok || j != i {
			return fmt.Errorf("%w: step %d at %v maps back to %d", ErrInvariant, i, p, j)
		}
		if i > 0 && !prev.Adjacent(p) {
			return fmt.Errorf("%w: steps %d %v and %d %v are not adjacent", ErrInvariant, i-1, prev, i, p)
		}
		prev = p
	}

	// forward is injective (each step maps back to itself), so with size
	// steps over size cells it is a bijection.

	if c.Closed() {
		first, _ := c.Forward(0)
		if !prev.Adjacent(first) {
			return fmt.Errorf("%w: closed curve ends at %v, not adjacent to start %v", ErrInvariant, prev, first)
		}
	}
	return nil
}
