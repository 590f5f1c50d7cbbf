package curve

import "fmt"

// ForwardField lays out values, given in visiting order, onto the grid:
// the result satisfies grid[x][y] == values[i] where Forward(i) == (x, y).
// len(values) must equal c.Size().
func ForwardField[T any](c *Curve, values []T) ([][]T, error) {
	if len(values) != c.size {
		return nil, fmt.Errorf("%w: got %d values, curve has %d cells", ErrFieldLength, len(values), c.size)
	}

	grid := make([][]T, c.side)
	for x := range grid {
		grid[x] = make([]T, c.side)
	}
	for i, v := range values {
		p := c.forward[i]
		grid[p.X][p.Y] = v
	}
	return grid, nil
}

// BackwardGrid is the inverse of ForwardField. grid is indexed [x][y] and
// must hold exactly Side() columns of Side() cells each.
func BackwardGrid[T any](c *Curve, grid [][]T) ([]T, error) {
	if len(grid) != c.side {
		return nil, fmt.Errorf("%w: got %d columns, want %d", ErrGridShape, len(grid), c.side)
	}
	for x, col := range grid {
		if len(col) != c.side {
			return nil, fmt.Errorf("%w: column %d has %d cells, want %d", ErrGridShape, x, len(col), c.side)
		}
	}

	values := make([]T, c.size)
	for x, col := range grid {
		for y, v := range col {
			values[c.backward[x][y]] = v
		}
	}
	return values, nil
}
