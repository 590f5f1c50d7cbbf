// Package core provides the grid primitives shared by the curve builders:
// coordinates, cardinal directions, the stepping turtle and a rune buffer
// for plotting. It has no external dependencies.
package core

import "fmt"

// Coord is a cell on a square grid. X grows to the right and Y grows
// upward, so (0, 0) is the bottom-left cell.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring Coord one unit in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return Abs(c.X-other.X) + Abs(c.Y-other.Y)
}

// Adjacent reports whether other shares an edge with c.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// InSquare reports whether c lies inside the side x side grid at the origin.
func (c Coord) InSquare(side int) bool {
	return c.X >= 0 && c.X < side && c.Y >= 0 && c.Y < side
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
