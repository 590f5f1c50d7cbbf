package core

// Turtle is a grid cursor with a position and a heading.
type Turtle struct {
	pos Coord
	dir Dir
}

// NewTurtle creates a turtle at pos facing dir.
func NewTurtle(pos Coord, dir Dir) Turtle {
	return Turtle{pos: pos, dir: dir}
}

// TurnLeft rotates the heading counter-clockwise, or clockwise when invert
// is set. Mirrored sub-curves reuse the same move sequence this way.
func (t *Turtle) TurnLeft(invert bool) {
	if invert {
		t.dir = t.dir.TurnRight()
		return
	}
	t.dir = t.dir.TurnLeft()
}

// TurnRight rotates the heading clockwise, or counter-clockwise when
// invert is set.
func (t *Turtle) TurnRight(invert bool) {
	if invert {
		t.dir = t.dir.TurnLeft()
		return
	}
	t.dir = t.dir.TurnRight()
}

// Forward advances one cell along the current heading.
func (t *Turtle) Forward() {
	t.pos = t.pos.Step(t.dir)
}

// Pos returns the current position.
func (t *Turtle) Pos() Coord {
	return t.pos
}

// Dir returns the current heading.
func (t *Turtle) Dir() Dir {
	return t.dir
}
