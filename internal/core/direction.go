package core

// Dir is one of the four cardinal orientations. The values are ordered
// clockwise so rotation is index arithmetic modulo 4.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

const dirCount = 4

var dirDeltas = [dirCount][2]int{
	DirUp:    {0, 1},
	DirRight: {1, 0},
	DirDown:  {0, -1},
	DirLeft:  {-1, 0},
}

var dirNames = [dirCount]string{
	DirUp:    "Up",
	DirRight: "Right",
	DirDown:  "Down",
	DirLeft:  "Left",
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	if d >= dirCount {
		return "Unknown"
	}
	return dirNames[d]
}

// TurnLeft returns the direction a quarter turn counter-clockwise.
func (d Dir) TurnLeft() Dir {
	return (d + dirCount - 1) % dirCount
}

// TurnRight returns the direction a quarter turn clockwise.
func (d Dir) TurnRight() Dir {
	return (d + 1) % dirCount
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	return (d + 2) % dirCount
}

// Delta returns the unit step for this direction. Up increases Y.
func (d Dir) Delta() (dx, dy int) {
	v := dirDeltas[d%dirCount]
	return v[0], v[1]
}
