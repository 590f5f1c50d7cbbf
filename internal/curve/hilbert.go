package curve

import (
	"github.com/vovakirdan/spacefill/internal/core"
)

// hilbertBuilder carries the mutable state of one Hilbert construction.
type hilbertBuilder struct {
	turtle core.Turtle
	curve  *Curve
	step   int
	err    error
}

// NewHilbert builds the Hilbert curve of the given order. The path starts
// at (0,0) and ends at (0, side-1); order 0 is the single cell (0,0).
func NewHilbert(order int) (*Curve, error) {
	if err := checkOrder(order, 0); err != nil {
		return nil, err
	}

	b := &hilbertBuilder{
		turtle: core.NewTurtle(core.C(0, 0), core.DirUp),
		curve:  newCurve(KindHilbert, order, false),
	}
	b.record()
	b.iterate(order, false)

	if b.err != nil {
		return nil, b.err
	}
	return b.curve.finish()
}

// iterate expands one level of the L-system A -> +BF-AFA-FB+, where B is
// A with turns mirrored.
func (b *hilbertBuilder) iterate(level int, invert bool) {
	if level == 0 || b.err != nil {
		return
	}

	b.turtle.TurnRight(invert)
	b.iterate(level-1, !invert)
	b.forward()

	b.turtle.TurnLeft(invert)
	b.iterate(level-1, invert)
	b.forward()

	b.iterate(level-1, invert)
	b.turtle.TurnLeft(invert)
	b.forward()

	b.iterate(level-1, !invert)
	b.turtle.TurnRight(invert)
}

func (b *hilbertBuilder) forward() {
	b.turtle.Forward()
	b.record()
}

func (b *hilbertBuilder) record() {
	if b.err != nil {
		return
	}
	if err := b.curve.record(b.step, b.turtle.Pos()); err != nil {
		b.err = err
		return
	}
	b.step++
}
