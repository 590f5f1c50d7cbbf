package curve_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/spacefill/internal/core"
	"github.com/vovakirdan/spacefill/internal/curve"
)

func mustMoore(t *testing.T, order int) *curve.Curve {
	t.Helper()
	c, err := curve.NewMoore(order)
	if err != nil {
		t.Fatalf("NewMoore(%d) failed: %v", order, err)
	}
	return c
}

func TestMooreOrderTwo(t *testing.T) {
	c := mustMoore(t, 2)

	if c.Side() != 4 || c.Size() != 16 {
		t.Fatalf("expected side=4 size=16, got side=%d size=%d", c.Side(), c.Size())
	}

	expected := []core.Coord{
		// quadrant 0: Hilbert order 1 shifted by (+2, 0)
		core.C(2, 0), core.C(3, 0), core.C(3, 1), core.C(2, 1),
		core.C(2, 2), core.C(3, 2), core.C(3, 3), core.C(2, 3),
		core.C(1, 3), core.C(0, 3), core.C(0, 2), core.C(1, 2),
		core.C(1, 1), core.C(0, 1), core.C(0, 0), core.C(1, 0),
	}
	for i, want := range expected {
		got, ok := c.Forward(i)
		if !ok || got != want {
			t.Errorf("Forward(%d) = %v, expected %v", i, got, want)
		}
	}
}

func TestMooreQuadrantsTranslateHilbert(t *testing.T) {
	const order = 4
	c := mustMoore(t, order)
	h := mustHilbert(t, order-1)
	half := h.Side()
	side := c.Side()

	for i := 0; i < h.Size(); i++ {
		p, _ := h.Forward(i)
		checks := []struct {
			step int
			want core.Coord
		}{
			{i, core.C(half+p.X, p.Y)},
			{h.Size() + i, core.C(half+p.X, half+p.Y)},
			{2*h.Size() + i, core.C(half-1-p.X, side-1-p.Y)},
			{3*h.Size() + i, core.C(half-1-p.X, half-1-p.Y)},
		}
		for _, ch := range checks {
			if got, _ := c.Forward(ch.step); got != ch.want {
				t.Errorf("Forward(%d) = %v, expected %v", ch.step, got, ch.want)
			}
		}
	}
}

func TestMooreInvariants(t *testing.T) {
	for order := 2; order <= 7; order++ {
		c := mustMoore(t, order)

		if !c.Closed() {
			t.Errorf("order %d: Moore curve should be closed", order)
		}
		if err := curve.Verify(c); err != nil {
			t.Errorf("order %d: Verify() failed: %v", order, err)
		}

		first, _ := c.Forward(0)
		last, _ := c.Forward(c.Size() - 1)
		if first.Manhattan(last) != 1 {
			t.Errorf("order %d: last %v not adjacent to first %v", order, last, first)
		}
	}
}

func TestMooreRejectsLowOrders(t *testing.T) {
	for _, order := range []int{1, 0, -3} {
		c, err := curve.NewMoore(order)
		if c != nil {
			t.Errorf("NewMoore(%d) returned a curve, expected nil", order)
		}
		if !errors.Is(err, curve.ErrMooreOrder) {
			t.Errorf("NewMoore(%d) error = %v, expected ErrMooreOrder", order, err)
		}
		if !errors.Is(err, curve.ErrPrecondition) {
			t.Errorf("NewMoore(%d) error should wrap ErrPrecondition", order)
		}
	}
}

func TestMooreOrderTooLarge(t *testing.T) {
	_, err := curve.NewMoore(curve.MaxOrder + 1)
	if !errors.Is(err, curve.ErrOrderRange) {
		t.Errorf("NewMoore(MaxOrder+1) error = %v, expected ErrOrderRange", err)
	}
}
