package curve

import (
	"errors"
	"testing"

	"github.com/vovakirdan/spacefill/internal/core"
)

func TestRecordRejectsDuplicates(t *testing.T) {
	testCases := []struct {
		name  string
		steps []int
		cells []core.Coord
	}{
		{"cell visited twice", []int{0, 1}, []core.Coord{core.C(0, 0), core.C(0, 0)}},
		{"step written twice", []int{0, 0}, []core.Coord{core.C(0, 0), core.C(1, 0)}},
		{"cell outside grid", []int{0}, []core.Coord{core.C(2, 0)}},
		{"step outside range", []int{4}, []core.Coord{core.C(0, 0)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCurve(KindHilbert, 1, false)
			var err error
			for i := range tc.steps {
				if err = c.record(tc.steps[i], tc.cells[i]); err != nil {
					break
				}
			}
			if !errors.Is(err, ErrIncomplete) {
				t.Errorf("record() error = %v, expected ErrIncomplete", err)
			}
		})
	}
}

func TestFinishRequiresEveryStep(t *testing.T) {
	c := newCurve(KindHilbert, 1, false)
	for i, p := range []core.Coord{core.C(0, 0), core.C(1, 0), core.C(1, 1)} {
		if err := c.record(i, p); err != nil {
			t.Fatalf("record(%d) failed: %v", i, err)
		}
	}

	built, err := c.finish()
	if built != nil || !errors.Is(err, ErrIncomplete) {
		t.Errorf("finish() = %v, %v, expected nil and ErrIncomplete", built, err)
	}
}

func TestNewCurveSentinel(t *testing.T) {
	c := newCurve(KindMoore, 2, true)
	for x := range c.backward {
		for y := range c.backward[x] {
			if c.backward[x][y] != unvisited {
				t.Fatalf("backward[%d][%d] = %d before construction, expected %d", x, y, c.backward[x][y], unvisited)
			}
		}
	}
}

func TestBuiltCurveDropsBuildState(t *testing.T) {
	c, err := NewMoore(3)
	if err != nil {
		t.Fatalf("NewMoore(3) failed: %v", err)
	}
	if c.filled != nil {
		t.Error("built curve should release its fill bitmap")
	}
}

func TestVerifyDetectsBrokenTables(t *testing.T) {
	t.Run("swapped steps break adjacency", func(t *testing.T) {
		c, _ := NewHilbert(2)
		a, b := c.forward[1], c.forward[5]
		c.forward[1], c.forward[5] = b, a
		c.backward[a.X][a.Y], c.backward[b.X][b.Y] = 5, 1

		if err := Verify(c); !errors.Is(err, ErrInvariant) {
			t.Errorf("Verify() error = %v, expected ErrInvariant", err)
		}
	})

	t.Run("inconsistent inverse", func(t *testing.T) {
		c, _ := NewHilbert(2)
		c.backward[0][0] = 3

		if err := Verify(c); !errors.Is(err, ErrInvariant) {
			t.Errorf("Verify() error = %v, expected ErrInvariant", err)
		}
	})

	t.Run("open curve marked closed", func(t *testing.T) {
		c, _ := NewHilbert(2)
		c.closed = true

		if err := Verify(c); !errors.Is(err, ErrInvariant) {
			t.Errorf("Verify() error = %v, expected ErrInvariant", err)
		}
	})
}
