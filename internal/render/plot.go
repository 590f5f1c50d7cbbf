// Package render draws curves into core.Screen buffers and converts them
// to text, optionally styled for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/spacefill/internal/core"
	"github.com/vovakirdan/spacefill/internal/registry"
)

// DefaultNode is the glyph drawn on visited cells.
const DefaultNode = '●'

// PlotSize returns the screen dimensions Plot needs for a curve of the
// given side: one column and row per cell plus one between neighbours.
func PlotSize(side int) (w, h int) {
	n := 2*side - 1
	return n, n
}

// Plot draws the path of c with node on every cell and box-drawing
// segments between consecutive steps. Closed curves include the segment
// from the last step back to the first. Y grows upward, so row 0 of the
// screen holds the top row of the grid.
func Plot(c registry.Curve, node rune) *core.Screen {
	if node == 0 {
		node = DefaultNode
	}

	side := c.Side()
	w, h := PlotSize(side)
	s := core.NewScreen(w, h)

	toScreen := func(p core.Coord) (int, int) {
		return 2 * p.X, 2 * (side - 1 - p.Y)
	}

	segments := c.Size() - 1
	if c.Closed() && c.Size() > 1 {
		segments = c.Size()
	}
	for i := 0; i < segments; i++ {
		a := c.ForwardCircular(i)
		b := c.ForwardCircular(i + 1)
		ax, ay := toScreen(a)
		bx, by := toScreen(b)
		mx, my := (ax+bx)/2, (ay+by)/2
		if ay == by {
			s.SetCell(mx, my, '─', core.ColorPath)
		} else {
			s.SetCell(mx, my, '│', core.ColorPath)
		}
	}

	for i := 0; i < c.Size(); i++ {
		x, y := toScreen(c.ForwardCircular(i))
		color := core.ColorNode
		switch i {
		case 0:
			color = core.ColorStart
		case c.Size() - 1:
			color = core.ColorEnd
		}
		s.SetCell(x, y, node, color)
	}

	return s
}

// IndexTable lists the step index of every cell, top row first, with
// columns padded to the width of the largest index.
func IndexTable(c registry.Curve) string {
	side := c.Side()
	width := len(fmt.Sprint(c.Size() - 1))

	var sb strings.Builder
	for y := side - 1; y >= 0; y-- {
		for x := 0; x < side; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			i, _ := c.Backward(x, y)
			fmt.Fprintf(&sb, "%*d", width, i)
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
