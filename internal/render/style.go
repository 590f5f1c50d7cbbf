package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacefill/internal/core"
)

// Theme maps plot roles to terminal styles.
type Theme map[core.Color]lipgloss.Style

// NewTheme builds a theme from ANSI colour values ("6", "208", "#ff8800").
// Empty values leave the role unstyled.
func NewTheme(path, start, end string) Theme {
	th := Theme{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorPath:    lipgloss.NewStyle(),
		core.ColorNode:    lipgloss.NewStyle(),
		core.ColorStart:   lipgloss.NewStyle().Bold(true),
		core.ColorEnd:     lipgloss.NewStyle().Bold(true),
	}
	if path != "" {
		th[core.ColorPath] = lipgloss.NewStyle().Foreground(lipgloss.Color(path))
		th[core.ColorNode] = lipgloss.NewStyle().Foreground(lipgloss.Color(path))
	}
	if start != "" {
		th[core.ColorStart] = th[core.ColorStart].Foreground(lipgloss.Color(start))
	}
	if end != "" {
		th[core.ColorEnd] = th[core.ColorEnd].Foreground(lipgloss.Color(end))
	}
	return th
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, th Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := th[startColor]
			if !ok {
				style = th[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
