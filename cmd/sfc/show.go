package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacefill/internal/render"
)

var (
	flagIndices bool
	flagPlain   bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Plot a curve",
	Long: `Draw the path of a curve with box-drawing characters. Step 0 and the
last step are highlighted; closed curves include the closing segment.
With --indices, print the step index of every cell instead.

Examples:
  sfc show --kind hilbert --order 3
  sfc show --kind moore --order 2 --indices
  sfc show --plain > moore.txt`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagIndices, "indices", false, "Print the step index table instead of the path")
	showCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colours")
}

func runShow(cmd *cobra.Command, args []string) {
	c := mustBuildCurve()

	if flagIndices {
		fmt.Println(render.IndexTable(c))
		return
	}

	w, _ := render.PlotSize(c.Side())
	if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > tw {
		logger.Warn("plot is wider than the terminal", "plot", w, "terminal", tw)
	}

	screen := render.Plot(c, settings.Render.NodeRune())

	fmt.Printf("%s order %d (%dx%d, %d steps)\n\n", c.Kind(), c.Order(), c.Side(), c.Side(), c.Size())
	if flagPlain {
		fmt.Println(screen.String())
		return
	}

	theme := render.NewTheme(settings.Render.Color, settings.Render.StartColor, settings.Render.EndColor)
	fmt.Println(render.RenderScreen(screen, theme))
}
