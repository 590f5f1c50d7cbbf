package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spacefill/internal/storage"
)

var (
	flagCircular bool
	flagFormat   string
	flagStored   bool
)

// lookupResult is one row of lookup/locate output.
type lookupResult struct {
	Step  int  `yaml:"step"`
	X     int  `yaml:"x"`
	Y     int  `yaml:"y"`
	Valid bool `yaml:"valid"`
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <index>...",
	Short: "Map step indices to grid cells",
	Long: `Print the cell visited at each step index. Indices outside the curve
are reported as absent unless --circular is set, which wraps them
modulo the curve size (negative indices count back from the end).

Examples:
  sfc lookup --kind moore --order 3 0 1 2
  sfc lookup --order 3 --circular -- -1 64
  sfc lookup --order 3 --format yaml 5`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLookup,
}

var locateCmd = &cobra.Command{
	Use:   "locate <x> <y>",
	Short: "Map a grid cell to its step index",
	Long: `Print the step index at which the curve visits cell (x, y).
With --stored, read the answer from the exported lookup table instead
of building the curve.

Examples:
  sfc locate --kind hilbert --order 2 3 0
  sfc locate --order 6 --stored 10 20`,
	Args: cobra.ExactArgs(2),
	Run:  runLocate,
}

func init() {
	lookupCmd.Flags().BoolVar(&flagCircular, "circular", false, "Wrap indices modulo the curve size")
	lookupCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
	locateCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
	locateCmd.Flags().BoolVar(&flagStored, "stored", false, "Answer from the exported lookup table")
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func printResults(results []lookupResult) {
	if flagFormat == "yaml" {
		data, err := yaml.Marshal(results)
		if err != nil {
			logger.Error("cannot encode results", "err", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
		return
	}

	for _, r := range results {
		if r.Valid {
			fmt.Printf("%d\t(%d,%d)\n", r.Step, r.X, r.Y)
		} else {
			fmt.Printf("%d\t(%d,%d)\tabsent\n", r.Step, r.X, r.Y)
		}
	}
}

func runLookup(cmd *cobra.Command, args []string) {
	indices, err := parseInts(args)
	if err != nil {
		logger.Error("bad index", "err", err)
		os.Exit(1)
	}

	c := mustBuildCurve()

	results := make([]lookupResult, len(indices))
	for k, i := range indices {
		if flagCircular {
			p := c.ForwardCircular(i)
			results[k] = lookupResult{Step: i, X: p.X, Y: p.Y, Valid: true}
			continue
		}
		p, ok := c.Forward(i)
		results[k] = lookupResult{Step: i, X: p.X, Y: p.Y, Valid: ok}
	}
	printResults(results)
}

func runLocate(cmd *cobra.Command, args []string) {
	xy, err := parseInts(args)
	if err != nil {
		logger.Error("bad coordinate", "err", err)
		os.Exit(1)
	}
	x, y := xy[0], xy[1]

	var step int
	var ok bool
	if flagStored {
		step, ok = locateStored(x, y)
	} else {
		step, ok = mustBuildCurve().Backward(x, y)
	}

	printResults([]lookupResult{{Step: step, X: x, Y: y, Valid: ok}})
}

func locateStored(x, y int) (int, bool) {
	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		logger.Error("cannot open lookup table database", "path", settings.Storage.DBPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	step, ok, err := store.LookupStep(settings.Curve.Kind, settings.Curve.Order, x, y)
	if err != nil {
		store.Close()
		logger.Error("stored lookup failed", "err", err)
		logger.Info("run 'sfc export' first to store the table")
		os.Exit(1)
	}
	return step, ok
}
