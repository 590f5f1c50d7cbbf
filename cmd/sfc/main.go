// sfc builds Hilbert and Moore space-filling curves and queries their
// index/coordinate mappings from the terminal.
//
// Usage:
//
//	sfc list                    - List available curve kinds
//	sfc show                    - Plot a curve as text
//	sfc lookup <index>...       - Map step indices to cells
//	sfc locate <x> <y>          - Map a cell to its step index
//	sfc verify                  - Check curve invariants
//	sfc export                  - Store lookup tables in SQLite
//
// Global flags:
//
//	--kind <name>      - Curve kind (default from config)
//	--order <n>        - Curve order (default from config)
//	--config <path>    - Configuration file
//	--log-level <lvl>  - debug, info, warn, error
//	--db <path>        - Lookup table database (default: ~/.sfc/curves.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefill/internal/config"
	"github.com/vovakirdan/spacefill/internal/registry"

	// Import curve kinds to register them
	_ "github.com/vovakirdan/spacefill/internal/curve"
)

var (
	// Global flags
	flagKind     string
	flagOrder    int
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
)

var (
	settings config.Config
	logger   = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sfc",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sfc",
	Short: "Space-filling curve generator",
	Long: `sfc builds Hilbert and Moore curves over 2^n x 2^n grids and maps
between a step index along the curve and the grid cell it visits.

Available commands:
  list     - Show all curve kinds
  show     - Plot a curve
  lookup   - Step index to cell
  locate   - Cell to step index
  verify   - Check bijection, adjacency and closure
  export   - Store lookup tables in SQLite

Examples:
  sfc list
  sfc show --kind hilbert --order 3
  sfc lookup --kind moore --order 4 0 1 -1
  sfc locate --order 4 7 3
  sfc verify --all
  sfc export --kind moore --order 6`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagKind, "kind", "k", "", "Curve kind (default from config)")
	rootCmd.PersistentFlags().IntVarP(&flagOrder, "order", "o", -1, "Curve order (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to lookup table database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadSettings resolves configuration and applies flag overrides.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagKind != "" {
		cfg.Curve.Kind = flagKind
	}
	if flagOrder >= 0 {
		cfg.Curve.Order = flagOrder
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	settings = cfg
	logger.Debug("settings loaded", "kind", cfg.Curve.Kind, "order", cfg.Curve.Order, "db", cfg.Storage.DBPath)
	return nil
}

// buildCurve constructs the configured curve and logs how long it took.
func buildCurve(kind string, order int) (registry.Curve, error) {
	if !registry.Exists(kind) {
		return nil, fmt.Errorf("unknown curve kind %q (run 'sfc list')", kind)
	}

	start := time.Now()
	c, err := registry.Build(kind, order)
	if err != nil {
		return nil, err
	}
	logger.Debug("curve built",
		"kind", c.Kind(),
		"order", c.Order(),
		"side", c.Side(),
		"size", c.Size(),
		"elapsed", time.Since(start),
	)
	return c, nil
}

// mustBuildCurve builds the configured curve or exits.
func mustBuildCurve() registry.Curve {
	c, err := buildCurve(settings.Curve.Kind, settings.Curve.Order)
	if err != nil {
		logger.Error("cannot build curve", "kind", settings.Curve.Kind, "order", settings.Curve.Order, "err", err)
		os.Exit(1)
	}
	return c
}
