// Package config provides YAML-based configuration loading for the sfc
// command: default curve, plot styling, logging and storage location.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	// Registers the curve kinds checked by Validate.
	_ "github.com/vovakirdan/spacefill/internal/curve"
	"github.com/vovakirdan/spacefill/internal/registry"
)

// Config is the top-level configuration document.
type Config struct {
	Curve   CurveConfig   `yaml:"curve"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// CurveConfig selects the curve used when a command is given no kind or order.
type CurveConfig struct {
	Kind  string `yaml:"kind"`  // Registered kind, "hilbert" or "moore"
	Order int    `yaml:"order"` // Recursion depth
}

// RenderConfig defines how plots look in the terminal.
type RenderConfig struct {
	Node       string `yaml:"node"`        // Single glyph for visited cells
	Color      string `yaml:"color"`       // ANSI colour of the path
	StartColor string `yaml:"start_color"` // ANSI colour of step 0
	EndColor   string `yaml:"end_color"`   // ANSI colour of the last step
}

// LogConfig defines logging behaviour.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig defines where exported lookup tables are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// NodeRune returns the configured node glyph, or 0 when unset.
func (r RenderConfig) NodeRune() rune {
	if r.Node == "" {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(r.Node)
	return ch
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	info, ok := registry.Lookup(c.Curve.Kind)
	if !ok {
		return fmt.Errorf("config: unknown curve kind %q", c.Curve.Kind)
	}
	if c.Curve.Order < info.MinOrder || c.Curve.Order > info.MaxOrder {
		return fmt.Errorf("config: %s order %d outside %d..%d", info.ID, c.Curve.Order, info.MinOrder, info.MaxOrder)
	}
	if utf8.RuneCountInString(c.Render.Node) > 1 {
		return fmt.Errorf("config: render node %q must be a single glyph", c.Render.Node)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
