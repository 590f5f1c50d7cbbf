package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sfc.yaml")
	doc := "curve:\n  kind: hilbert\n  order: 5\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Curve.Kind != "hilbert" || cfg.Curve.Order != 5 {
		t.Errorf("curve = %+v, expected hilbert order 5", cfg.Curve)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Render != DefaultConfig().Render {
		t.Errorf("render = %+v, expected defaults", cfg.Render)
	}
	level, err := cfg.LogLevel()
	if err != nil || level != log.DebugLevel {
		t.Errorf("LogLevel() = %v, %v, expected debug", level, err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("curve: [unterminated"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() error = %v, expected parse failure", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"hilbert order zero", func(c *Config) { c.Curve.Kind = "hilbert"; c.Curve.Order = 0 }, false},
		{"unknown kind", func(c *Config) { c.Curve.Kind = "peano" }, true},
		{"negative order", func(c *Config) { c.Curve.Order = -1 }, true},
		{"order too large", func(c *Config) { c.Curve.Order = 99 }, true},
		{"moore order one", func(c *Config) { c.Curve.Order = 1 }, true},
		{"multi-rune node", func(c *Config) { c.Render.Node = "<>" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNodeRune(t *testing.T) {
	if r := (RenderConfig{Node: "#"}).NodeRune(); r != '#' {
		t.Errorf("NodeRune() = %q, expected '#'", r)
	}
	if r := (RenderConfig{}).NodeRune(); r != 0 {
		t.Errorf("NodeRune() of empty node = %q, expected 0", r)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/curves.db")
	if err != nil || got != "/tmp/curves.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.sfc/curves.db")
	if err != nil || got != filepath.Join(home, ".sfc", "curves.db") {
		t.Errorf("ExpandHome(~) = %q, %v", got, err)
	}
}
