package config

import (
	_ "embed"
)

//go:embed defaults/sfc.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Curve: CurveConfig{
			Kind:  "moore",
			Order: 3,
		},
		Render: RenderConfig{
			Node:       "●",
			Color:      "6",
			StartColor: "2",
			EndColor:   "1",
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.sfc/curves.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
