// Package config loads the demo command's settings from an optional YAML
// file. Resolution order: explicit --config flag, PROMPTLINE_CONFIG env
// var, built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable pointing at a config file.
const EnvConfig = "PROMPTLINE_CONFIG"

// Config holds the demo settings.
type Config struct {
	// Prompt is the text of the input line.
	Prompt string `yaml:"prompt"`
	// Status is the base text of the status line.
	Status string `yaml:"status"`
	// Ticks is how many status updates the demo performs.
	Ticks int `yaml:"ticks"`
	// IntervalMS is the delay between updates, in milliseconds.
	IntervalMS int `yaml:"interval_ms"`
}

// Defaults returns the built-in demo settings.
func Defaults() *Config {
	return &Config{
		Prompt:     "> ",
		Status:     "Balance: 100",
		Ticks:      5,
		IntervalMS: 500,
	}
}

// Load reads the config file at path, falling back to PROMPTLINE_CONFIG and
// then to the defaults when no file is given. Values absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Ticks < 0 {
		return nil, fmt.Errorf("parse config %s: ticks must not be negative", path)
	}
	if cfg.IntervalMS < 0 {
		return nil, fmt.Errorf("parse config %s: interval_ms must not be negative", path)
	}
	return cfg, nil
}
