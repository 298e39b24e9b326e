package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration, loaded from an optional YAML file.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// LogLevel is one of debug|info|warn|error.
	LogLevel string `yaml:"logLevel"`

	// Solver selects the engine: backtrack|sat.
	Solver string `yaml:"solver"`

	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	// Kind is fs|sqlite.
	Kind string `yaml:"kind"`
	// Path is the puzzle directory (fs) or database file (sqlite).
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Solver:   "backtrack",
		Storage:  StorageConfig{Kind: "fs", Path: "./data"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Solver {
	case "", "backtrack", "sat":
	default:
		return cfg, fmt.Errorf("unknown solver %q: must be backtrack or sat", cfg.Solver)
	}
	switch cfg.Storage.Kind {
	case "", "fs", "sqlite":
	default:
		return cfg, fmt.Errorf("unknown storage kind %q: must be fs or sqlite", cfg.Storage.Kind)
	}
	return cfg, nil
}
