// Package config loads the optional YAML configuration consumed by the
// CLI tools. Flags and environment variables override file values.
package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region types

// Config holds CLI-level settings.
type Config struct {
	MaxIterations int           `yaml:"max_iterations"`
	Verbose       bool          `yaml:"verbose"`
	Archive       ArchiveConfig `yaml:"archive"`
}

// ArchiveConfig controls the optional decode-run archive.
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// #endregion

// #region defaults

// Default returns the standard configuration.
func Default() Config {
	return Config{
		MaxIterations: 10,
		Archive: ArchiveConfig{
			Path: "peeler_runs.db",
		},
	}
}

// #endregion

// #region load

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.MaxIterations <= 0 {
		return Config{}, fmt.Errorf("max_iterations must be positive, got %d", cfg.MaxIterations)
	}
	if cfg.Archive.Enabled && cfg.Archive.Path == "" {
		return Config{}, fmt.Errorf("archive.path required when archive is enabled")
	}
	return cfg, nil
}

// #endregion
