// Public domain.

// Package config reads the snflog configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all snflog settings.
type Config struct {
	Reconstruct ReconstructConfig `toml:"reconstruct"`
	Log         LogConfig         `toml:"log"`
	Output      OutputConfig      `toml:"output"`
}

// ReconstructConfig controls run log reconstruction.
type ReconstructConfig struct {
	AllowUnknownScripts bool `toml:"allow_unknown_scripts"`
	ScalaExposures      int  `toml:"scala_exposures"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// OutputConfig selects how reconstructed runs are written.
type OutputConfig struct {
	Format string `toml:"format"` // summary, yaml
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		Reconstruct: ReconstructConfig{ScalaExposures: 100},
		Log:         LogConfig{Level: "info", Format: "text"},
		Output:      OutputConfig{Format: "summary"},
	}
}

// Load reads a TOML configuration file over the defaults.  A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q, want text or json", c.Log.Format)
	}
	switch c.Output.Format {
	case "summary", "yaml":
	default:
		return fmt.Errorf("output format %q, want summary or yaml", c.Output.Format)
	}
	if c.Reconstruct.ScalaExposures < 1 {
		return fmt.Errorf("scala_exposures %d, want at least 1",
			c.Reconstruct.ScalaExposures)
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return lv, nil
}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "snflog", "config.toml")
}
