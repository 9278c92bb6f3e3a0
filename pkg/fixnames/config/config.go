// Package config loads user defaults for fixnames from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arthur-debert/fixnames/pkg/fixnames"
)

// DefaultMaxStdin is the default cap on paths read from standard input
const DefaultMaxStdin = 4096

// Config holds the values a config file may set. Unset keys keep the
// built-in defaults.
type Config struct {
	RenameDirectories bool `toml:"rename_directories"`
	CollapseDots      bool `toml:"collapse_dots"`
	Lowercase         bool `toml:"lowercase"`
	Verbose           bool `toml:"verbose"`
	// MaxStdin caps how many paths are read from stdin; 0 means no limit.
	MaxStdin int `toml:"max_stdin"`
}

// Default returns the default configuration
func Default() Config {
	opts := fixnames.DefaultOptions()
	return Config{
		RenameDirectories: opts.RenameDirectories,
		CollapseDots:      opts.CollapseDots,
		Lowercase:         opts.Lowercase,
		Verbose:           opts.Verbose,
		MaxStdin:          DefaultMaxStdin,
	}
}

// Options converts the configuration into batch options. Dry run is never
// read from a file.
func (c Config) Options() fixnames.Options {
	return fixnames.Options{
		RenameDirectories: c.RenameDirectories,
		CollapseDots:      c.CollapseDots,
		Lowercase:         c.Lowercase,
		Verbose:           c.Verbose,
	}
}

// Validate checks values that TOML typing cannot rule out
func (c Config) Validate() error {
	if c.MaxStdin < 0 {
		return fmt.Errorf("max_stdin must not be negative, got %d", c.MaxStdin)
	}
	return nil
}

// Path returns the default config file location:
// $XDG_CONFIG_HOME/fixnames/config.toml, or ~/.config/fixnames/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fixnames", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fixnames", "config.toml"), nil
}

// Load reads the config file at the default location.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return loadFile(path, false)
}

// LoadFile reads an explicitly named config file, which must exist.
func LoadFile(path string) (Config, error) {
	return loadFile(path, true)
}

func loadFile(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}
