// Package config loads the driver configuration from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is looked up in the working directory when no --config flag is given.
const DefaultPath = "gore.toml"

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the complete driver configuration.
type Config struct {
	LogLevel    string            `toml:"log_level"`
	Output      OutputConfig      `toml:"output"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// OutputConfig controls how tokens and trees are printed.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// DiagnosticsConfig controls how errors are rendered.
type DiagnosticsConfig struct {
	ContextLines int  `toml:"context_lines"`
	ShowCodes    bool `toml:"show_codes"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
		Diagnostics: DiagnosticsConfig{
			ContextLines: 2,
			ShowCodes:    true,
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file
// yields the defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format)
	}
	if c.Diagnostics.ContextLines < 0 {
		return fmt.Errorf("diagnostics.context_lines must not be negative, got %d", c.Diagnostics.ContextLines)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps log_level onto a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
