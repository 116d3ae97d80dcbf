package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gore.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
	if cfg.Output.Format != FormatText {
		t.Fatalf("expected text output by default, got %q", cfg.Output.Format)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelInfo {
		t.Fatalf("expected info level, got %s", lvl)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected defaults for a missing file, got %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	cfg, err = Load("")
	if err != nil || *cfg != *Default() {
		t.Fatalf("expected defaults for an empty path, got %+v (err %v)", cfg, err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[output]
format = "yaml"

[diagnostics]
context_lines = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatYAML {
		t.Fatalf("expected yaml, got %q", cfg.Output.Format)
	}
	if !cfg.Output.Color || !cfg.Diagnostics.ShowCodes {
		t.Fatalf("expected keys left out of the file to keep their defaults, got %+v", cfg)
	}
	if cfg.Diagnostics.ContextLines != 0 {
		t.Fatalf("expected context_lines 0, got %d", cfg.Diagnostics.ContextLines)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Fatalf("expected debug level, got %s", lvl)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{"[output]\nformat = \"json\"\n", "output.format"},
		{"[diagnostics]\ncontext_lines = -1\n", "context_lines"},
		{"log_level = \"loud\"\n", "log_level"},
		{"colour = true\n", "unknown config keys"},
		{"[output\n", "failed to parse"},
	}

	for i, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if err == nil || !strings.Contains(err.Error(), tt.expected) {
			t.Fatalf("tests[%d] - expected error containing %q, got %v", i, tt.expected, err)
		}
	}
}
