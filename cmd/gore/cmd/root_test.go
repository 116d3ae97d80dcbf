package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args and stdin, resetting the flag
// variables that persist between executions.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose, format = "", false, ""
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTokensCommand(t *testing.T) {
	out, _, err := run(t, "x := 1\n", "tokens")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		`-:1:1 <id> "x"`,
		"-:1:3 :=",
		`-:1:6 <int> "1"`,
		"-:1:7 ;",
		"-:2:1 <eof>",
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expected), len(lines), out)
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Fatalf("tests[%d] - wrong token line. expected=%q, got=%q", i, want, lines[i])
		}
	}
}

func TestTokensCommandYAML(t *testing.T) {
	out, _, err := run(t, "x\n", "tokens", "--format", "yaml", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "kind: <id>") || !strings.Contains(out, "lexeme: x") {
		t.Fatalf("expected yaml token entries, got:\n%s", out)
	}
}

func TestParseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	src := "package main\n\nfunc main() {\n\tprintln(1)\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	out, _, err := run(t, "", "parse", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"!File", "!FuncDecl", "!PrintStmt", "!IntLit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestParseCommandReportsErrors(t *testing.T) {
	out, errOut, err := run(t, "package main\nvar = 1\n", "parse")
	if !errors.Is(err, ErrReported) {
		t.Fatalf("expected ErrReported, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no tree on failure, got:\n%s", out)
	}
	if !strings.Contains(errOut, "error[E021]") || !strings.Contains(errOut, "--> -:2:5") {
		t.Fatalf("expected a rendered diagnostic, got:\n%s", errOut)
	}
}

func TestCommandErrors(t *testing.T) {
	_, _, err := run(t, "", "parse", filepath.Join(t.TempDir(), "missing.go"))
	if err == nil || errors.Is(err, ErrReported) || !strings.Contains(err.Error(), "reading source") {
		t.Fatalf("expected an I/O error, got %v", err)
	}

	_, _, err = run(t, "", "tokens", "--format", "json")
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected a format error, got %v", err)
	}

	cfgPath := filepath.Join(t.TempDir(), "gore.toml")
	if err := os.WriteFile(cfgPath, []byte("[output]\nformat = \"yaml\"\ncolor = false\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	out, _, err := run(t, "y\n", "tokens", "--config", cfgPath)
	if err != nil || !strings.Contains(out, "kind: <id>") {
		t.Fatalf("expected the config to select yaml, got %v:\n%s", err, out)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, errOut, err := run(t, "package main\n", "parse", "-v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut, "level=DEBUG") || !strings.Contains(errOut, "msg=parsed") {
		t.Fatalf("expected debug logs, got:\n%s", errOut)
	}
}
