package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gnuvince/gore/internal/config"
)

// ErrReported is returned once a compile error has been printed to stderr.
var ErrReported = errors.New("errors reported")

var (
	cfgFile string
	verbose bool
	format  string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gore",
	Short: "GoLite front end",
	Long: `gore scans and parses GoLite source files.

Commands:
  tokens  - print the token stream, with inserted semicolons
  parse   - print the syntax tree as YAML

A missing file argument or "-" reads standard input.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: text or yaml (overrides config)")
}

func setup(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if format != "" {
		c.Output.Format = format
		if err := c.Validate(); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}

	level, err := c.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	cfg = c
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", "path", path, "format", cfg.Output.Format)
	return nil
}
