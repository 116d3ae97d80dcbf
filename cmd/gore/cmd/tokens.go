package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnuvince/gore/internal/astdump"
	"github.com/gnuvince/gore/internal/config"
	"github.com/gnuvince/gore/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	filename, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	toks, err := lexer.ScanAll(filename, src)
	if err != nil {
		return report(cmd, filename, src, err)
	}
	logger.Debug("scanned", "file", filename, "tokens", len(toks))

	out := cmd.OutOrStdout()
	if cfg.Output.Format == config.FormatYAML {
		return astdump.Encode(out, astdump.Tokens(toks))
	}
	for _, tok := range toks {
		if _, err := fmt.Fprintln(out, tok); err != nil {
			return fmt.Errorf("writing tokens: %w", err)
		}
	}
	return nil
}
