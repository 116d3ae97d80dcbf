package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/astdump"
	"github.com/gnuvince/gore/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its syntax tree as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filename, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	file, err := parser.ParseSource(filename, src)
	if err != nil {
		return report(cmd, filename, src, err)
	}

	nodes := 0
	ast.Walk(file, func(ast.Node) bool {
		nodes++
		return true
	})
	logger.Debug("parsed", "file", filename, "decls", len(file.Decls), "nodes", nodes)

	return astdump.Encode(cmd.OutOrStdout(), astdump.File(file))
}
