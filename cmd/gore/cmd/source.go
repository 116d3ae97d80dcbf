package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnuvince/gore/internal/diag"
)

const stdinName = "-"

// readSource returns the file named by args, or standard input when there is
// no argument or the argument is "-".
func readSource(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == stdinName {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("reading standard input: %w", err)
		}
		return stdinName, src, nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("reading source: %w", err)
	}
	return args[0], src, nil
}

// report prints a compile error with its source snippet. Other errors are
// passed through for main to print.
func report(cmd *cobra.Command, filename string, src []byte, err error) error {
	var derr *diag.Error
	if !errors.As(err, &derr) {
		return err
	}

	f := diag.NewFormatter(cmd.ErrOrStderr(),
		diag.WithContextLines(cfg.Diagnostics.ContextLines),
		diag.WithCodes(cfg.Diagnostics.ShowCodes),
		diag.WithColor(cfg.Output.Color),
	)
	f.AddSource(filename, src)
	f.Format(derr.ToDiagnostic())

	logger.Debug("compilation failed", "stage", derr.Stage(), "code", derr.Kind.Code())
	return ErrReported
}
