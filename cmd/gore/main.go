package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gnuvince/gore/cmd/gore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Fprintf(os.Stderr, "gore: %v\n", err)
		}
		os.Exit(1)
	}
}
