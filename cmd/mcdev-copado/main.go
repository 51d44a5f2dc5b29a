// Package main holds the command line interface around the mcdev helpers. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"fmt"
	"os"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

func main() {
	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)

	// Execution errors carry the exit code of the failed sub-process; it becomes our own exit code so that the
	// surrounding pipeline sees the original status.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.WithDecoration(err))

		if e, ok := errors.AsExecutionError(err); ok {
			os.Exit(e.Code)
		}
		os.Exit(1)
	}
}
