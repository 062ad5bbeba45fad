// Command smartenum inspects enumeration catalogs and runs the value
// converter against them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/smartenum/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// Already reported through the output formatter.
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
}
