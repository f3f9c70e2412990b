// Command hexdump displays file contents in hexadecimal, decimal, octal or
// ASCII.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is the semantic version (set via -ldflags).
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(exitCode(err))
	}
}
