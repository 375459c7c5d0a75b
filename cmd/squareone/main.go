// Command squareone is the SquareOne Journey command line and terminal UI.
package main

import (
	"fmt"
	"os"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/cli"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	err := cli.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
