// Command hostfs exposes the hostfs platform layer on the command line.
package main

import (
	"os"

	"github.com/jmgilman/go/hostfs/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(cli.Options{Version: version}, nil); err != nil {
		os.Exit(1)
	}
}
