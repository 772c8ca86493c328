// cmdntfy - run a command and push its output to an ntfy endpoint

package main

import (
	"os"

	"github.com/ariel-frischer/cmdntfy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
