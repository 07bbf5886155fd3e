package main

import (
	"os"

	"github.com/leyware/tenetlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
