package main

import (
	"os"

	"github.com/jakoblorz/wpblocks/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
