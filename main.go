package main

import (
	"os"

	"github.com/jansampark/fieldwatch/cmd"
)

var (
	version  = "UNKNOWN"
	revision = "UNKNOWN"
)

func main() {
	cmd.Version = version
	cmd.Revision = revision
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
