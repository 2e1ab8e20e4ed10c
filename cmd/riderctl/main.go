// Package main is the entry point for the riderctl CLI.
package main

import (
	"os"

	"github.com/thoreinstein/riderctl/cmd/riderctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ReportError(os.Stderr, err))
	}
}
