// Package main is the entry point for the robotfmt CLI.
package main

import (
	"os"

	"github.com/MarketSquare/robotfmt/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
