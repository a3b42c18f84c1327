// Package main provides the entry point for the slovar dictionary.
package main

import (
	"os"

	"github.com/slovar-dev/slovar/cmd/slovar/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
