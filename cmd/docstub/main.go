// Package main provides the docstub CLI.
package main

import (
	"os"

	"github.com/docstub-labs/docstub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
