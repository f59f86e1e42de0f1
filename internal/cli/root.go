// Package cli provides the command-line interface for docstub.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "docstub",
		Short: "Markdown documentation stubs from source files",
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd.Execute()
}
