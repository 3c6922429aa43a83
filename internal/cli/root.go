// Package cli wires the ire CLI's Cobra commands: fit and report.
package cli

import "github.com/spf13/cobra"

// NewRootCommand builds the top-level "ire" command with its fit and
// report subcommands attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ire",
		Short: "Discover congestion weak points via spanning-tree mixtures",
	}

	root.AddCommand(newFitCommand())
	root.AddCommand(newReportCommand())

	return root
}
