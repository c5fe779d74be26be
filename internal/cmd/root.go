package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promptline",
		Short: "Persistent two-line prompt/status display for terminals",
		Long: "promptline keeps a user-input prompt line and an independently updatable\n" +
			"status line anchored near the bottom of the terminal, surviving scrolling\n" +
			"output and degrading to plain lines on terminals without cursor addressing.",
	}

	rootCmd.AddCommand(
		newDemoCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
