package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptline/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the promptline version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "promptline v%s\n", version.Version)
		},
	}
}
