package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGradleVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradle-versions",
		Short: "Print the gradle versions plugin tests run against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sorted, _ := cmd.Flags().GetBool("sorted")
			return c.app.GradleVersions(cmd.OutOrStdout(), sorted)
		},
	}
	cmd.Flags().Bool("sorted", false, "Sort by version instead of declaration order")
	return cmd
}
