package commands

import (
	"github.com/palantir/gradle-plugin-testing/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List the dependency coordinates of a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, _ := cmd.Flags().GetString("configuration")
			includeParents, _ := cmd.Flags().GetBool("include-parents")
			find, _ := cmd.Flags().GetString("find")

			return c.app.Deps(cmd.OutOrStdout(), c.configPath, app.DepsOptions{
				Configuration:  configuration,
				IncludeParents: includeParents,
				Find:           find,
			})
		},
	}
	cmd.Flags().String("configuration", "", "Configuration to inspect (defaults to the propagated one)")
	cmd.Flags().BoolP("include-parents", "p", false, "Include dependencies of extended configurations")
	cmd.Flags().String("find", "", "Find a coordinate in the resolved dependency graph")
	return cmd
}
