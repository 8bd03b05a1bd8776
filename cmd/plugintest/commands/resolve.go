package commands

import (
	"github.com/palantir/gradle-plugin-testing/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [coordinate...]",
		Short: "Print dependency versions as a test process sees them",
		Long: "Reads the version source selected by TEST_DEPENDENCIES_SOURCE and prints\n" +
			"group:name:version for each coordinate. A coordinate without its own entry\n" +
			"falls back to the version of its organization.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionOnly, _ := cmd.Flags().GetBool("version-only")
			all, _ := cmd.Flags().GetBool("all")

			if len(args) == 0 && !all {
				_ = cmd.Help()
				return nil
			}

			return c.app.Resolve(cmd.OutOrStdout(), args, app.ResolveOptions{
				VersionOnly: versionOnly,
				All:         all,
			})
		},
	}
	cmd.Flags().Bool("version-only", false, "Print only the version")
	cmd.Flags().BoolP("all", "a", false, "Print every known entry")
	return cmd
}
