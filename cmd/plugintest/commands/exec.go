package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [flags] -- <command...>",
		Short: "Propagate dependency versions, then run a test command with them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := propagateOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Exec(cmd.Context(), c.configPath, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().SetInterspersed(false)
	addPropagateFlags(cmd)
	return cmd
}
