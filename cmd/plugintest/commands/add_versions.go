package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAddVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-versions --props-file <file> <dep...>",
		Short: "Append known dependency versions to a versions.props file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			propsFile, _ := cmd.Flags().GetString("props-file")
			return c.app.AddVersions(propsFile, args)
		},
	}
	cmd.Flags().String("props-file", "versions.props", "File to append to")
	return cmd
}
