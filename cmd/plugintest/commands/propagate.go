package commands

import (
	"fmt"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/engine/propagate"
	"github.com/spf13/cobra"
)

func (c *CLI) newPropagateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propagate",
		Short: "Write the dependency versions of a configuration for test processes",
		Long: "Computes the dependency versions of a configuration and writes them through the\n" +
			"selected transport. The environment a test process needs is printed as KEY=VALUE lines.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := propagateOptions(cmd)
			if err != nil {
				return err
			}

			result, err := c.app.Propagate(cmd.Context(), c.configPath, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, kv := range result.Env {
				_, _ = fmt.Fprintln(out, kv)
			}
			return nil
		},
	}
	addPropagateFlags(cmd)
	cmd.Flags().BoolP("force", "f", false, "Rewrite the output even when it is up to date")
	return cmd
}

func addPropagateFlags(cmd *cobra.Command) {
	cmd.Flags().String("configuration", "", "Configuration whose dependencies are propagated")
	cmd.Flags().StringP("transport", "t", "", "Transport: file or variable")
	cmd.Flags().StringP("output", "o", "", "Output file of the file transport")
	cmd.Flags().StringSlice("gradle-versions", nil, "Gradle versions to test against")
	cmd.Flags().Bool("ignore-deprecations", true, "Ask test processes to ignore gradle deprecations")
}

// propagateOptions reads the flags added by addPropagateFlags. Unset flags keep the build model settings.
func propagateOptions(cmd *cobra.Command) (propagate.Options, error) {
	flags := cmd.Flags()

	configuration, _ := flags.GetString("configuration")
	transportName, _ := flags.GetString("transport")
	output, _ := flags.GetString("output")

	opts := propagate.Options{
		Configuration: configuration,
		OutputFile:    output,
	}

	if flags.Changed("gradle-versions") {
		opts.GradleVersions, _ = flags.GetStringSlice("gradle-versions")
	}

	if transportName != "" {
		transport, err := domain.ParseTransport(transportName)
		if err != nil {
			return propagate.Options{}, err
		}
		opts.Transport = transport
	}

	if flags.Changed("ignore-deprecations") {
		ignore, _ := flags.GetBool("ignore-deprecations")
		opts.IgnoreDeprecations = &ignore
	}

	if flags.Lookup("force") != nil {
		opts.Force, _ = flags.GetBool("force")
	}

	return opts, nil
}
