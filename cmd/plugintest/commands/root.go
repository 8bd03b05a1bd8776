// Package commands implements the CLI commands for plugintest.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/palantir/gradle-plugin-testing/internal/app"
	"github.com/palantir/gradle-plugin-testing/internal/build"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/engine/propagate"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for plugintest.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	logFormat  string
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(format string)
	Propagate(ctx context.Context, configPath string, opts propagate.Options) (*propagate.Result, error)
	Exec(ctx context.Context, configPath string, opts propagate.Options, args []string, stdout, stderr io.Writer) error
	Resolve(w io.Writer, coords []string, opts app.ResolveOptions) error
	Deps(w io.Writer, configPath string, opts app.DepsOptions) error
	GradleVersions(w io.Writer, sorted bool) error
	AddVersions(propsFile string, deps []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "plugintest",
		Short:         "Hand dependency versions from a build to its plugin tests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.ConfigureLogging(c.logFormat)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.ConfigFileName, "Path to the build model file")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "auto", "Log format: auto, pretty, or json")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newPropagateCmd())
	rootCmd.AddCommand(c.newExecCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newGradleVersionsCmd())
	rootCmd.AddCommand(c.newAddVersionsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
