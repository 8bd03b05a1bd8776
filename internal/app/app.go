// Package app implements the application layer for plugintest.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/detector"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"github.com/palantir/gradle-plugin-testing/internal/engine/coordinates"
	"github.com/palantir/gradle-plugin-testing/internal/engine/propagate"
	"github.com/palantir/gradle-plugin-testing/internal/engine/testcontent"
	"github.com/palantir/gradle-plugin-testing/internal/engine/versionstore"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	task         *propagate.Task
	executor     ports.Executor
	sources      ports.VersionSourceFactory
	writer       ports.LineWriter
	env          ports.Environment
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	task *propagate.Task,
	executor ports.Executor,
	sources ports.VersionSourceFactory,
	writer ports.LineWriter,
	env ports.Environment,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		task:         task,
		executor:     executor,
		sources:      sources,
		writer:       writer,
		env:          env,
		logger:       log,
	}
}

type jsonSwitcher interface {
	SetJSON(enable bool)
}

// ConfigureLogging applies the --log-format flag. Loggers without a JSON mode are left alone.
func (a *App) ConfigureLogging(format string) {
	resolved := detector.ResolveFormat(detector.DetectEnvironment(), format)
	if l, ok := a.logger.(jsonSwitcher); ok {
		l.SetJSON(resolved == detector.FormatJSON)
	}
}

// Propagate loads the build model at configPath and writes its dependency transport.
func (a *App) Propagate(ctx context.Context, configPath string, opts propagate.Options) (*propagate.Result, error) {
	_, result, err := a.propagate(ctx, configPath, opts)
	return result, err
}

// Exec propagates the dependency transport and runs args as a test process with it.
func (a *App) Exec(
	ctx context.Context,
	configPath string,
	opts propagate.Options,
	args []string,
	stdout, stderr io.Writer,
) error {
	if len(args) == 0 {
		return domain.ErrNoCommandSpecified
	}

	project, result, err := a.propagate(ctx, configPath, opts)
	if err != nil {
		return err
	}

	return a.executor.Execute(ctx, &domain.Process{
		Args: args,
		Dir:  project.Root,
		Env:  result.Env,
	}, stdout, stderr)
}

func (a *App) propagate(
	ctx context.Context,
	configPath string,
	opts propagate.Options,
) (*domain.Project, *propagate.Result, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	result, err := a.task.Run(ctx, project, opts)
	if err != nil {
		return nil, nil, err
	}
	return project, result, nil
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// VersionOnly prints bare versions instead of full coordinates.
	VersionOnly bool
	// All prints every known entry after the requested coordinates.
	All bool
}

// Resolve prints the versions of coordinates as seen by a test process in this environment.
func (a *App) Resolve(w io.Writer, coords []string, opts ResolveOptions) error {
	store, err := a.versionStore()
	if err != nil {
		return err
	}

	for _, coord := range coords {
		var line string
		if opts.VersionOnly {
			line, err = store.Version(coord)
		} else {
			line, err = store.Resolve(coord)
		}
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, line)
	}

	if !opts.All {
		return nil
	}

	entries, err := store.Entries()
	if err != nil {
		return err
	}
	for key, version := range entries.All() {
		_, _ = fmt.Fprintf(w, "%s = %s\n", key, version)
	}
	return nil
}

// DepsOptions configuration for the Deps method.
type DepsOptions struct {
	Configuration  string
	IncludeParents bool

	// Find searches the resolved graph for a coordinate instead of listing declared dependencies.
	Find string
}

// Deps prints the declared dependency coordinates of a configuration, or the resolved node
// matching opts.Find together with its direct children.
func (a *App) Deps(w io.Writer, configPath string, opts DepsOptions) error {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	name := opts.Configuration
	if name == "" {
		name = project.Settings.Configuration
	}
	cfg, err := project.Configuration(name)
	if err != nil {
		return err
	}

	if opts.Find == "" {
		for _, coord := range coordinates.Names(cfg, opts.IncludeParents) {
			_, _ = fmt.Fprintln(w, coord)
		}
		return nil
	}

	dep, ok := coordinates.FindInConfiguration(cfg, opts.Find)
	if !ok {
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "no resolved dependency matches"), "coordinate", opts.Find),
			"configuration", name,
		)
	}

	_, _ = fmt.Fprintln(w, describe(dep))
	for _, child := range dep.Children {
		_, _ = fmt.Fprintln(w, "  "+describe(child))
	}
	return nil
}

func describe(dep *domain.ResolvedDependency) string {
	line := coordinates.Jar(dep.Module.Group, dep.Module.Name, dep.Module.Version, "")
	if coordinates.IsInTreeResolved(dep) {
		line += " (" + coordinates.OfResolved(dep) + ")"
	}
	return line
}

// GradleVersions prints the gradle versions plugin tests run against.
func (a *App) GradleVersions(w io.Writer, sorted bool) error {
	versions := versionstore.NewGradleVersions(a.env)

	list, err := versions.All()
	if sorted {
		list, err = versions.Sorted()
	}
	if err != nil {
		return err
	}

	for _, v := range list {
		_, _ = fmt.Fprintln(w, v)
	}
	if versionstore.IgnoreDeprecations(a.env) {
		a.logger.Info("gradle deprecation failures are ignored")
	}
	return nil
}

// AddVersions appends a "<dep> = <version>" line per dependency to propsFile.
func (a *App) AddVersions(propsFile string, deps []string) error {
	store, err := a.versionStore()
	if err != nil {
		return err
	}

	if err := testcontent.AppendVersionsToProps(a.writer, store, propsFile, deps); err != nil {
		return zerr.With(err, "path", propsFile)
	}

	a.logger.Info(fmt.Sprintf("added %d versions to %s", len(deps), propsFile))
	return nil
}

func (a *App) versionStore() (*versionstore.Store, error) {
	source, err := a.sources.FromEnvironment(a.env)
	if err != nil {
		return nil, err
	}
	return versionstore.New(source), nil
}
