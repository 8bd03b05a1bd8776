// Package propagate hands the dependency versions of a build configuration to test processes.
//
// The file transport writes group:name=version lines for every first-level resolved
// dependency and passes the file path. The variable transport passes the declared external
// dependencies as a single group:name:version list.
package propagate

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"github.com/palantir/gradle-plugin-testing/internal/engine/coordinates"
	"github.com/palantir/gradle-plugin-testing/internal/engine/versionstore"
	"go.trai.ch/zerr"
)

// TaskName is the name the task records its build info under, after the project path.
const TaskName = "propagateTestDependencies"

// Options overrides the project settings for a single run. Zero values keep the settings.
type Options struct {
	Configuration      string
	Transport          domain.Transport
	OutputFile         string
	GradleVersions     []string
	IgnoreDeprecations *bool

	// Force rewrites the output even when it is up to date.
	Force bool
}

// Result describes what a run produced.
type Result struct {
	Transport domain.Transport

	// Entries holds the transported lines, "g:n=v" for files and "g:n:v" for the variable.
	Entries []string

	// Env holds the "KEY=VALUE" entries a test process needs.
	Env []string

	// OutputFile is the absolute path of the written file. Empty for the variable transport.
	OutputFile string

	// UpToDate is true when the existing output already had the computed content.
	UpToDate bool
}

// Task computes and writes the dependency transport of a project.
type Task struct {
	store    ports.BuildInfoStore
	hasher   ports.Hasher
	verifier ports.Verifier
	writer   ports.LineWriter
	logger   ports.Logger
	now      func() time.Time
}

// New creates a Task.
func New(
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	verifier ports.Verifier,
	writer ports.LineWriter,
	logger ports.Logger,
) *Task {
	return &Task{
		store:    store,
		hasher:   hasher,
		verifier: verifier,
		writer:   writer,
		logger:   logger,
		now:      time.Now,
	}
}

// Run computes the transport for project and writes it when needed.
//
// The file transport owns its output file. A run that is not up to date deletes the file
// before appending the computed lines, so lines other writers appended to the same path are
// lost. Callers that add their own entries should use a different path.
func (t *Task) Run(ctx context.Context, project *domain.Project, opts Options) (*Result, error) {
	settings := resolveSettings(project.Settings, opts)

	gradleVersions, err := versionstore.NormalizeGradleVersions(settings.GradleVersions)
	if err != nil {
		return nil, err
	}

	cfg, err := project.Configuration(settings.Configuration)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result *Result
	switch settings.Transport {
	case domain.TransportVariable:
		result = t.runVariable(cfg)
	default:
		result, err = t.runFile(project, cfg, settings.OutputFile, opts.Force)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPropagationFailed.Error()), "project", project.Path)
		}
	}

	result.Env = append(result.Env, domain.EnvGradleVersions+"="+strings.Join(gradleVersions, ","))
	if settings.IgnoreGradleDeprecations {
		result.Env = append(result.Env, domain.EnvIgnoreDeprecations+"="+strconv.FormatBool(true))
	}

	return result, nil
}

func (t *Task) runVariable(cfg *domain.Configuration) *Result {
	entries := VariableEntries(cfg)
	return &Result{
		Transport: domain.TransportVariable,
		Entries:   entries,
		Env: []string{
			domain.EnvSource + "=" + string(domain.TransportVariable),
			domain.EnvDependencies + "=" + strings.Join(entries, ","),
		},
	}
}

func (t *Task) runFile(project *domain.Project, cfg *domain.Configuration, outputFile string, force bool) (*Result, error) {
	entries := FileEntries(cfg)
	if len(cfg.Resolved) == 0 {
		t.logger.Warn("configuration " + cfg.Name + " has no resolved dependencies")
	}

	outputPath := outputFile
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(project.Root, outputPath)
	}

	result := &Result{
		Transport:  domain.TransportFile,
		Entries:    entries,
		OutputFile: outputPath,
		Env: []string{
			domain.EnvSource + "=" + string(domain.TransportFile),
			domain.EnvDependenciesFile + "=" + outputPath,
		},
	}

	taskName := project.Path + ":" + TaskName
	hash := t.hasher.HashContent([]byte(render(entries)))

	if !force {
		upToDate, err := t.isUpToDate(project.Root, taskName, outputPath, hash)
		if err != nil {
			return nil, err
		}
		if upToDate {
			t.logger.Info("dependency versions up to date: " + outputPath)
			result.UpToDate = true
			return result, nil
		}
	}

	if err := t.writer.Reset(outputPath); err != nil {
		return nil, err
	}
	if err := t.writer.AppendLines(outputPath, entries); err != nil {
		return nil, err
	}

	if err := t.store.Put(project.Root, domain.BuildInfo{
		TaskName:   taskName,
		OutputFile: outputPath,
		OutputHash: hash,
		Timestamp:  t.now(),
	}); err != nil {
		return nil, err
	}

	t.logger.Info("wrote " + strconv.Itoa(len(entries)) + " dependency versions to " + outputPath)
	return result, nil
}

// isUpToDate reports whether the recorded output has the expected hash and the file on disk
// still holds exactly that content.
func (t *Task) isUpToDate(root, taskName, outputPath, hash string) (bool, error) {
	info, err := t.store.Get(root, taskName)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	if info == nil || info.OutputHash != hash || info.OutputFile != outputPath {
		return false, nil
	}

	exists, err := t.verifier.VerifyOutputs(root, []string{outputPath})
	if err != nil || !exists {
		return false, err
	}

	current, err := t.hasher.HashFile(outputPath)
	if err != nil {
		// An unreadable output is rewritten.
		return false, nil //nolint:nilerr // cache miss
	}
	return current == hash, nil
}

// FileEntries returns "group:name=version" for each first-level resolved dependency of cfg,
// sorted and without duplicates.
func FileEntries(cfg *domain.Configuration) []string {
	entries := make([]string, 0, len(cfg.Resolved))
	for _, dep := range cfg.Resolved {
		m := dep.Module
		entries = append(entries, coordinates.Jar(m.Group, m.Name, "", "")+"="+m.Version)
	}
	slices.Sort(entries)
	return slices.Compact(entries)
}

// VariableEntries returns "group:name:version" for each external dependency declared in cfg or
// the configurations it extends. Dependencies without a version are left out.
func VariableEntries(cfg *domain.Configuration) []string {
	var entries []string
	for _, dep := range cfg.AllDependencies() {
		if dep.IsProject() || dep.Version == "" {
			continue
		}
		entries = append(entries, coordinates.Jar(dep.Group, dep.Name, dep.Version, ""))
	}
	slices.Sort(entries)
	return slices.Compact(entries)
}

func render(entries []string) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return b.String()
}

func resolveSettings(settings domain.Settings, opts Options) domain.Settings {
	if opts.Configuration != "" {
		settings.Configuration = opts.Configuration
	}
	if opts.Transport != "" {
		settings.Transport = opts.Transport
	}
	if opts.OutputFile != "" {
		settings.OutputFile = opts.OutputFile
	}
	if len(opts.GradleVersions) > 0 {
		settings.GradleVersions = opts.GradleVersions
	}
	if opts.IgnoreDeprecations != nil {
		settings.IgnoreGradleDeprecations = *opts.IgnoreDeprecations
	}
	return settings
}
