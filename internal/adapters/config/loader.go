// Package config loads the build model from plugintesting.yaml.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	supportedVersion      = "1"
	projectNotationPrefix = "project "
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML build model files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the build model at path. The directory of the file becomes the project root.
func (l *Loader) Load(path string) (*domain.Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve config path")
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	}

	var file Buildfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", absPath)
	}

	if file.Version != "" && file.Version != supportedVersion {
		l.Logger.Warn("unsupported build model version " + file.Version + ", reading it as version " + supportedVersion)
	}

	projectPath := ":"
	if file.Project != "" {
		projectPath = normalizeProjectPath(file.Project)
	}
	project := domain.NewProject(projectPath, filepath.Dir(absPath))

	if err := applySettings(&project.Settings, file.PluginTesting); err != nil {
		return nil, err
	}

	if err := buildConfigurations(project, file.Configurations); err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

func applySettings(settings *domain.Settings, dto *PluginTestingDTO) error {
	if dto == nil {
		return nil
	}

	if dto.Configuration != "" {
		settings.Configuration = dto.Configuration
	}

	transport, err := domain.ParseTransport(dto.Transport)
	if err != nil {
		return err
	}
	settings.Transport = transport

	if dto.OutputFile != "" {
		settings.OutputFile = dto.OutputFile
	}
	if len(dto.GradleVersions) > 0 {
		settings.GradleVersions = slices.Clone(dto.GradleVersions)
	}
	if dto.IgnoreGradleDeprecations != nil {
		settings.IgnoreGradleDeprecations = *dto.IgnoreGradleDeprecations
	}
	return nil
}

func buildConfigurations(project *domain.Project, dtos map[string]ConfigurationDTO) error {
	// Sorted so the first reported error is stable.
	names := slices.Sorted(maps.Keys(dtos))

	for _, name := range names {
		project.Configurations[name] = &domain.Configuration{Name: name}
	}

	for _, name := range names {
		dto := dtos[name]
		cfg := project.Configurations[name]

		for _, parentName := range dto.ExtendsFrom {
			parent, ok := project.Configurations[parentName]
			if !ok {
				return zerr.With(
					zerr.With(zerr.Wrap(domain.ErrMissingConfiguration, "unknown configuration in extendsFrom"),
						"configuration", parentName),
					"extended_by", name,
				)
			}
			cfg.ExtendsFrom = append(cfg.ExtendsFrom, parent)
		}

		for _, depDTO := range dto.Dependencies {
			dep, err := parseDependency(depDTO)
			if err != nil {
				return zerr.With(err, "configuration", name)
			}
			cfg.Dependencies = append(cfg.Dependencies, dep)
		}

		for _, resolvedDTO := range dto.Resolved {
			node, err := parseResolved(resolvedDTO)
			if err != nil {
				return zerr.With(err, "configuration", name)
			}
			cfg.Resolved = append(cfg.Resolved, node)
		}
	}

	return nil
}

func parseDependency(dto DependencyDTO) (domain.DeclaredDependency, error) {
	var dep domain.DeclaredDependency

	switch {
	case dto.Notation != "":
		parsed, err := parseNotation(dto.Notation)
		if err != nil {
			return domain.DeclaredDependency{}, err
		}
		dep = parsed
	case dto.Project != "":
		dep.ProjectPath = normalizeProjectPath(dto.Project)
	default:
		dep.Group = dto.Group
		dep.Name = dto.Name
		dep.Version = dto.Version
	}

	if !dep.IsProject() && (dep.Group == "" || dep.Name == "") {
		return domain.DeclaredDependency{}, zerr.With(domain.ErrInvalidDependency, "notation", dto.Notation)
	}

	for _, a := range dto.Artifacts {
		name := a.Name
		if name == "" {
			name = dep.Name
		}
		dep.Artifacts = append(dep.Artifacts, domain.Artifact{
			Name:       name,
			Classifier: a.Classifier,
			Extension:  a.Extension,
		})
	}

	return dep, nil
}

// parseNotation parses "project :path", ":path" or "group:name[:version[:classifier]]".
func parseNotation(notation string) (domain.DeclaredDependency, error) {
	notation = strings.TrimSpace(notation)
	if strings.HasPrefix(notation, projectNotationPrefix) || strings.HasPrefix(notation, ":") {
		return domain.DeclaredDependency{ProjectPath: normalizeProjectPath(notation)}, nil
	}

	parts := strings.Split(notation, ":")
	if len(parts) < 2 || len(parts) > 4 || parts[0] == "" || parts[1] == "" {
		return domain.DeclaredDependency{}, zerr.With(domain.ErrInvalidNotation, "notation", notation)
	}

	dep := domain.DeclaredDependency{Group: parts[0], Name: parts[1]}
	if len(parts) > 2 {
		dep.Version = parts[2]
	}
	if len(parts) > 3 && parts[3] != "" {
		dep.Artifacts = []domain.Artifact{{Name: dep.Name, Classifier: parts[3]}}
	}
	return dep, nil
}

func parseModule(notation string) (domain.ModuleID, error) {
	parts := strings.Split(strings.TrimSpace(notation), ":")
	if len(parts) != 3 || slices.Contains(parts, "") {
		return domain.ModuleID{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidNotation, "resolved module must be group:name:version"),
			"module", notation,
		)
	}
	return domain.ModuleID{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
}

func parseResolved(dto ResolvedDTO) (*domain.ResolvedDependency, error) {
	module, err := parseModule(dto.Module)
	if err != nil {
		return nil, err
	}

	var projectPath string
	if dto.Project != "" {
		projectPath = normalizeProjectPath(dto.Project)
	}

	node := &domain.ResolvedDependency{Module: module}
	if dto.Artifacts == nil {
		node.Artifacts = []domain.ResolvedArtifact{{Module: module, ProjectPath: projectPath}}
	} else {
		node.Artifacts = make([]domain.ResolvedArtifact, 0, len(*dto.Artifacts))
		for _, a := range *dto.Artifacts {
			node.Artifacts = append(node.Artifacts, domain.ResolvedArtifact{
				Module:      module,
				Classifier:  a.Classifier,
				ProjectPath: projectPath,
			})
		}
	}

	for _, childDTO := range dto.Children {
		child, err := parseResolved(childDTO)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// normalizeProjectPath turns "project :a:b", ":a:b" and "a:b" into ":a:b".
func normalizeProjectPath(path string) string {
	path = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(path), projectNotationPrefix))
	if !strings.HasPrefix(path, ":") {
		path = ":" + path
	}
	return path
}
