package config

// Buildfile represents the structure of the plugintesting.yaml build model file.
type Buildfile struct {
	Version        string                      `yaml:"version"`
	Project        string                      `yaml:"project"`
	PluginTesting  *PluginTestingDTO           `yaml:"pluginTesting"`
	Configurations map[string]ConfigurationDTO `yaml:"configurations"`
}

// PluginTestingDTO holds the plugin-testing settings. Unset fields keep their defaults.
type PluginTestingDTO struct {
	Configuration            string   `yaml:"configuration"`
	Transport                string   `yaml:"transport"`
	OutputFile               string   `yaml:"outputFile"`
	GradleVersions           []string `yaml:"gradleVersions"`
	IgnoreGradleDeprecations *bool    `yaml:"ignoreGradleDeprecations"`
}

// ConfigurationDTO represents a dependency configuration.
type ConfigurationDTO struct {
	Dependencies []DependencyDTO `yaml:"dependencies"`
	ExtendsFrom  []string        `yaml:"extendsFrom"`
	Resolved     []ResolvedDTO   `yaml:"resolved"`
}

// DependencyDTO is a declared dependency, given either as a notation string, as a project
// path, or as separate group, name and version fields.
type DependencyDTO struct {
	Notation  string        `yaml:"notation"`
	Project   string        `yaml:"project"`
	Group     string        `yaml:"group"`
	Name      string        `yaml:"name"`
	Version   string        `yaml:"version"`
	Artifacts []ArtifactDTO `yaml:"artifacts"`
}

// ArtifactDTO is a declared artifact request.
type ArtifactDTO struct {
	Name       string `yaml:"name"`
	Classifier string `yaml:"classifier"`
	Extension  string `yaml:"extension"`
}

// ResolvedDTO is a node of the resolved dependency graph.
type ResolvedDTO struct {
	// Module is the group:name:version of the selected module.
	Module  string `yaml:"module"`
	Project string `yaml:"project"`

	// Artifacts is nil when the key is absent, which means a single unclassified artifact.
	// An explicit empty list means the node has no artifacts.
	Artifacts *[]ResolvedArtifactDTO `yaml:"artifacts"`

	Children []ResolvedDTO `yaml:"children"`
}

// ResolvedArtifactDTO is an artifact selected by resolution.
type ResolvedArtifactDTO struct {
	Classifier string `yaml:"classifier"`
}
