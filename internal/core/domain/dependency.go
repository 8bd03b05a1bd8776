package domain

// ModuleID identifies a published module.
type ModuleID struct {
	Group   string
	Name    string
	Version string
}

// Artifact is a file a declared dependency asks for, optionally distinguished by a classifier.
type Artifact struct {
	Name       string
	Classifier string
	Extension  string
}

// DeclaredDependency is a dependency as written in a build script, before resolution.
type DeclaredDependency struct {
	Group   string
	Name    string
	Version string

	// ProjectPath is set for in-tree dependencies, e.g. ":lib:core".
	ProjectPath string

	Artifacts []Artifact
}

// IsProject reports whether the dependency points at another project of the same build.
func (d DeclaredDependency) IsProject() bool {
	return d.ProjectPath != ""
}

// ResolvedArtifact is a file selected by dependency resolution.
type ResolvedArtifact struct {
	Module     ModuleID
	Classifier string

	// ProjectPath is set when the artifact was produced by a project of the same build.
	ProjectPath string
}

// ResolvedDependency is a node of the resolved dependency graph.
type ResolvedDependency struct {
	Module    ModuleID
	Artifacts []ResolvedArtifact
	Children  []*ResolvedDependency
}
