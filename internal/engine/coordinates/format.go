// Package coordinates formats build model dependencies as canonical coordinate strings.
//
// External dependencies are written group:name[:classifier]. Dependencies on other projects
// of the same build are written "project :<path>", with the leading path separator removed.
package coordinates

import (
	"strings"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
)

// ProjectPrefix starts every in-tree coordinate.
const ProjectPrefix = "project :"

// Project returns the in-tree coordinate of a project path such as ":lib:core".
func Project(path string) string {
	return ProjectPrefix + strings.TrimPrefix(path, ":")
}

// Jar returns group:name[:version][:classifier]. Empty version or classifier are omitted.
func Jar(group, name, version, classifier string) string {
	var b strings.Builder
	b.WriteString(group)
	b.WriteByte(':')
	b.WriteString(name)
	if version != "" {
		b.WriteByte(':')
		b.WriteString(version)
	}
	if classifier != "" {
		b.WriteByte(':')
		b.WriteString(classifier)
	}
	return b.String()
}

// OfDeclared returns the coordinate of a declared dependency.
//
// Only the first declared artifact contributes a classifier. A dependency asking for several
// classified artifacts is reported with the classifier of the first one.
func OfDeclared(dep domain.DeclaredDependency) string {
	if dep.IsProject() {
		return Project(dep.ProjectPath)
	}

	var classifier string
	if len(dep.Artifacts) > 0 {
		classifier = dep.Artifacts[0].Classifier
	}
	return Jar(dep.Group, dep.Name, "", classifier)
}

// OfArtifact returns the coordinate of a resolved artifact.
func OfArtifact(artifact domain.ResolvedArtifact) string {
	if IsInTreeArtifact(artifact) {
		return Project(artifact.ProjectPath)
	}
	return Jar(artifact.Module.Group, artifact.Module.Name, "", artifact.Classifier)
}

// OfResolved returns the coordinate of a resolved dependency, taken from its first artifact.
// A dependency without artifacts falls back to the group and name of its module.
func OfResolved(dep *domain.ResolvedDependency) string {
	if len(dep.Artifacts) > 0 {
		return OfArtifact(dep.Artifacts[0])
	}
	return Jar(dep.Module.Group, dep.Module.Name, "", "")
}

// IsInTree reports whether a coordinate string names a project of the same build.
//
// The decision is made on the shape of the string alone: a "project :" prefix, a leading
// colon, or no colon at all. The last rule means any bare name counts as in-tree.
func IsInTree(coordinate string) bool {
	return strings.HasPrefix(coordinate, ProjectPrefix) ||
		strings.HasPrefix(coordinate, ":") ||
		!strings.Contains(coordinate, ":")
}

// IsInTreeDeclared reports whether a declared dependency points at a project of the same build.
func IsInTreeDeclared(dep domain.DeclaredDependency) bool {
	return dep.IsProject()
}

// IsInTreeResolved reports whether a resolved dependency's coordinate is in-tree.
func IsInTreeResolved(dep *domain.ResolvedDependency) bool {
	return IsInTree(OfResolved(dep))
}

// IsInTreeArtifact reports whether a resolved artifact was produced by a project of the same build.
func IsInTreeArtifact(artifact domain.ResolvedArtifact) bool {
	return artifact.ProjectPath != ""
}
