// Package testcontent writes common test fixture content from known dependency versions.
package testcontent

import (
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
)

// VersionLookup resolves the version of a dependency coordinate.
type VersionLookup interface {
	Version(coordinate string) (string, error)
}

// AppendVersionsToProps appends a "<dep> = <version>" line for each dependency to the
// versions.props style file at path. Every version is resolved before anything is written,
// so a missing version leaves the file untouched.
func AppendVersionsToProps(writer ports.LineWriter, versions VersionLookup, path string, deps []string) error {
	lines, err := PropsLines(versions, deps)
	if err != nil {
		return err
	}
	return writer.AppendLines(path, lines)
}

// PropsLines returns the "<dep> = <version>" lines for deps, in the given order.
func PropsLines(versions VersionLookup, deps []string) ([]string, error) {
	lines := make([]string, 0, len(deps))
	for _, dep := range deps {
		v, err := versions.Version(dep)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dep+" = "+v)
	}
	return lines, nil
}
