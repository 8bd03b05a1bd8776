// Package testdeps gives plugin tests the dependency versions and gradle versions that the
// build handed to them through the environment.
//
// The package level functions read the current process environment once and keep the
// result for the life of the process. Tests that need a different source build their own
// Store with NewStore.
package testdeps

import (
	"sync"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/fs"
	"github.com/palantir/gradle-plugin-testing/internal/adapters/versions"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"github.com/palantir/gradle-plugin-testing/internal/engine/testcontent"
	"github.com/palantir/gradle-plugin-testing/internal/engine/versionstore"
)

// Store answers version lookups from a single version source.
type Store = versionstore.Store

// VersionSource supplies the mapping a Store reads.
type VersionSource = ports.VersionSource

var (
	defaultStore = sync.OnceValues(func() (*Store, error) {
		source, err := versions.NewFactory().FromEnvironment(versions.OSEnvironment{})
		if err != nil {
			return nil, err
		}
		return versionstore.New(source), nil
	})

	defaultGradleVersions = sync.OnceValue(func() *versionstore.GradleVersions {
		return versionstore.NewGradleVersions(versions.OSEnvironment{})
	})
)

// NewStore returns a Store reading source on first use.
func NewStore(source VersionSource) *Store {
	return versionstore.New(source)
}

// Version returns the version of a "group:name" coordinate, falling back to the version of
// its organization.
func Version(coordinate string) (string, error) {
	store, err := defaultStore()
	if err != nil {
		return "", err
	}
	return store.Version(coordinate)
}

// Resolve returns "group:name:version" for a "group:name" coordinate.
func Resolve(coordinate string) (string, error) {
	store, err := defaultStore()
	if err != nil {
		return "", err
	}
	return store.Resolve(coordinate)
}

// GradleVersions returns the gradle versions to test against, in declaration order.
func GradleVersions() ([]string, error) {
	return defaultGradleVersions().All()
}

// IgnoreDeprecations reports whether gradle deprecation warnings should not fail tests.
func IgnoreDeprecations() bool {
	return versionstore.IgnoreDeprecations(versions.OSEnvironment{})
}

// AddVersionsToPropsFile appends "<dep> = <version>" lines to a versions.props file.
func AddVersionsToPropsFile(path string, deps []string) error {
	store, err := defaultStore()
	if err != nil {
		return err
	}
	return testcontent.AppendVersionsToProps(fs.NewLineWriter(), store, path, deps)
}
