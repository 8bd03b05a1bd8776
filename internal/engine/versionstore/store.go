// Package versionstore answers version lookups for dependency coordinates.
//
// A Store loads its VersionSource once, on first use, and serves every later
// lookup from the resulting immutable mapping. Concurrent first callers wait for
// the single load and observe the same result, including a failed one.
package versionstore

import (
	"sync"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
)

// Store resolves versions from a lazily loaded VersionMap.
type Store struct {
	load func() (domain.VersionMap, error)
}

// New creates a Store backed by source. The source is not read until the first lookup.
func New(source ports.VersionSource) *Store {
	return &Store{load: sync.OnceValues(source.Load)}
}

// Entries returns the loaded mapping.
func (s *Store) Entries() (domain.VersionMap, error) {
	return s.load()
}

// Version returns the version of coordinate, falling back to its organization.
func (s *Store) Version(coordinate string) (string, error) {
	m, err := s.load()
	if err != nil {
		return "", err
	}
	return m.Version(coordinate)
}

// Resolve returns coordinate with its version appended, "group:name:version".
func (s *Store) Resolve(coordinate string) (string, error) {
	v, err := s.Version(coordinate)
	if err != nil {
		return "", err
	}
	return coordinate + ":" + v, nil
}
