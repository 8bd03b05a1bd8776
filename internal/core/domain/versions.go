package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// VersionMap is an immutable mapping from a dependency coordinate, or a bare organization,
// to a version string.
type VersionMap struct {
	entries map[string]string
}

// NewVersionMap copies entries into a new VersionMap.
func NewVersionMap(entries map[string]string) VersionMap {
	return VersionMap{entries: maps.Clone(entries)}
}

// Len returns the number of entries.
func (m VersionMap) Len() int {
	return len(m.entries)
}

// Get returns the version stored under exactly the given key.
func (m VersionMap) Get(key string) (string, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// All yields every entry sorted by key.
func (m VersionMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range slices.Sorted(maps.Keys(m.entries)) {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Version looks up the coordinate, falling back to its organization (the text before the
// first colon) when the coordinate itself has no entry.
func (m VersionMap) Version(coordinate string) (string, error) {
	if v, ok := m.entries[coordinate]; ok {
		return v, nil
	}

	org, _, hasOrg := strings.Cut(coordinate, ":")
	if !hasOrg {
		return "", zerr.With(
			zerr.Wrap(ErrVersionNotFound, "No version found for "+coordinate),
			"coordinate", coordinate,
		)
	}

	if v, ok := m.entries[org]; ok {
		return v, nil
	}

	return "", zerr.With(
		zerr.With(
			zerr.Wrap(ErrVersionNotFound, "No version found for "+coordinate+" or "+org),
			"coordinate", coordinate,
		),
		"organization", org,
	)
}
