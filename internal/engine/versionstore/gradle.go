package versionstore

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
)

// GradleVersions lists the gradle versions plugin tests run against.
type GradleVersions struct {
	load func() (gradleVersionList, error)
}

type gradleVersionList struct {
	parsed []*semver.Version
	raw    []string
}

// NewGradleVersions reads TEST_GRADLE_VERSIONS from env, falling back to the defaults
// when it is unset or blank. Parsing happens once, on first use.
func NewGradleVersions(env ports.Environment) *GradleVersions {
	value, _ := env.LookupEnv(domain.EnvGradleVersions)
	return &GradleVersions{
		load: sync.OnceValues(func() (gradleVersionList, error) {
			return parseGradleVersions(value)
		}),
	}
}

// All returns the versions in the order they were listed, without duplicates.
func (g *GradleVersions) All() ([]string, error) {
	l, err := g.load()
	if err != nil {
		return nil, err
	}
	return slices.Clone(l.raw), nil
}

// Sorted returns the versions in ascending version order.
func (g *GradleVersions) Sorted() ([]string, error) {
	l, err := g.load()
	if err != nil {
		return nil, err
	}

	idx := make([]int, len(l.raw))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return l.parsed[a].Compare(l.parsed[b])
	})

	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = l.raw[j]
	}
	return out, nil
}

func parseGradleVersions(value string) (gradleVersionList, error) {
	if strings.TrimSpace(value) == "" {
		return normalizeGradleVersions(domain.DefaultGradleVersions())
	}
	return normalizeGradleVersions(strings.Split(value, ","))
}

// NormalizeGradleVersions trims the versions, drops empty entries and duplicates, and checks
// that every entry is a valid version.
func NormalizeGradleVersions(versions []string) ([]string, error) {
	l, err := normalizeGradleVersions(versions)
	if err != nil {
		return nil, err
	}
	return l.raw, nil
}

func normalizeGradleVersions(candidates []string) (gradleVersionList, error) {
	var l gradleVersionList
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || slices.Contains(l.raw, c) {
			continue
		}
		v, err := semver.NewVersion(c)
		if err != nil {
			return gradleVersionList{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidGradleVersion.Error()), "version", c)
		}
		l.parsed = append(l.parsed, v)
		l.raw = append(l.raw, c)
	}
	return l, nil
}

// IgnoreDeprecations reports whether the ignoreDeprecations toggle is set to a true value.
func IgnoreDeprecations(env ports.Environment) bool {
	value, ok := env.LookupEnv(domain.EnvIgnoreDeprecations)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
