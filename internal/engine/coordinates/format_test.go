package coordinates_test

import (
	"testing"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/engine/coordinates"
	"github.com/stretchr/testify/assert"
)

func TestJar(t *testing.T) {
	tests := []struct {
		name                              string
		group, artifact, version, classif string
		expected                          string
	}{
		{name: "group and name", group: "g", artifact: "n", expected: "g:n"},
		{name: "with version", group: "g", artifact: "n", version: "1.0", expected: "g:n:1.0"},
		{name: "with classifier", group: "g", artifact: "n", classif: "tests", expected: "g:n:tests"},
		{name: "with both", group: "g", artifact: "n", version: "1.0", classif: "tests", expected: "g:n:1.0:tests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coordinates.Jar(tt.group, tt.artifact, tt.version, tt.classif))
		})
	}
}

func TestOfDeclared(t *testing.T) {
	tests := []struct {
		name     string
		dep      domain.DeclaredDependency
		expected string
	}{
		{
			name:     "external",
			dep:      domain.DeclaredDependency{Group: "com.palantir", Name: "lib", Version: "1.0"},
			expected: "com.palantir:lib",
		},
		{
			name: "external with classifier",
			dep: domain.DeclaredDependency{
				Group: "com.palantir", Name: "lib",
				Artifacts: []domain.Artifact{{Name: "lib", Classifier: "tests"}},
			},
			expected: "com.palantir:lib:tests",
		},
		{
			name: "only the first artifact counts",
			dep: domain.DeclaredDependency{
				Group: "com.palantir", Name: "lib",
				Artifacts: []domain.Artifact{{Classifier: "tests"}, {Classifier: "sources"}},
			},
			expected: "com.palantir:lib:tests",
		},
		{
			name:     "project",
			dep:      domain.DeclaredDependency{Group: "com.palantir", Name: "core", ProjectPath: ":lib:core"},
			expected: "project :lib:core",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coordinates.OfDeclared(tt.dep))
		})
	}
}

func TestOfResolved(t *testing.T) {
	module := domain.ModuleID{Group: "com.google.guava", Name: "guava", Version: "33.0.0-jre"}

	t.Run("first artifact", func(t *testing.T) {
		dep := &domain.ResolvedDependency{
			Module: module,
			Artifacts: []domain.ResolvedArtifact{
				{Module: module, Classifier: "jdk8"},
				{Module: module},
			},
		}
		assert.Equal(t, "com.google.guava:guava:jdk8", coordinates.OfResolved(dep))
	})

	t.Run("no artifacts uses module", func(t *testing.T) {
		dep := &domain.ResolvedDependency{Module: module}
		assert.Equal(t, "com.google.guava:guava", coordinates.OfResolved(dep))
	})

	t.Run("project artifact", func(t *testing.T) {
		dep := &domain.ResolvedDependency{
			Module:    domain.ModuleID{Group: "com.example", Name: "sub", Version: "unspecified"},
			Artifacts: []domain.ResolvedArtifact{{ProjectPath: ":sub"}},
		}
		assert.Equal(t, "project :sub", coordinates.OfResolved(dep))
		assert.True(t, coordinates.IsInTreeResolved(dep))
	})
}

func TestIsInTree(t *testing.T) {
	tests := []struct {
		coordinate string
		expected   bool
	}{
		{coordinate: "project :foo", expected: true},
		{coordinate: ":foo", expected: true},
		{coordinate: "justname", expected: true},
		{coordinate: "group:artifact", expected: false},
		{coordinate: "group:artifact:classifier", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.coordinate, func(t *testing.T) {
			assert.Equal(t, tt.expected, coordinates.IsInTree(tt.coordinate))
		})
	}
}

func TestIsInTree_MatchesFormatter(t *testing.T) {
	project := domain.DeclaredDependency{ProjectPath: ":a:b"}
	external := domain.DeclaredDependency{Group: "g", Name: "n"}

	assert.True(t, coordinates.IsInTreeDeclared(project))
	assert.True(t, coordinates.IsInTree(coordinates.OfDeclared(project)))
	assert.False(t, coordinates.IsInTreeDeclared(external))
	assert.False(t, coordinates.IsInTree(coordinates.OfDeclared(external)))
}
