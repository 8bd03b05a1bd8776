package coordinates

import (
	"slices"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
)

// DirectNames returns the coordinates of the dependencies declared directly in cfg.
func DirectNames(cfg *domain.Configuration) []string {
	return Names(cfg, false)
}

// Names returns the sorted, distinct coordinates of the dependencies declared in cfg,
// optionally including those declared by the configurations it extends.
// Transitive dependencies are not included.
func Names(cfg *domain.Configuration, includeParents bool) []string {
	deps := cfg.Dependencies
	if includeParents {
		deps = cfg.AllDependencies()
	}

	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		names = append(names, OfDeclared(dep))
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// FindInConfiguration searches the resolved graph of cfg for a dependency with the given coordinate.
func FindInConfiguration(cfg *domain.Configuration, coordinate string) (*domain.ResolvedDependency, bool) {
	return FindTransitive(cfg.Resolved, coordinate)
}

// FindTransitive searches a resolved dependency graph for a node with the given coordinate.
//
// Every node of a level is compared before any of their children are searched; children are
// then searched depth first in slice order. The first match wins.
func FindTransitive(deps []*domain.ResolvedDependency, coordinate string) (*domain.ResolvedDependency, bool) {
	for _, dep := range deps {
		if OfResolved(dep) == coordinate {
			return dep, true
		}
	}

	for _, dep := range deps {
		if found, ok := FindTransitive(dep.Children, coordinate); ok {
			return found, true
		}
	}

	return nil, false
}
