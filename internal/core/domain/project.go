// Package domain contains the core domain models of the build model and the version data.
package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Configuration is a named bucket of dependencies, possibly extending other configurations.
type Configuration struct {
	Name         string
	Dependencies []DeclaredDependency
	ExtendsFrom  []*Configuration

	// Resolved holds the first-level nodes of the resolved dependency graph.
	Resolved []*ResolvedDependency
}

// AllDependencies returns the dependencies declared in the configuration and every configuration
// it extends, in declaration order. Configurations reached twice are visited once.
func (c *Configuration) AllDependencies() []DeclaredDependency {
	seen := make(map[*Configuration]bool)
	var out []DeclaredDependency

	var visit func(cfg *Configuration)
	visit = func(cfg *Configuration) {
		if seen[cfg] {
			return
		}
		seen[cfg] = true
		out = append(out, cfg.Dependencies...)
		for _, parent := range cfg.ExtendsFrom {
			visit(parent)
		}
	}
	visit(c)

	return out
}

// Project is the build model of a single project.
type Project struct {
	// Path is the project path within the build, e.g. ":my-plugin".
	Path string

	// Root is the directory the build model was loaded from.
	Root string

	Configurations map[string]*Configuration
	Settings       Settings
}

// NewProject creates an empty project with default settings.
func NewProject(path, root string) *Project {
	return &Project{
		Path:           path,
		Root:           root,
		Configurations: make(map[string]*Configuration),
		Settings:       DefaultSettings(),
	}
}

// Configuration returns the configuration with the given name.
func (p *Project) Configuration(name string) (*Configuration, error) {
	cfg, ok := p.Configurations[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrMissingConfiguration, "unknown configuration"), "configuration", name)
	}
	return cfg, nil
}

// Validate checks that configurations do not extend each other in a cycle.
func (p *Project) Validate() error {
	visited := make(map[*Configuration]int) // 0: unvisited, 1: visiting, 2: visited
	var path []*Configuration

	var visit func(c *Configuration) error
	visit = func(c *Configuration) error {
		visited[c] = 1
		path = append(path, c)

		for _, parent := range c.ExtendsFrom {
			if visited[parent] == 1 {
				return buildCycleError(path, parent)
			}
			if visited[parent] == 0 {
				if err := visit(parent); err != nil {
					return err
				}
			}
		}

		visited[c] = 2
		path = path[:len(path)-1]
		return nil
	}

	// Sorted so the reported cycle is stable.
	for _, name := range slices.Sorted(maps.Keys(p.Configurations)) {
		cfg := p.Configurations[name]
		if visited[cfg] == 0 {
			if err := visit(cfg); err != nil {
				return err
			}
		}
	}

	return nil
}

func buildCycleError(path []*Configuration, dep *Configuration) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].Name + " -> "
	}
	cyclePath += dep.Name
	return zerr.With(zerr.Wrap(ErrCycleDetected, "configurations extend each other"), "cycle", cyclePath)
}
