package versions

import (
	"strings"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionSource = (*VariableSource)(nil)

// VariableSource reads the delimited TEST_DEPENDENCIES variable, "g1:n1:v1,g2:n2:v2".
type VariableSource struct {
	env ports.Environment
}

// NewVariableSource creates a source reading TEST_DEPENDENCIES from env.
func NewVariableSource(env ports.Environment) *VariableSource {
	return &VariableSource{env: env}
}

// Load splits the variable into entries. Each entry is split at its last colon into the
// coordinate and the version; entries without both parts are skipped.
func (s *VariableSource) Load() (domain.VersionMap, error) {
	value, ok := s.env.LookupEnv(domain.EnvDependencies)
	if !ok {
		return domain.VersionMap{}, zerr.With(
			zerr.Wrap(domain.ErrConfigurationMissing,
				"no test dependencies found, run 'plugintest propagate --transport variable' to set "+
					domain.EnvDependencies),
			"variable", domain.EnvDependencies,
		)
	}

	entries := make(map[string]string)
	for entry := range strings.SplitSeq(value, ",") {
		entry = strings.TrimSpace(entry)
		idx := strings.LastIndex(entry, ":")
		if idx <= 0 || idx == len(entry)-1 {
			continue
		}
		entries[entry[:idx]] = entry[idx+1:]
	}

	return domain.NewVersionMap(entries), nil
}
