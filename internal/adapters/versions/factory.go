package versions

import (
	"os"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
)

// Source names accepted in TEST_DEPENDENCIES_SOURCE.
const (
	SourceFile     = "file"
	SourceVariable = "variable"
	SourceLockFile = "lockfile"
)

var _ ports.VersionSourceFactory = (*Factory)(nil)

// Factory picks the version source selected by TEST_DEPENDENCIES_SOURCE.
type Factory struct {
	getwd func() (string, error)
}

// NewFactory creates a Factory resolving relative lookups against the working directory.
func NewFactory() *Factory {
	return &Factory{getwd: os.Getwd}
}

// FromEnvironment returns the selected source. The file source is the default.
// The lockfile source reads TEST_VERSIONS_DIR, or searches upwards from the working
// directory for versions.lock when it is unset.
func (f *Factory) FromEnvironment(env ports.Environment) (ports.VersionSource, error) {
	kind, _ := env.LookupEnv(domain.EnvSource)

	switch kind {
	case "", SourceFile:
		return NewFileSource(env), nil
	case SourceVariable:
		return NewVariableSource(env), nil
	case SourceLockFile:
		if dir, ok := env.LookupEnv(domain.EnvVersionsDir); ok && dir != "" {
			return NewLockPropsSource(dir), nil
		}
		cwd, err := f.getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		return NewLockPropsSource(FindRepositoryRoot(cwd)), nil
	default:
		return nil, zerr.With(domain.ErrUnknownVersionSource, "source", kind)
	}
}
