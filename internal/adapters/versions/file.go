package versions

import (
	"errors"
	"io/fs"
	"os"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/ini.v1"
)

var _ ports.VersionSource = (*FileSource)(nil)

// FileSource reads the key=value file named by TEST_DEPENDENCIES_FILE.
type FileSource struct {
	env ports.Environment
}

// NewFileSource creates a source reading the file named by TEST_DEPENDENCIES_FILE in env.
func NewFileSource(env ports.Environment) *FileSource {
	return &FileSource{env: env}
}

// Load parses the transport file. Blank and unrecognizable lines are skipped; when a key
// repeats, the later line wins. Section headers, trailing backslashes and quotes carry no
// meaning: every key of every section is read and values are kept verbatim.
func (s *FileSource) Load() (domain.VersionMap, error) {
	path, ok := s.env.LookupEnv(domain.EnvDependenciesFile)
	if !ok || path == "" {
		return domain.VersionMap{}, zerr.With(
			zerr.Wrap(domain.ErrConfigurationMissing,
				"no test dependencies file name found, run 'plugintest propagate' to set "+
					domain.EnvDependenciesFile),
			"variable", domain.EnvDependenciesFile,
		)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.VersionMap{}, zerr.With(
				zerr.Wrap(domain.ErrConfigurationMissing, "test dependencies file does not exist"),
				"path", path,
			)
		}
		return domain.VersionMap{}, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}

	opts := ini.LoadOptions{
		KeyValueDelimiters:      "=", // coordinates contain ':', which ini treats as a delimiter by default
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
	}
	file, err := ini.LoadSources(opts, path)
	if err != nil {
		return domain.VersionMap{}, zerr.With(zerr.Wrap(err, domain.ErrSourceParseFailed.Error()), "path", path)
	}

	entries := make(map[string]string)
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			entries[key.Name()] = key.Value()
		}
	}

	return domain.NewVersionMap(entries), nil
}
