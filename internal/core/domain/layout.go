package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal metadata directory, relative to the project root.
	StateDirName = ".plugin-testing"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "state"

	// ConfigFileName is the name of the build model file.
	ConfigFileName = "plugintesting.yaml"

	// DefaultOutputFile is the transport file written by the propagation task, relative to the project root.
	DefaultOutputFile = "build/plugin-testing/dependency-versions.properties"

	// DefaultConfigurationName is the configuration whose dependencies are propagated by default.
	DefaultConfigurationName = "testRuntimeClasspath"

	// LockFileName is the name of the lock file holding resolved versions.
	LockFileName = "versions.lock"

	// PropsFileName is the name of the properties file holding declared versions.
	PropsFileName = "versions.props"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Environment variables forming the contract between the build-time and test-time processes.
const (
	// EnvSource selects the version source a test process reads.
	EnvSource = "TEST_DEPENDENCIES_SOURCE"

	// EnvDependenciesFile holds the path of the generated key=value transport file.
	EnvDependenciesFile = "TEST_DEPENDENCIES_FILE"

	// EnvDependencies holds the delimited group:name:version transport.
	EnvDependencies = "TEST_DEPENDENCIES"

	// EnvVersionsDir holds the directory containing versions.lock and versions.props.
	EnvVersionsDir = "TEST_VERSIONS_DIR"

	// EnvGradleVersions holds a comma separated list of gradle versions to test against.
	EnvGradleVersions = "TEST_GRADLE_VERSIONS"

	// EnvIgnoreDeprecations suppresses deprecation-driven test failures when true.
	EnvIgnoreDeprecations = "ignoreDeprecations"
)

// DefaultStorePath returns the default path for the build info store.
// It joins .plugin-testing and state.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}
