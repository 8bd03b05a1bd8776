package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigurationMissing is returned when the transport variable or file a test process
	// expects was never set up by the propagation step.
	ErrConfigurationMissing = zerr.New("test dependency configuration missing")

	// ErrVersionNotFound is returned when neither a coordinate nor its organization has a version.
	ErrVersionNotFound = zerr.New("version not found")

	// ErrUnknownVersionSource is returned when TEST_DEPENDENCIES_SOURCE names an unsupported source.
	ErrUnknownVersionSource = zerr.New("unknown version source, expected 'file', 'variable' or 'lockfile'")

	// ErrUnknownTransport is returned when a transport name is not 'file' or 'variable'.
	ErrUnknownTransport = zerr.New("unknown transport, expected 'file' or 'variable'")

	// ErrSourceReadFailed is returned when a version source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read version source")

	// ErrSourceParseFailed is returned when a version source file cannot be parsed at all.
	ErrSourceParseFailed = zerr.New("failed to parse version source")

	// ErrInvalidGradleVersion is returned when a gradle version to test against is not a valid version.
	ErrInvalidGradleVersion = zerr.New("invalid gradle version")

	// ErrConfigReadFailed is returned when the build model file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the build model file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingConfiguration is returned when a dependency configuration is not defined.
	ErrMissingConfiguration = zerr.New("configuration not found")

	// ErrDependencyNotFound is returned when a coordinate is not part of a resolved dependency graph.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrCycleDetected is returned when configurations extend each other in a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrInvalidNotation is returned when a dependency notation cannot be parsed.
	ErrInvalidNotation = zerr.New("invalid dependency notation")

	// ErrInvalidDependency is returned when a dependency has neither a project path nor a group and name.
	ErrInvalidDependency = zerr.New("dependency needs a project path or a group and name")

	// ErrOutputWriteFailed is returned when a generated file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrOutputCreateFailed is returned when the directory of a generated file cannot be created.
	ErrOutputCreateFailed = zerr.New("failed to create output directory")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrPropagationFailed is returned when the propagation task fails.
	ErrPropagationFailed = zerr.New("dependency propagation failed")

	// ErrNoCommandSpecified is returned when exec is called without a command.
	ErrNoCommandSpecified = zerr.New("no command specified")

	// ErrChildProcessFailed is returned when the child test process exits unsuccessfully.
	ErrChildProcessFailed = zerr.New("child process failed")
)
