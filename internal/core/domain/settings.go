package domain

import "go.trai.ch/zerr"

// Transport is the channel used to hand dependency versions to the test process.
type Transport string

const (
	// TransportFile writes a key=value file and passes its path.
	TransportFile Transport = "file"
	// TransportVariable passes a delimited group:name:version list.
	TransportVariable Transport = "variable"
)

// ParseTransport parses a transport name. An empty name selects the file transport.
func ParseTransport(name string) (Transport, error) {
	switch Transport(name) {
	case "", TransportFile:
		return TransportFile, nil
	case TransportVariable:
		return TransportVariable, nil
	default:
		return "", zerr.With(ErrUnknownTransport, "transport", name)
	}
}

// DefaultGradleVersions returns the gradle versions plugins are tested against by default.
func DefaultGradleVersions() []string {
	return []string{"7.6.4", "8.8"}
}

// Settings holds the plugin-testing settings of a project.
type Settings struct {
	// Configuration is the name of the configuration whose dependencies are propagated.
	Configuration string

	Transport Transport

	// OutputFile is the transport file path, relative to the project root unless absolute.
	OutputFile string

	GradleVersions []string

	// IgnoreGradleDeprecations asks test processes not to fail on gradle deprecations.
	IgnoreGradleDeprecations bool
}

// DefaultSettings returns the settings used when the build model does not override them.
func DefaultSettings() Settings {
	return Settings{
		Configuration:            DefaultConfigurationName,
		Transport:                TransportFile,
		OutputFile:               DefaultOutputFile,
		GradleVersions:           DefaultGradleVersions(),
		IgnoreGradleDeprecations: true,
	}
}
