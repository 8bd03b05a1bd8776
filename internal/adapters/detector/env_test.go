package detector_test

import (
	"testing"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/detector"
	"github.com/stretchr/testify/assert"
)

func TestDetectEnvironment_CI(t *testing.T) {
	for _, value := range []string{"true", "1"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("CI", value)
			assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment())
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.LogFormat
		userFlag string
		expected detector.LogFormat
	}{
		{name: "auto keeps pretty", detected: detector.FormatPretty, userFlag: "auto", expected: detector.FormatPretty},
		{name: "auto keeps json", detected: detector.FormatJSON, userFlag: "auto", expected: detector.FormatJSON},
		{name: "empty keeps detection", detected: detector.FormatJSON, userFlag: "", expected: detector.FormatJSON},
		{name: "pretty overrides", detected: detector.FormatJSON, userFlag: "pretty", expected: detector.FormatPretty},
		{name: "json overrides", detected: detector.FormatPretty, userFlag: "json", expected: detector.FormatJSON},
		{name: "unknown keeps detection", detected: detector.FormatPretty, userFlag: "xml", expected: detector.FormatPretty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveFormat(tt.detected, tt.userFlag))
		})
	}
}
