package domain_test

import (
	"testing"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestVersionMap_Version(t *testing.T) {
	m := domain.NewVersionMap(map[string]string{
		"foo:bar":      "100",
		"com.palantir": "2.0.0",
		"standalone":   "3",
	})

	tests := []struct {
		name       string
		coordinate string
		expected   string
	}{
		{name: "exact match", coordinate: "foo:bar", expected: "100"},
		{name: "organization fallback", coordinate: "com.palantir:gradle-plugin-testing", expected: "2.0.0"},
		{name: "bare organization", coordinate: "com.palantir", expected: "2.0.0"},
		{name: "no colon", coordinate: "standalone", expected: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := m.Version(tt.coordinate)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestVersionMap_Version_NotFound(t *testing.T) {
	m := domain.NewVersionMap(map[string]string{"foo:bar": "100"})

	_, err := m.Version("not:found")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No version found for not:found or not")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "not", zErr.Metadata()["organization"])
}

func TestVersionMap_Version_NotFoundWithoutColon(t *testing.T) {
	m := domain.NewVersionMap(nil)

	_, err := m.Version("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No version found for missing")
	assert.NotContains(t, err.Error(), " or ")
}

func TestVersionMap_Immutable(t *testing.T) {
	entries := map[string]string{"a:b": "1.0"}
	m := domain.NewVersionMap(entries)

	entries["a:b"] = "2.0"
	entries["c:d"] = "3.0"

	v, ok := m.Get("a:b")
	assert.True(t, ok)
	assert.Equal(t, "1.0", v)
	assert.Equal(t, 1, m.Len())
}

func TestVersionMap_All_Sorted(t *testing.T) {
	m := domain.NewVersionMap(map[string]string{"z:z": "1", "a:a": "2", "m:m": "3"})

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a:a", "m:m", "z:z"}, keys)
}
