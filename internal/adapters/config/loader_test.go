package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/config"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const fullModel = `version: "1"
project: ":my-plugin"
pluginTesting:
  configuration: testRuntimeClasspath
  transport: variable
  outputFile: build/deps.properties
  gradleVersions: ["8.8", "8.10.2"]
  ignoreGradleDeprecations: false
configurations:
  implementation:
    dependencies:
      - notation: com.palantir.x:lib:1.0
  testImplementation:
    extendsFrom: [implementation]
    dependencies:
      - group: com.palantir.y
        name: other
        version: "2.0"
        artifacts: [{classifier: tests}]
      - notation: project :sub
      - project: ":lib:core"
  testRuntimeClasspath:
    extendsFrom: [testImplementation]
    resolved:
      - module: com.palantir.x:lib:1.0
        children:
          - module: com.google.guava:guava:33.0.0-jre
      - module: com.palantir.y:other:2.0
        artifacts: [{classifier: tests}]
      - module: com.example:sub:unspecified
        project: ":sub"
      - module: com.example:bom:1.0
        artifacts: []
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoader_Load(t *testing.T) {
	path := writeModel(t, fullModel)

	project, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":my-plugin", project.Path)
	assert.Equal(t, filepath.Dir(path), project.Root)

	assert.Equal(t, domain.Settings{
		Configuration:            "testRuntimeClasspath",
		Transport:                domain.TransportVariable,
		OutputFile:               "build/deps.properties",
		GradleVersions:           []string{"8.8", "8.10.2"},
		IgnoreGradleDeprecations: false,
	}, project.Settings)

	test, err := project.Configuration("testImplementation")
	require.NoError(t, err)
	require.Len(t, test.ExtendsFrom, 1)
	assert.Equal(t, "implementation", test.ExtendsFrom[0].Name)

	require.Len(t, test.Dependencies, 3)
	assert.Equal(t, domain.DeclaredDependency{
		Group:     "com.palantir.y",
		Name:      "other",
		Version:   "2.0",
		Artifacts: []domain.Artifact{{Name: "other", Classifier: "tests"}},
	}, test.Dependencies[0])
	assert.Equal(t, ":sub", test.Dependencies[1].ProjectPath)
	assert.Equal(t, ":lib:core", test.Dependencies[2].ProjectPath)

	runtime, err := project.Configuration("testRuntimeClasspath")
	require.NoError(t, err)
	require.Len(t, runtime.Resolved, 4)

	lib := runtime.Resolved[0]
	assert.Equal(t, domain.ModuleID{Group: "com.palantir.x", Name: "lib", Version: "1.0"}, lib.Module)
	require.Len(t, lib.Artifacts, 1)
	assert.Empty(t, lib.Artifacts[0].Classifier)
	require.Len(t, lib.Children, 1)
	assert.Equal(t, "guava", lib.Children[0].Module.Name)

	assert.Equal(t, "tests", runtime.Resolved[1].Artifacts[0].Classifier)
	assert.Equal(t, ":sub", runtime.Resolved[2].Artifacts[0].ProjectPath)
	assert.Empty(t, runtime.Resolved[3].Artifacts)
}

func TestLoader_Load_Defaults(t *testing.T) {
	path := writeModel(t, "configurations:\n  testRuntimeClasspath: {}\n")

	project, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":", project.Path)
	assert.Equal(t, domain.DefaultSettings(), project.Settings)
}

func TestLoader_Load_WarnsOnUnknownVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewLoader(mockLogger).Load(writeModel(t, "version: \"2\"\n"))
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "invalid yaml",
			content:     "configurations: [",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "unknown parent",
			content:     "configurations:\n  test:\n    extendsFrom: [missing]\n",
			errContains: domain.ErrMissingConfiguration.Error(),
		},
		{
			name:        "cycle",
			content:     "configurations:\n  a:\n    extendsFrom: [b]\n  b:\n    extendsFrom: [a]\n",
			errContains: domain.ErrCycleDetected.Error(),
		},
		{
			name:        "invalid notation",
			content:     "configurations:\n  test:\n    dependencies:\n      - notation: a:b:c:d:e\n",
			errContains: domain.ErrInvalidNotation.Error(),
		},
		{
			name:        "dependency without name",
			content:     "configurations:\n  test:\n    dependencies:\n      - group: a\n",
			errContains: domain.ErrInvalidDependency.Error(),
		},
		{
			name:        "resolved module without version",
			content:     "configurations:\n  test:\n    resolved:\n      - module: a:b\n",
			errContains: "resolved module must be group:name:version",
		},
		{
			name:        "unknown transport",
			content:     "pluginTesting:\n  transport: socket\n",
			errContains: domain.ErrUnknownTransport.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeModel(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
