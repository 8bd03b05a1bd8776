package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/shell"
	"github.com/palantir/gradle-plugin-testing/internal/adapters/versions"
	"github.com/palantir/gradle-plugin-testing/internal/app"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports/mocks"
	"github.com/palantir/gradle-plugin-testing/internal/engine/propagate"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, loader ports.ConfigLoader, executor ports.Executor, log ports.Logger) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	task := propagate.New(
		mocks.NewMockBuildInfoStore(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockVerifier(ctrl),
		mocks.NewMockLineWriter(ctrl),
		log,
	)
	application := app.New(loader, task, executor, versions.NewFactory(), mocks.NewMockLineWriter(ctrl),
		versions.MapEnvironment{}, log)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := newProvider(t, mocks.NewMockConfigLoader(ctrl), mocks.NewMockExecutor(ctrl), mockLogger)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "plugintest version")
	assert.Empty(t, stderr.String())
}

func TestRun_ProviderError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph broken")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graph broken\n", stderr.String())
}

func TestRun_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLoader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigReadFailed)
	mockLogger.EXPECT().Error(gomock.Any())

	provider := newProvider(t, mockLoader, mocks.NewMockExecutor(ctrl), mockLogger)

	exitCode := run(context.Background(), []string{"propagate", "-c", "missing.yaml"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_ChildExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	project := domain.NewProject(":plugin", t.TempDir())
	project.Settings.Transport = domain.TransportVariable
	project.Configurations[domain.DefaultConfigurationName] = &domain.Configuration{Name: domain.DefaultConfigurationName}

	mockLoader.EXPECT().Load(gomock.Any()).Return(project, nil)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any())

	provider := newProvider(t, mockLoader, shell.NewExecutor(mockLogger), mockLogger)

	exitCode := run(context.Background(), []string{"exec", "--", "sh", "-c", "exit 3"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 3, exitCode)
}
