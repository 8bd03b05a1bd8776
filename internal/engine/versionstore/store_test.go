package versionstore_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/versions"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports/mocks"
	"github.com/palantir/gradle-plugin-testing/internal/engine/versionstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_VariableTransport(t *testing.T) {
	env := versions.MapEnvironment{
		domain.EnvDependencies: "foo:bar:100,com.palantir:gradle-plugin-testing:1.2.3",
	}
	store := versionstore.New(versions.NewVariableSource(env))

	v, err := store.Version("foo:bar")
	require.NoError(t, err)
	assert.Equal(t, "100", v)

	resolved, err := store.Resolve("com.palantir:gradle-plugin-testing")
	require.NoError(t, err)
	assert.Equal(t, "com.palantir:gradle-plugin-testing:1.2.3", resolved)

	_, err = store.Resolve("not:found")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No version found for not:found")
}

func TestStore_LoadsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockVersionSource(ctrl)
	source.EXPECT().Load().Return(domain.NewVersionMap(map[string]string{"a:b": "1.0"}), nil).Times(1)

	store := versionstore.New(source)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Go(func() {
			v, err := store.Version("a:b")
			if err == nil {
				results[i] = v
			}
		})
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "1.0", r)
	}
}

func TestStore_LoadErrorIsMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockVersionSource(ctrl)
	loadErr := errors.New("disk on fire")
	source.EXPECT().Load().Return(domain.VersionMap{}, loadErr).Times(1)

	store := versionstore.New(source)

	_, err := store.Version("a:b")
	require.ErrorIs(t, err, loadErr)

	_, err = store.Resolve("c:d")
	require.ErrorIs(t, err, loadErr)

	_, err = store.Entries()
	require.ErrorIs(t, err, loadErr)
}

func TestStore_IsolatedPerInstance(t *testing.T) {
	first := versionstore.New(versions.NewVariableSource(versions.MapEnvironment{domain.EnvDependencies: "a:b:1"}))
	second := versionstore.New(versions.NewVariableSource(versions.MapEnvironment{domain.EnvDependencies: "a:b:2"}))

	v1, err := first.Version("a:b")
	require.NoError(t, err)
	v2, err := second.Version("a:b")
	require.NoError(t, err)

	assert.Equal(t, "1", v1)
	assert.Equal(t, "2", v2)
}

func TestStore_NoSourceConfigured(t *testing.T) {
	store := versionstore.New(versions.NewFileSource(versions.MapEnvironment{}))

	_, err := store.Version("a:b")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestStore_LockFileRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockVersionSource(ctrl)
	source.EXPECT().Load().Return(domain.NewVersionMap(map[string]string{
		"com.google.guava:guava": "33.0.0-jre",
		"org.junit":              "5.10.0",
	}), nil)

	store := versionstore.New(source)

	for _, coord := range []string{"com.google.guava:guava", "org.junit:junit-jupiter"} {
		resolved, err := store.Resolve(coord)
		require.NoError(t, err)

		v, err := store.Version(coord)
		require.NoError(t, err)
		assert.Equal(t, coord+":"+v, resolved)
	}

	entries, err := store.Entries()
	require.NoError(t, err)
	assert.Equal(t, 2, entries.Len())
}
