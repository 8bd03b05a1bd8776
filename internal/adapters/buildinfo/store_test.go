package buildinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/buildinfo"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := buildinfo.NewFileStore()

	info := domain.BuildInfo{
		TaskName:   ":plugin:propagateTestDependencies",
		OutputFile: domain.DefaultOutputFile,
		OutputHash: "0123456789abcdef",
		Timestamp:  time.Now().Truncate(time.Second).UTC(),
	}

	require.NoError(t, store.Put(root, info))

	got, err := store.Get(root, info.TaskName)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)

	entries, err := os.ReadDir(filepath.Join(root, domain.DefaultStorePath()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")
	assert.Equal(t, filepath.Base(buildinfo.RecordPath(root, info.TaskName)), entries[0].Name())
}

func TestRecordPath(t *testing.T) {
	t.Parallel()

	path := buildinfo.RecordPath("/repo", ":plugin:propagateTestDependencies")

	assert.Equal(t, filepath.Join("/repo", domain.DefaultStorePath()), filepath.Dir(path))
	assert.Regexp(t, `^plugin_propagateTestDependencies-[0-9a-f]{8}\.json$`, filepath.Base(path))
	assert.NotEqual(t, path, buildinfo.RecordPath("/repo", ":plugin_propagateTestDependencies"))
}

func TestFileStore_GetMissing(t *testing.T) {
	t.Parallel()

	got, err := buildinfo.NewFileStore().Get(t.TempDir(), "missing-task")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := buildinfo.NewFileStore()

	require.NoError(t, store.Put(root, domain.BuildInfo{TaskName: "task", OutputHash: "old"}))
	require.NoError(t, store.Put(root, domain.BuildInfo{TaskName: "task", OutputHash: "new"}))

	got, err := store.Get(root, "task")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.OutputHash)
}

func TestFileStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, domain.DefaultStorePath()), 0o750))
	require.NoError(t, os.WriteFile(buildinfo.RecordPath(root, "task"), []byte("{not json"), 0o600))

	_, err := buildinfo.NewFileStore().Get(root, "task")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStoreUnmarshalFailed.Error())
}
