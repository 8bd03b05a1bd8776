// Package buildinfo records, per task, which output a run produced and with what content.
//
// Records live as JSON files below the project root, one per task, named after the task
// path so that they can be inspected by hand.
package buildinfo

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*FileStore)(nil)

var taskPathReplacer = strings.NewReplacer(":", "_", "/", "_", string(filepath.Separator), "_")

// FileStore keeps one JSON record per task under the state directory of a project.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Get returns the record of taskName, or nil when the task never ran under root.
func (s *FileStore) Get(root, taskName string) (*domain.BuildInfo, error) {
	path := RecordPath(root, taskName)
	//nolint:gosec // path is derived from the project root and a sanitized task name
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	info := new(domain.BuildInfo)
	if err := json.Unmarshal(data, info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	if info.TaskName != taskName {
		// A record of another task that maps to the same file name.
		return nil, nil
	}
	return info, nil
}

// Put replaces the record of info.TaskName. The record is written to a temporary file first
// and renamed into place, so readers never see a partial record.
func (s *FileStore) Put(root string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	path := RecordPath(root, info.TaskName)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

// RecordPath returns where the record of taskName is kept below root. The file name is the
// task path with separators replaced, followed by a short digest of the exact path.
func RecordPath(root, taskName string) string {
	digest := sha256.Sum256([]byte(taskName))
	name := taskPathReplacer.Replace(strings.TrimPrefix(taskName, ":"))
	return filepath.Join(root, domain.DefaultStorePath(), name+"-"+hex.EncodeToString(digest[:4])+".json")
}
