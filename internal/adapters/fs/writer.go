// Package fs implements the filesystem adapters: hashing, output verification and line writing.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LineWriter = (*LineWriter)(nil)

// LineWriter appends whole lines to text files.
type LineWriter struct{}

// NewLineWriter creates a new LineWriter.
func NewLineWriter() *LineWriter {
	return &LineWriter{}
}

// AppendLines appends lines to the file at path in one write. The file is opened with
// O_APPEND so concurrent writers never interleave inside a line.
func (w *LineWriter) AppendLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputCreateFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is provided by the project configuration
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, writeErr := f.WriteString(b.String())
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}

// Reset removes the file at path. A missing file is not an error.
func (w *LineWriter) Reset(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}
