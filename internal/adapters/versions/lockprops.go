// Package versions implements the sources a test process reads dependency versions from.
package versions

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.VersionSource = (*LockPropsSource)(nil)

var (
	// group:name:version (scope annotations...)
	lockFileLine = regexp.MustCompile(`^([^:]+):([^:]+):([^ ]+) \(.*$`)
	// key[:*] = value
	propsFileLine = regexp.MustCompile(`^(.*?)(:\*)?\s*=\s*(.+)$`)
)

// LockPropsSource reads versions.lock and versions.props from a directory.
//
// Lock entries take precedence; props entries only fill keys the lock file does not have.
// Lines matching neither format, such as comments, are skipped.
type LockPropsSource struct {
	dir string
}

// NewLockPropsSource creates a source reading the version files in dir.
func NewLockPropsSource(dir string) *LockPropsSource {
	return &LockPropsSource{dir: filepath.Clean(dir)}
}

// Dir returns the directory the version files are read from.
func (s *LockPropsSource) Dir() string {
	return s.dir
}

// Load reads both files and merges them.
func (s *LockPropsSource) Load() (domain.VersionMap, error) {
	var lockLines, propsLines []string

	g := new(errgroup.Group)
	g.Go(func() error {
		lines, err := readLines(filepath.Join(s.dir, domain.LockFileName))
		lockLines = lines
		return err
	})
	g.Go(func() error {
		lines, err := readLines(filepath.Join(s.dir, domain.PropsFileName))
		propsLines = lines
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.VersionMap{}, err
	}

	entries := make(map[string]string)
	for _, line := range lockLines {
		m := lockFileLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries[m[1]+":"+m[2]] = m[3]
	}

	for _, line := range propsLines {
		m := propsFileLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if _, exists := entries[m[1]]; exists {
			continue
		}
		entries[m[1]] = m[3]
	}

	return domain.NewVersionMap(entries), nil
}

// FindRepositoryRoot walks up from start to the first directory containing versions.lock.
// When no such directory exists the filesystem root is returned.
func FindRepositoryRoot(start string) string {
	dir := filepath.Clean(start)
	for {
		if _, err := os.Stat(filepath.Join(dir, domain.LockFileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// readLines returns the trimmed lines of the file at path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is built from a configured directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	return lines, nil
}
