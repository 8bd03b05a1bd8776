package versions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/palantir/gradle-plugin-testing/internal/adapters/versions"
	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLockPropsSource_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.LockFileName, `# Run ./gradlew writeVersionsLocks to regenerate this file
com.fasterxml.jackson.core:jackson-core:2.15.2 (3 constraints: 1a2b3c4d)
com.google.guava:guava:32.1.2-jre (2 constraints: abcd1234)

[Test dependencies]
org.junit.jupiter:junit-jupiter:5.10.0 (1 constraints: 00000000)
not a lock line
`)
	writeFile(t, dir, domain.PropsFileName, `# comment
com.google.guava:guava = 31.0-jre
com.palantir.*:* = 1.2.3
org.assertj:* = 3.24.2
com.squareup:javapoet=1.13.0
com.squareup:javapoet = 9.9.9
`)

	m, err := versions.NewLockPropsSource(dir).Load()
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{key: "com.fasterxml.jackson.core:jackson-core", want: "2.15.2"},
		{key: "com.google.guava:guava", want: "32.1.2-jre"},
		{key: "org.junit.jupiter:junit-jupiter", want: "5.10.0"},
		{key: "org.assertj", want: "3.24.2"},
		{key: "com.palantir.*", want: "1.2.3"},
		{key: "com.squareup:javapoet", want: "1.13.0"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := m.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	assert.Equal(t, len(tests), m.Len())

	v, err := m.Version("org.assertj:assertj-core")
	require.NoError(t, err)
	assert.Equal(t, "3.24.2", v)
}

func TestLockPropsSource_Load_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.LockFileName, "a:b:1 (1 constraints: 0)\n")

	_, err := versions.NewLockPropsSource(dir).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), domain.ErrSourceReadFailed.Error())
}

func TestFindRepositoryRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, domain.LockFileName, "")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	assert.Equal(t, root, versions.FindRepositoryRoot(nested))
	assert.Equal(t, root, versions.FindRepositoryRoot(root))
}

func TestFindRepositoryRoot_NotFound(t *testing.T) {
	got := versions.FindRepositoryRoot(t.TempDir())
	assert.Equal(t, got, filepath.Dir(got), "expected the filesystem root, got %s", got)
}
