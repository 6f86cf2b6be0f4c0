package localfs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listDir(t testing.TB, fs afero.Fs, dir string) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names
}

func TestWriteFileAtomic(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/meta", 0755))

	require.NoError(t, WriteFileAtomic(fs, "/meta/config", []byte("v1"), 0644))
	require.NoError(t, WriteFileAtomic(fs, "/meta/config", []byte("v2"), 0644))

	b, err := afero.ReadFile(fs, "/meta/config")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(b))

	// no temporary file is left behind
	assert.Equal(t, []string{"config"}, listDir(t, fs, "/meta"))
}

func TestWriteFileAtomicOsFs(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "HEAD")

	require.NoError(t, WriteFileAtomic(afero.NewOsFs(), name, []byte("ref: refs/heads/master\n"), 0644))

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/master\n", string(b))

	fi, err := os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), fi.Mode().Perm())

	for _, entry := range listDir(t, afero.NewOsFs(), dir) {
		assert.False(t, strings.Contains(entry, tempInfix), "unexpected leftover %s", entry)
	}
}

func TestWriteFileAtomicBadDir(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := WriteFileAtomic(fs, "/nonexistent/dir/file.txt", []byte("data"), 0644)
	require.Error(t, err)
}
