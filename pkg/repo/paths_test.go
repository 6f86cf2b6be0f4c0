package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxrBear/build-your-own-git/pkg/errors"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
)

func TestPath(t *testing.T) {
	fs := memFs()
	r, err := OpenForBootstrap(testWorktree, WithFs(fs))
	require.NoError(t, err)

	first := r.Path("refs", "heads", "master")
	second := r.Path("refs", "heads", "master")
	assert.Equal(t, first, second)
	assert.Equal(t, "/tmp/proj/.git/refs/heads/master", first)
	assert.Equal(t, "/tmp/proj/.git", r.Path())

	// no I/O happened
	exists, err := afero.Exists(fs, testWorktree)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFile(t *testing.T) {
	fs := memFs()
	r := mustInit(t, fs, testWorktree)

	pth, err := r.File(false, "refs", "remotes", "origin", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/proj/.git/refs/remotes/origin/HEAD", pth)
	assert.False(t, isDir(t, fs, "/tmp/proj/.git/refs/remotes"), "no directory expected without create")

	pth, err = r.File(true, "refs", "remotes", "origin", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/proj/.git/refs/remotes/origin/HEAD", pth)
	assert.True(t, isDir(t, fs, "/tmp/proj/.git/refs/remotes/origin"))

	exists, err := afero.Exists(fs, pth)
	require.NoError(t, err)
	assert.False(t, exists, "File never creates the file itself")
}

func TestFileParentIsAFile(t *testing.T) {
	fs := memFs()
	r := mustInit(t, fs, testWorktree)

	// HEAD is a regular file: nothing can live below it
	pth, err := r.File(true, "HEAD", "nested")
	require.Error(t, err)
	assert.Empty(t, pth)
	assert.True(t, errors.Is(err, status.ErrNotADirectory))
}

func TestDir(t *testing.T) {
	fs := memFs()
	r := mustInit(t, fs, testWorktree)

	t.Run("existing directory", func(t *testing.T) {
		pth, err := r.Dir(false, "refs", "heads")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/proj/.git/refs/heads", pth)
	})

	t.Run("existing file", func(t *testing.T) {
		pth, err := r.Dir(true, "HEAD")
		require.Error(t, err)
		assert.Empty(t, pth)
		assert.True(t, errors.Is(err, status.ErrNotADirectory))
	})

	t.Run("missing, no create", func(t *testing.T) {
		pth, err := r.Dir(false, "objects", "pack")
		require.NoError(t, err)
		assert.Empty(t, pth)
		assert.False(t, isDir(t, fs, "/tmp/proj/.git/objects/pack"))
	})

	t.Run("missing, create", func(t *testing.T) {
		pth, err := r.Dir(true, "objects", "info", "alternates.d")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/proj/.git/objects/info/alternates.d", pth)
		assert.True(t, isDir(t, fs, pth))
	})
}

func TestDirBelowFileOsFs(t *testing.T) {
	worktree := t.TempDir()
	r := mustInit(t, afero.NewOsFs(), worktree)

	_, err := r.Dir(true, "description", "nested")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotADirectory), "got %v", err)

	_, err = os.Stat(filepath.Join(r.MetaDir(), "description"))
	require.NoError(t, err, "the file is left untouched")
}
