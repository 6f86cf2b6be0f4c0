package repo

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxrBear/build-your-own-git/pkg/config"
	"github.com/xxrBear/build-your-own-git/pkg/errors"
	"github.com/xxrBear/build-your-own-git/pkg/model"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLayout(t *testing.T) {
	fs := memFs()
	r := mustInit(t, fs, testWorktree, WithMetaDirName(".meta"))

	assert.Equal(t, "/tmp/proj", r.Worktree())
	assert.Equal(t, "/tmp/proj/.meta", r.MetaDir())

	for _, dir := range []string{"branches", "objects", "refs/tags", "refs/heads"} {
		assert.Truef(t, isDir(t, fs, "/tmp/proj/.meta/"+dir), "expected directory %s", dir)
	}

	assert.Equal(t, "ref: refs/heads/master\n", readFile(t, fs, "/tmp/proj/.meta/HEAD"))
	assert.Equal(t, model.DefaultDescription, readFile(t, fs, "/tmp/proj/.meta/description"))

	cfg := readFile(t, fs, "/tmp/proj/.meta/config")
	assert.Contains(t, cfg, "[core]\n")
	assert.Contains(t, cfg, "repositoryformatversion = 0\n")

	infos, err := afero.ReadDir(fs, "/tmp/proj/.meta")
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	assert.ElementsMatch(t, []string{"HEAD", "branches", "config", "description", "objects", "refs"}, names)
}

func TestInitRoundTrip(t *testing.T) {
	fs := memFs()
	initialized := mustInit(t, fs, testWorktree)
	assert.True(t, config.Default().Equal(initialized.Config()))

	r, err := Open(testWorktree, false, WithFs(fs))
	require.NoError(t, err)
	assert.Equal(t, initialized.MetaDir(), r.MetaDir())
	assert.True(t, config.Default().Equal(r.Config()))

	ref, detached, err := r.Head(context.Background())
	require.NoError(t, err)
	assert.False(t, detached)
	assert.Equal(t, "refs/heads/master", ref)
}

func TestInitNotEmpty(t *testing.T) {
	fs := memFs()
	mustInit(t, fs, testWorktree)

	r, err := Init(testWorktree, WithFs(fs))
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, status.ErrRepositoryNotEmpty), "got %v", err)
}

func TestInitEmptyMetaDir(t *testing.T) {
	fs := memFs()
	require.NoError(t, fs.MkdirAll("/tmp/proj/.git", 0755))
	writeFile(t, fs, "/tmp/proj/README.md", "existing work tree content")

	r := mustInit(t, fs, testWorktree)
	assert.True(t, isDir(t, fs, r.Path("refs", "heads")))
	assert.Equal(t, "existing work tree content", readFile(t, fs, "/tmp/proj/README.md"))
}

func TestInitTargetIsAFile(t *testing.T) {
	fs := memFs()
	writeFile(t, fs, "/tmp/proj", "not a directory")

	_, err := Init(testWorktree, WithFs(fs))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotADirectory))
}

func TestInitMetaDirIsAFile(t *testing.T) {
	fs := memFs()
	writeFile(t, fs, "/tmp/proj/.git", "gitdir: elsewhere\n")

	_, err := Init(testWorktree, WithFs(fs))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotADirectory))
}

func TestInitCreatesTarget(t *testing.T) {
	fs := memFs()
	r := mustInit(t, fs, "/tmp/some/deep/proj")

	assert.True(t, isDir(t, fs, "/tmp/some/deep/proj"))
	assert.Equal(t, "/tmp/some/deep/proj/.git", r.MetaDir())
}

func TestInitOptions(t *testing.T) {
	fs := memFs()
	core, logs := observer.New(zap.DebugLevel)

	r := mustInit(t, fs, testWorktree,
		WithDefaultBranch("main"),
		WithDescription("my project\n"),
		WithLogger(zap.New(core)),
	)

	assert.Equal(t, "ref: refs/heads/main\n", readFile(t, fs, r.Path(model.HeadFile)))
	assert.Equal(t, "my project\n", readFile(t, fs, r.Path(model.DescriptionFile)))

	assert.Equal(t, 1, logs.FilterMessage("initialized empty repository").Len())
	assert.Equal(t, len(model.SkeletonDirs()), logs.FilterMessage("created directory").Len())
}

func TestInitReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(memFs())

	_, err := Init(testWorktree, WithFs(fs))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrIO), "got %v", err)
}

func TestInitOsFs(t *testing.T) {
	worktree := t.TempDir()

	r := mustInit(t, afero.NewOsFs(), worktree)

	reopened, err := OpenExisting(worktree)
	require.NoError(t, err)
	assert.Equal(t, r.MetaDir(), reopened.MetaDir())
	assert.True(t, config.Default().Equal(reopened.Config()))
}
