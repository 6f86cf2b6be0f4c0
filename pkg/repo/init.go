package repo

import (
	"context"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/xxrBear/build-your-own-git/pkg/config"
	"github.com/xxrBear/build-your-own-git/pkg/model"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
	"go.uber.org/zap"
)

// Init creates a new, empty repository with target as its work tree.
//
// The target directory is created when missing. An existing, non-empty metadata root
// is never overwritten: this yields status.ErrRepositoryNotEmpty.
//
// Any failing step aborts the initialization. Directories and files created
// before the failure are left in place.
func Init(target string, opts ...Option) (*Repository, error) {
	r, err := OpenForBootstrap(target, opts...)
	if err != nil {
		return nil, err
	}
	l := r.l.With(zap.String("worktree", r.worktree), zap.String("metadir", r.metaDir))

	if err = r.prepareWorktree(); err != nil {
		return nil, err
	}

	for _, segments := range model.SkeletonDirs() {
		if _, err = r.Dir(true, segments...); err != nil {
			return nil, errors.WithMessagef(err, "initializing %q", r.worktree)
		}
		l.Debug("created directory", zap.String("dir", path.Join(segments...)))
	}

	ctx := context.Background()
	store := r.Store()
	seeds := []struct {
		key     string
		content string
	}{
		{key: model.DescriptionFile, content: r.description},
		{key: model.HeadFile, content: model.SymbolicRef(model.BranchRef(r.branch))},
	}
	for _, seed := range seeds {
		if err = store.Put(ctx, seed.key, strings.NewReader(seed.content)); err != nil {
			return nil, errors.WithMessagef(status.ErrIO.Wrap(err), "initializing %q", r.worktree)
		}
		l.Debug("wrote file", zap.String("file", seed.key))
	}

	if err = r.ReplaceConfig(config.Default()); err != nil {
		return nil, errors.WithMessagef(err, "initializing %q", r.worktree)
	}

	l.Info("initialized empty repository", zap.String("branch", r.branch))
	return r, nil
}

// prepareWorktree makes sure the work tree is a directory and that no repository lives there yet
func (r *Repository) prepareWorktree() error {
	exists, isDir, err := statPath(r.fs, r.worktree)
	if err != nil {
		return err
	}
	if !exists {
		return mkdirAll(r.fs, r.worktree)
	}
	if !isDir {
		return errors.WithMessagef(status.ErrNotADirectory, "%q", r.worktree)
	}

	exists, isDir, err = statPath(r.fs, r.metaDir)
	if err != nil || !exists {
		return err
	}
	if !isDir {
		return errors.WithMessagef(status.ErrNotADirectory, "%q", r.metaDir)
	}
	empty, err := afero.IsEmpty(r.fs, r.metaDir)
	if err != nil {
		return status.ErrIO.Wrap(err)
	}
	if !empty {
		return errors.WithMessagef(status.ErrRepositoryNotEmpty, "%q", r.metaDir)
	}
	return nil
}
