package repo

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/xxrBear/build-your-own-git/pkg/config"
	"github.com/xxrBear/build-your-own-git/pkg/model"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
	"github.com/xxrBear/build-your-own-git/pkg/storage"
	"github.com/xxrBear/build-your-own-git/pkg/storage/localfs"
	"go.uber.org/zap"
)

// Repository is an opened repository: a work tree, its metadata root and the loaded configuration.
//
// A Repository is built for one command invocation and is not safe for concurrent use.
type Repository struct {
	settings

	worktree string
	metaDir  string
	config   *config.Config
}

func newRepository(worktree string, opts []Option) (*Repository, error) {
	s := newSettings(opts)
	abs, err := filepath.Abs(worktree)
	if err != nil {
		return nil, errors.WithMessagef(status.ErrIO.Wrap(err), "resolving %q", worktree)
	}
	return &Repository{
		settings: s,
		worktree: abs,
		metaDir:  filepath.Join(abs, s.metaDirName),
	}, nil
}

// OpenExisting opens the repository whose work tree is worktree.
//
// The metadata root must be an existing directory holding a configuration file
// with a supported core.repositoryformatversion.
func OpenExisting(worktree string, opts ...Option) (*Repository, error) {
	r, err := newRepository(worktree, opts)
	if err != nil {
		return nil, err
	}

	exists, isDir, err := statPath(r.fs, r.metaDir)
	if err != nil {
		return nil, err
	}
	if !exists || !isDir {
		return nil, errors.WithMessagef(status.ErrNotARepository, "%q", r.worktree)
	}

	cfg, err := config.Load(r.fs, r.Path(model.ConfigFile))
	if err != nil {
		return nil, errors.WithMessagef(err, "opening %q", r.worktree)
	}

	version, err := cfg.Int(config.SectionCore, config.KeyFormatVersion)
	if err != nil {
		return nil, errors.WithMessagef(err, "opening %q", r.worktree)
	}
	if version != config.FormatVersion {
		return nil, errors.WithMessagef(status.ErrUnsupportedFormatVersion,
			"%q: %s.%s is %d, expected %d", r.worktree, config.SectionCore, config.KeyFormatVersion, version, config.FormatVersion)
	}

	r.config = cfg
	r.l.Debug("opened repository", zap.String("worktree", r.worktree), zap.String("metadir", r.metaDir))
	return r, nil
}

// OpenForBootstrap builds a repository for worktree without checking anything on disk.
//
// The configuration is loaded when present and left nil otherwise.
// This is meant for initialization, before the metadata root exists.
func OpenForBootstrap(worktree string, opts ...Option) (*Repository, error) {
	r, err := newRepository(worktree, opts)
	if err != nil {
		return nil, err
	}

	_, isDir, err := statPath(r.fs, r.metaDir)
	if err != nil {
		return nil, err
	}
	if isDir {
		cfg, err := config.LoadOptional(r.fs, r.Path(model.ConfigFile))
		if err != nil {
			return nil, errors.WithMessagef(err, "opening %q", r.worktree)
		}
		r.config = cfg
	}
	return r, nil
}

// Open is OpenForBootstrap when force is set, OpenExisting otherwise
func Open(worktree string, force bool, opts ...Option) (*Repository, error) {
	if force {
		return OpenForBootstrap(worktree, opts...)
	}
	return OpenExisting(worktree, opts...)
}

// Worktree is the absolute path to the work tree
func (r *Repository) Worktree() string {
	return r.worktree
}

// MetaDir is the absolute path to the metadata root
func (r *Repository) MetaDir() string {
	return r.metaDir
}

// Config snapshot loaded when opening. It is nil for a repository opened for bootstrap
// before its configuration was written.
func (r *Repository) Config() *config.Config {
	return r.config
}

// Fs is the filesystem the repository lives on
func (r *Repository) Fs() afero.Fs {
	return r.fs
}

// ReplaceConfig writes cfg as the repository configuration, then makes it the current snapshot
func (r *Repository) ReplaceConfig(cfg *config.Config) error {
	if err := config.Write(r.fs, r.Path(model.ConfigFile), cfg); err != nil {
		return err
	}
	r.config = cfg
	return nil
}

// Store yields a store rooted at the metadata root, for collaborators
// reading and writing entries such as objects or refs
func (r *Repository) Store() storage.Store {
	return localfs.New(afero.NewBasePathFs(r.fs, r.metaDir))
}

// Head returns the reference HEAD points to, e.g. refs/heads/master,
// or the raw content of HEAD when it is detached
func (r *Repository) Head(ctx context.Context) (ref string, detached bool, err error) {
	content, err := storage.ReadString(ctx, r.Store(), model.HeadFile)
	if err != nil {
		return "", false, errors.WithMessage(err, "reading HEAD")
	}
	if ref, ok := model.ParseSymbolicRef(content); ok {
		return ref, false, nil
	}
	return strings.TrimSpace(content), true, nil
}
