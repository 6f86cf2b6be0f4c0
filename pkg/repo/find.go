package repo

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
	"go.uber.org/zap"
)

// Find looks for a repository at start or in one of its ancestors, and opens the closest one.
//
// When none is found before reaching the filesystem root, Find returns status.ErrNotARepository
// if required is set, and a nil Repository with no error otherwise.
func Find(start string, required bool, opts ...Option) (*Repository, error) {
	s := newSettings(opts)

	current, err := canonicalPath(s.fs, start)
	if err != nil {
		return nil, err
	}

	for {
		candidate := filepath.Join(current, s.metaDirName)
		_, isDir, err := statPath(s.fs, candidate)
		if err != nil {
			return nil, err
		}
		if isDir {
			s.l.Debug("found metadata directory", zap.String("start", start), zap.String("metadir", candidate))
			return OpenExisting(current, opts...)
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	s.l.Debug("no repository found", zap.String("start", start))
	if required {
		return nil, errors.WithMessagef(status.ErrNotARepository, "no %s directory in %q or any of its parents", s.metaDirName, start)
	}
	return nil, nil
}

// canonicalPath makes pth absolute and, on the OS filesystem, resolves symbolic links.
// A path that cannot be resolved, e.g. because it does not exist yet, is kept as is.
func canonicalPath(fs afero.Fs, pth string) (string, error) {
	abs, err := filepath.Abs(pth)
	if err != nil {
		return "", errors.WithMessagef(status.ErrIO.Wrap(err), "resolving %q", pth)
	}
	if _, isOs := fs.(*afero.OsFs); !isOs {
		return abs, nil
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, nil
	}
	return resolved, nil
}
