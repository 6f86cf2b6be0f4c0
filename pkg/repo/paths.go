package repo

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
)

// Path joins the metadata root with segments. It does no I/O.
func (r *Repository) Path(segments ...string) string {
	return filepath.Join(append([]string{r.metaDir}, segments...)...)
}

// File computes the path to a file under the metadata root.
//
// When create is set, the directory holding the last segment is created if needed,
// so callers may ask for refs/remotes/origin/HEAD without preparing refs/remotes/origin.
// When that directory cannot be established, the path is empty and the error says why.
func (r *Repository) File(create bool, segments ...string) (string, error) {
	if create && len(segments) > 0 {
		if _, err := r.Dir(true, segments[:len(segments)-1]...); err != nil {
			return "", errors.WithMessagef(err, "parent of %q", r.Path(segments...))
		}
	}
	return r.Path(segments...), nil
}

// Dir computes the path to a directory under the metadata root.
//
// An existing directory is returned as is, an existing file is status.ErrNotADirectory.
// A missing directory is created with all its ancestors when create is set;
// otherwise Dir returns an empty path and no error.
func (r *Repository) Dir(create bool, segments ...string) (string, error) {
	pth := r.Path(segments...)

	exists, isDir, err := statPath(r.fs, pth)
	if err != nil {
		return "", err
	}
	if exists {
		if !isDir {
			return "", errors.WithMessagef(status.ErrNotADirectory, "%q", pth)
		}
		return pth, nil
	}

	if !create {
		return "", nil
	}
	if err := mkdirAll(r.fs, pth); err != nil {
		return "", err
	}
	return pth, nil
}
