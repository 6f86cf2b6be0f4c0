package repo

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
)

const dirPerm = 0755

// statPath tells whether something exists at path and if it is a directory.
//
// A path below a regular file does not exist.
func statPath(fs afero.Fs, path string) (exists, isDir bool, err error) {
	fi, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return false, false, nil
		}
		return false, false, status.ErrIO.Wrap(err)
	}
	return true, fi.IsDir(), nil
}

func mkdirAll(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(path, dirPerm); err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			return errors.WithMessagef(status.ErrNotADirectory.Wrap(err), "creating %q", path)
		}
		return errors.WithMessagef(status.ErrIO.Wrap(err), "creating %q", path)
	}
	return nil
}
