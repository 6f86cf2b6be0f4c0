package localfs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

const tempInfix = ".tmp-"

// WriteFileAtomic writes data to name so that readers see either the previous
// content or the new one, never a partial write.
//
// The data goes to a temporary file in the same directory, which is synced,
// closed and then renamed over name. On failure the temporary file is removed.
func WriteFileAtomic(fs afero.Fs, name string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(fs, dir, "."+base+tempInfix)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			err = multierr.Append(err, fs.Remove(tmpName))
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return multierr.Append(err, tmp.Close())
	}
	if err = tmp.Sync(); err != nil {
		return multierr.Append(err, tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = fs.Chmod(tmpName, perm); err != nil {
		return err
	}
	return fs.Rename(tmpName, name)
}
