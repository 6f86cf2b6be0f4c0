package localfs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/xxrBear/build-your-own-git/pkg/storage"
	"github.com/xxrBear/build-your-own-git/pkg/storage/status"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// New creates a new local file system backed store.
//
// Keys are relative paths; the caller usually roots fs with afero.NewBasePathFs.
// Every Put is atomic: see WriteFileAtomic.
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func validKey(key string) error {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(os.PathSeparator)) {
		return status.ErrInvalidKey.Wrap(fmt.Errorf("%q", key))
	}
	return nil
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	if err := validKey(key); err != nil {
		return false, err
	}
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, status.ErrNotFound.Wrap(fmt.Errorf("%q", key))
	}
	return l.fs.Open(key)
}

func (l *localFS) Put(ctx context.Context, key string, source io.Reader) error {
	if err := validKey(key); err != nil {
		return err
	}
	if dir := filepath.Dir(key); dir != "." {
		if err := l.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("ensuring directories for %q: %w", key, err)
		}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, source); err != nil {
		return fmt.Errorf("read record for %q: %w", key, err)
	}
	if err := WriteFileAtomic(l.fs, key, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("write record for %q: %w", key, err)
	}
	return nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}
