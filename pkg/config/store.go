package config

import (
	"os"

	"github.com/spf13/afero"
	"github.com/xxrBear/build-your-own-git/pkg/errors"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
	"github.com/xxrBear/build-your-own-git/pkg/storage/localfs"
)

const filePerm = 0644

// Load the configuration file at path.
//
// A missing file yields status.ErrConfigMissing, malformed content status.ErrConfigParse.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, status.ErrConfigMissing.Wrap(err)
		}
		return nil, status.ErrIO.Wrap(err)
	}
	return Parse(data)
}

// LoadOptional is like Load, but tolerates a missing file: it returns a nil Config and no error.
func LoadOptional(fs afero.Fs, path string) (*Config, error) {
	c, err := Load(fs, path)
	if err != nil {
		if errors.Is(err, status.ErrConfigMissing) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Write the configuration at path, replacing any previous file atomically.
//
// A configuration which would not read back the same is refused with status.ErrConfigParse
// and the file is left untouched.
func Write(fs afero.Fs, path string, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := localfs.WriteFileAtomic(fs, path, c.Bytes(), filePerm); err != nil {
		return status.ErrIO.Wrap(err)
	}
	return nil
}
