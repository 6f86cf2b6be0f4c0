package repo

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/xxrBear/build-your-own-git/pkg/model"
	"go.uber.org/zap"
)

// Option sets options to open, initialize or find a repository
type Option func(*settings)

type settings struct {
	fs          afero.Fs
	l           *zap.Logger
	metaDirName string
	branch      string
	description string
}

// WithFs sets the filesystem holding repositories. It defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *settings) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithLogger sets a logger. It defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.l = l
		}
	}
}

// WithMetaDirName sets the name of the metadata root under the work tree. It defaults to model.DefaultMetaDir.
func WithMetaDirName(name string) Option {
	return func(s *settings) {
		if strings.TrimSpace(name) != "" {
			s.metaDirName = name
		}
	}
}

// WithDefaultBranch sets the branch HEAD points to in a new repository. It defaults to model.DefaultBranch.
func WithDefaultBranch(branch string) Option {
	return func(s *settings) {
		if strings.TrimSpace(branch) != "" {
			s.branch = branch
		}
	}
}

// WithDescription sets the content of the description file of a new repository
func WithDescription(description string) Option {
	return func(s *settings) {
		if description != "" {
			s.description = description
		}
	}
}

func defaultSettings() settings {
	return settings{
		fs:          afero.NewOsFs(),
		l:           zap.NewNop(),
		metaDirName: model.DefaultMetaDir,
		branch:      model.DefaultBranch,
		description: model.DefaultDescription,
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, apply := range opts {
		apply(&s)
	}
	return s
}
