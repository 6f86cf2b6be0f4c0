// Package status exports errors produced by the repo and config packages.
//
// Callers match them with errors.Is: the values returned by the repo
// package usually wrap one of these with a cause and some context.
package status

import (
	"github.com/xxrBear/build-your-own-git/pkg/errors"
)

var (
	// ErrNotARepository indicates that no metadata directory could be found,
	// either when opening a work tree or after walking up to the filesystem root
	ErrNotARepository = errors.New("not a repository")

	// ErrNotADirectory indicates that a path expected to be a directory exists as something else
	ErrNotADirectory = errors.New("not a directory")

	// ErrRepositoryNotEmpty indicates an attempt to initialize over a non-empty metadata directory
	ErrRepositoryNotEmpty = errors.New("repository metadata directory is not empty")

	// ErrConfigMissing indicates that a repository has no configuration file
	ErrConfigMissing = errors.New("configuration file missing")

	// ErrConfigParse indicates that the configuration file or one of its values is malformed
	ErrConfigParse = errors.New("configuration parse error")

	// ErrUnsupportedFormatVersion indicates a repository format version this build cannot handle
	ErrUnsupportedFormatVersion = errors.New("unsupported repository format version")

	// ErrIO wraps any other filesystem failure
	ErrIO = errors.New("i/o failure")

	// ErrNotImplemented tells that this feature has not been implemented yet
	ErrNotImplemented = errors.New("not implemented")
)
