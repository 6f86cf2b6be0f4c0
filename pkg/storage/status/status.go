// Package status declares error constants returned by
// implementations of the Store interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/storage and one
// of its implementations.
package status

import "github.com/xxrBear/build-your-own-git/pkg/errors"

var (
	// ErrNotFound indicates that the fetched entry does not exist on storage
	ErrNotFound = errors.New("not found")

	// ErrInvalidKey indicates that a key would escape the store root or names a directory
	ErrInvalidKey = errors.New("invalid key")
)
