package storage

import (
	"context"
	"io"
)

// Store implementations know how to read and write entries keyed by a relative path.
//
// Repositories hand one out rooted at their metadata directory, so collaborators
// such as an object store or ref management never build absolute paths themselves.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
}

// ReadString reads a whole entry as a string
func ReadString(ctx context.Context, store Store, key string) (string, error) {
	rdr, err := store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	defer rdr.Close()

	b, err := io.ReadAll(rdr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
