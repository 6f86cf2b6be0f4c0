// Package storage provides an interface to handle entries stored under a directory.
//
// The only backend is the local file system (see localfs), abstracted by afero.
package storage
