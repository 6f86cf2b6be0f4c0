// Package repo locates, opens and initializes repositories.
//
// A repository is a work tree with a metadata root directly beneath it (".git" by default).
// OpenExisting validates the metadata root and its configuration, OpenForBootstrap skips
// all checks and is only meant for Init, which lays out a new metadata root.
// Find walks up from a path to the closest repository.
//
// Everything under the metadata root is addressed with Path, File and Dir, or through
// the Store of the repository: later subsystems (objects, refs, index) are expected
// to go through them rather than building paths.
package repo
