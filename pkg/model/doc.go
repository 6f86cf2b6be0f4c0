// Package model describes the on-disk layout of a repository.
//
// A repository is made of a work tree, the directory the user considers the project,
// and a metadata root: a hidden directory directly under the work tree holding all
// tracked state.
//
// The metadata root of a new repository looks like:
//
//  branches/
//  objects/      populated by the object store
//  refs/tags/
//  refs/heads/
//  description   free text
//  HEAD          symbolic reference to the current branch, e.g. "ref: refs/heads/master"
//  config        section-scoped key = value settings
//
// Other subsystems request paths under the metadata root through the repo package
// rather than building them, so this layout stays the single source of truth.
package model
