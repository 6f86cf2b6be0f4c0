package model

import (
	"path"
	"strings"
)

// Metadata directory layout, relative to the metadata root
const (
	// DefaultMetaDir is the name of the metadata root under a work tree
	DefaultMetaDir = ".git"

	// DefaultBranch is the branch HEAD points to in a new repository
	DefaultBranch = "master"

	ConfigFile      = "config"
	DescriptionFile = "description"
	HeadFile        = "HEAD"

	BranchesDir = "branches"
	ObjectsDir  = "objects"
	RefsDir     = "refs"
	TagsDir     = "tags"
	HeadsDir    = "heads"

	// DefaultDescription is written to the description file of a new repository
	DefaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"

	symRefPrefix = "ref: "
)

// SkeletonDirs lists the directories created under the metadata root of a new repository,
// as path segments.
func SkeletonDirs() [][]string {
	return [][]string{
		{BranchesDir},
		{ObjectsDir},
		{RefsDir, TagsDir},
		{RefsDir, HeadsDir},
	}
}

// BranchRef yields the full reference name for a branch, e.g. refs/heads/master
func BranchRef(branch string) string {
	return path.Join(RefsDir, HeadsDir, branch)
}

// SymbolicRef yields the content of a file holding a symbolic reference to ref
func SymbolicRef(ref string) string {
	return symRefPrefix + ref + "\n"
}

// ParseSymbolicRef extracts the target of a symbolic reference.
// It returns false when content is not a symbolic reference (e.g. a detached HEAD).
func ParseSymbolicRef(content string) (string, bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, symRefPrefix) {
		return "", false
	}
	ref := strings.TrimSpace(strings.TrimPrefix(content, symRefPrefix))
	return ref, ref != ""
}

// ShortBranchName strips the refs/heads/ prefix from a reference, when present
func ShortBranchName(ref string) string {
	return strings.TrimPrefix(ref, path.Join(RefsDir, HeadsDir)+"/")
}
