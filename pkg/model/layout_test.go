package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolicRef(t *testing.T) {
	assert.Equal(t, "refs/heads/master", BranchRef(DefaultBranch))
	assert.Equal(t, "ref: refs/heads/master\n", SymbolicRef(BranchRef(DefaultBranch)))
}

func TestParseSymbolicRef(t *testing.T) {
	for _, toPin := range []struct {
		Name    string
		Content string
		Ref     string
		OK      bool
	}{
		{Name: "branch", Content: "ref: refs/heads/master\n", Ref: "refs/heads/master", OK: true},
		{Name: "no newline", Content: "ref: refs/heads/dev", Ref: "refs/heads/dev", OK: true},
		{Name: "detached", Content: "4b825dc642cb6eb9a060e54bf8d69288fbee4904\n", OK: false},
		{Name: "empty ref", Content: "ref: \n", OK: false},
		{Name: "empty", Content: "", OK: false},
	} {
		testcase := toPin
		t.Run(testcase.Name, func(t *testing.T) {
			ref, ok := ParseSymbolicRef(testcase.Content)
			assert.Equal(t, testcase.OK, ok)
			assert.Equal(t, testcase.Ref, ref)
		})
	}
}

func TestShortBranchName(t *testing.T) {
	assert.Equal(t, "master", ShortBranchName("refs/heads/master"))
	assert.Equal(t, "feature/x", ShortBranchName("refs/heads/feature/x"))
	assert.Equal(t, "refs/tags/v1", ShortBranchName("refs/tags/v1"))
}

func TestSkeletonDirs(t *testing.T) {
	dirs := SkeletonDirs()
	assert.Len(t, dirs, 4)
	assert.Contains(t, dirs, []string{RefsDir, HeadsDir})
	assert.Contains(t, dirs, []string{RefsDir, TagsDir})

	// callers may modify the result freely
	dirs[0][0] = "mutated"
	assert.Equal(t, BranchesDir, SkeletonDirs()[0][0])
}
