package repo

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testWorktree = "/tmp/proj"

func memFs() afero.Fs {
	return afero.NewMemMapFs()
}

func mustInit(t testing.TB, fs afero.Fs, target string, opts ...Option) *Repository {
	t.Helper()
	r, err := Init(target, append([]Option{WithFs(fs)}, opts...)...)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func readFile(t testing.TB, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}

func writeFile(t testing.TB, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
}

func isDir(t testing.TB, fs afero.Fs, name string) bool {
	t.Helper()
	ok, err := afero.DirExists(fs, name)
	require.NoError(t, err)
	return ok
}
