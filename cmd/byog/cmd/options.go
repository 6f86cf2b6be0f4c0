package cmd

import (
	"github.com/spf13/viper"
	"github.com/xxrBear/build-your-own-git/pkg/errors"
	"github.com/xxrBear/build-your-own-git/pkg/repo"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
)

// exit code of git when no repository is found
const exitNotARepository = 128

func repoOptions() []repo.Option {
	return []repo.Option{
		repo.WithLogger(logger),
		repo.WithMetaDirName(viper.GetString(keyMetaDir)),
		repo.WithDefaultBranch(viper.GetString(keyBranch)),
	}
}

func workDir() string {
	if rootOptions.dir != "" {
		return rootOptions.dir
	}
	return "."
}

func findRepo(required bool) (*repo.Repository, error) {
	return repo.Find(workDir(), required, repoOptions()...)
}

func dieOutsideRepository(err error) {
	if errors.Is(err, status.ErrNotARepository) {
		wrapFatalWithCodef(exitNotARepository, "fatal: %v (or any of the parent directories): %s",
			status.ErrNotARepository, viper.GetString(keyMetaDir))
		return
	}
	wrapFatalln("failed to open repository", err)
}
