package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xxrBear/build-your-own-git/pkg/model"
	"github.com/xxrBear/build-your-own-git/pkg/repo"
)

var initOptions struct {
	description string
	quiet       bool
}

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create an empty repository",
	Long: `Create an empty repository in the given directory, or in the current one.

The directory is created when missing. The metadata directory receives the
branches, objects and refs directories, a description file, a HEAD pointing at
the initial branch and a default config.

Initializing over an existing metadata directory which is not empty fails.
`,
	Example: `% byog init
Initialized empty repository in /home/jane/proj/.git

% byog init --initial-branch main /tmp/proj
Initialized empty repository in /tmp/proj/.git`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := workDir()
		if len(args) > 0 {
			target = args[0]
			if !filepath.IsAbs(target) {
				target = filepath.Join(workDir(), target)
			}
		}

		opts := repoOptions()
		if initOptions.description != "" {
			opts = append(opts, repo.WithDescription(initOptions.description+"\n"))
		}

		r, err := repo.Init(target, opts...)
		if err != nil {
			wrapFatalln("failed to initialize repository", err)
			return
		}
		if !initOptions.quiet {
			infoLogger.Printf("Initialized empty repository in %s", r.MetaDir())
		}
	},
}

func init() {
	fls := initCmd.Flags()
	fls.StringP("initial-branch", "b", model.DefaultBranch, "The branch HEAD points to in the new repository")
	_ = viper.BindPFlag(keyBranch, fls.Lookup("initial-branch"))
	fls.StringVar(&initOptions.description, "description", "", "The content of the description file")
	fls.BoolVarP(&initOptions.quiet, "quiet", "q", false, "Only print error messages")
}
