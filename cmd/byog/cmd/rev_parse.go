package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xxrBear/build-your-own-git/pkg/model"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
)

var revParseOptions struct {
	gitDir         bool
	showToplevel   bool
	insideWorkTree bool
	abbrevRef      bool
}

var revParseCmd = &cobra.Command{
	Use:   "rev-parse [--git-dir] [--show-toplevel] [--is-inside-work-tree] [--abbrev-ref HEAD]",
	Short: "Print where the repository is",
	Long: `Locate the repository from the current directory up to the root of the filesystem.

--git-dir prints the metadata directory, --show-toplevel the work tree.
--is-inside-work-tree prints true or false and doesn't fail outside of a repository.
--abbrev-ref HEAD prints the current branch, or HEAD when detached.

Resolving revisions to object names is not available in this build.
`,
	Example: `% cd /home/jane/proj/src
% byog rev-parse --show-toplevel
/home/jane/proj`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch {
		case revParseOptions.insideWorkTree:
			r, err := findRepo(false)
			if err != nil {
				wrapFatalln("failed to look for a repository", err)
				return
			}
			infoLogger.Println(r != nil)

		case revParseOptions.gitDir || revParseOptions.showToplevel:
			r, err := findRepo(true)
			if err != nil {
				dieOutsideRepository(err)
				return
			}
			if revParseOptions.gitDir {
				infoLogger.Println(r.MetaDir())
			}
			if revParseOptions.showToplevel {
				infoLogger.Println(r.Worktree())
			}

		case revParseOptions.abbrevRef:
			if len(args) != 1 || args[0] != model.HeadFile {
				wrapFatalln("--abbrev-ref only resolves HEAD", status.ErrNotImplemented)
				return
			}
			r, err := findRepo(true)
			if err != nil {
				dieOutsideRepository(err)
				return
			}
			ref, detached, err := r.Head(context.Background())
			if err != nil {
				wrapFatalln("failed to read HEAD", err)
				return
			}
			if detached {
				infoLogger.Println(model.HeadFile)
				return
			}
			infoLogger.Println(model.ShortBranchName(ref))

		default:
			wrapFatalln("resolving revisions", status.ErrNotImplemented)
		}
	},
}

func init() {
	fls := revParseCmd.Flags()
	fls.BoolVar(&revParseOptions.gitDir, "git-dir", false, "Print the path to the metadata directory")
	fls.BoolVar(&revParseOptions.showToplevel, "show-toplevel", false, "Print the path to the work tree")
	fls.BoolVar(&revParseOptions.insideWorkTree, "is-inside-work-tree", false, "Print whether the current directory is inside a work tree")
	fls.BoolVar(&revParseOptions.abbrevRef, "abbrev-ref", false, "Print the short name of the reference")
}
