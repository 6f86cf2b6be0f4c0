package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
)

// pendingCmd builds a command which needs the object store: it only
// checks that it runs inside a repository
func pendingCmd(v verb) *cobra.Command {
	return &cobra.Command{
		Use:   v.String(),
		Short: pendingSummaries[v],
		Long: pendingSummaries[v] + `.

This build knows where the repository is but doesn't read or write objects yet.
The command fails after locating the repository.
`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		Run: func(cmd *cobra.Command, args []string) {
			r, err := findRepo(true)
			if err != nil {
				dieOutsideRepository(err)
				return
			}
			wrapFatalln(fmt.Sprintf("%s in %s", v, r.Worktree()), status.ErrNotImplemented)
		},
	}
}
