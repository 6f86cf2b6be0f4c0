package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// verb enumerates the commands byog dispatches to.
//
// Adding a verb requires a name, a summary and a case in commandFor.
type verb int

const (
	verbAdd verb = iota
	verbCatFile
	verbCheckIgnore
	verbCheckout
	verbCommit
	verbConfig
	verbHashObject
	verbInit
	verbLog
	verbLsFiles
	verbLsTree
	verbRevParse
	verbRm
	verbShowRef
	verbStatus
	verbTag
	verbVersion

	numVerbs
)

var verbNames = [numVerbs]string{
	verbAdd:         "add",
	verbCatFile:     "cat-file",
	verbCheckIgnore: "check-ignore",
	verbCheckout:    "checkout",
	verbCommit:      "commit",
	verbConfig:      "config",
	verbHashObject:  "hash-object",
	verbInit:        "init",
	verbLog:         "log",
	verbLsFiles:     "ls-files",
	verbLsTree:      "ls-tree",
	verbRevParse:    "rev-parse",
	verbRm:          "rm",
	verbShowRef:     "show-ref",
	verbStatus:      "status",
	verbTag:         "tag",
	verbVersion:     "version",
}

// summaries of the verbs served by pendingCmd
var pendingSummaries = map[verb]string{
	verbAdd:         "Add file contents to the index",
	verbCatFile:     "Provide content of repository objects",
	verbCheckIgnore: "Check path(s) against ignore rules",
	verbCheckout:    "Checkout a commit inside of a directory",
	verbCommit:      "Record changes to the repository",
	verbHashObject:  "Compute object ID and optionally create a blob from a file",
	verbLog:         "Display history of a given commit",
	verbLsFiles:     "List all the staged files",
	verbLsTree:      "Pretty-print a tree object",
	verbRm:          "Remove files from the working tree and the index",
	verbShowRef:     "List references",
	verbStatus:      "Show the working tree status",
	verbTag:         "List and create tags",
}

func (v verb) String() string {
	if v < 0 || v >= numVerbs {
		return fmt.Sprintf("verb(%d)", int(v))
	}
	return verbNames[v]
}

func allVerbs() []verb {
	verbs := make([]verb, 0, numVerbs)
	for v := verb(0); v < numVerbs; v++ {
		verbs = append(verbs, v)
	}
	return verbs
}

func commandFor(v verb) *cobra.Command {
	switch v {
	case verbConfig:
		return configCmd
	case verbInit:
		return initCmd
	case verbRevParse:
		return revParseCmd
	case verbVersion:
		return versionCmd
	case verbAdd, verbCatFile, verbCheckIgnore, verbCheckout, verbCommit, verbHashObject,
		verbLog, verbLsFiles, verbLsTree, verbRm, verbShowRef, verbStatus, verbTag:
		return pendingCmd(v)
	default:
		panic(fmt.Sprintf("no command for %v", v))
	}
}

func init() {
	for _, v := range allVerbs() {
		rootCmd.AddCommand(commandFor(v))
	}
}
