package cmd

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/xxrBear/build-your-own-git/cmd/byog/cmd.Version=..."
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// VersionInfo describes the build of this binary
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty"`
}

// NewVersionInfo collects the build information, defaulting to a dev build
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf bytes.Buffer
	for _, line := range [][2]string{
		{"Version: ", v.Version},
		{"Build date: ", v.BuildDate},
		{"Commit: ", v.GitCommit},
		{"Working tree: ", v.GitState},
	} {
		buf.WriteString(line[0])
		buf.WriteString(line[1])
		buf.WriteString("\n")
	}
	return buf.String()
}

var versionFormat *outputFormat

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of byog",
	Long: `Print the version of byog. It includes the following components:
	* Semver (output of git describe --tags)
	* Build Date (date at which the binary was built)
	* Git Commit (the git commit hash this binary was built from)
	* Git State (when dirty there were uncommitted changes during the build)
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var buf bytes.Buffer
		if err := versionFormat.Format(&buf, NewVersionInfo()); err != nil {
			wrapFatalln("failed to format version", err)
			return
		}
		infoLogger.Print(buf.String())
	},
}

func init() {
	versionFormat = addFormatFlag(versionCmd, "text", map[string]Formatter{
		"text": FormatterFunc(func(w io.Writer, data interface{}) error {
			_, err := io.WriteString(w, data.(VersionInfo).String())
			return err
		}),
	})
}
