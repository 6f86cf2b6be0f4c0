package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xxrBear/build-your-own-git/pkg/config"
	"go.uber.org/zap"
)

// exit codes of git config
const (
	exitConfigKeyNotSet = 1
	exitConfigNoSection = 5
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set repository options",
	Long: `Get and set the options stored in the config file of the repository.

Options are named section.key, e.g. core.bare, or section.subsection.key,
e.g. remote.origin.url. Names are not case-sensitive.

Every change rewrites the whole file at once, so it is never left half written.
`,
}

var configGetCmd = &cobra.Command{
	Use:     "get <name>",
	Short:   "Print the value of an option",
	Example: `% byog config get core.bare
false`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		section, key, err := config.SplitKey(args[0])
		if err != nil {
			wrapFatalln("config get", err)
			return
		}
		r, err := findRepo(true)
		if err != nil {
			dieOutsideRepository(err)
			return
		}
		v, ok := r.Config().Get(section, key)
		if !ok {
			wrapFatalWithCodef(exitConfigKeyNotSet, "%s is not set", args[0])
			return
		}
		infoLogger.Println(v)
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <name> <value>",
	Short:   "Set an option",
	Example: `% byog config set user.name "Jane Doe"`,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		section, key, err := config.SplitKey(args[0])
		if err != nil {
			wrapFatalln("config set", err)
			return
		}
		r, err := findRepo(true)
		if err != nil {
			dieOutsideRepository(err)
			return
		}
		cfg := r.Config().Clone()
		if err := cfg.Set(section, key, args[1]); err != nil {
			wrapFatalln("config set", err)
			return
		}
		if err := r.ReplaceConfig(cfg); err != nil {
			wrapFatalln("failed to save config", err)
			return
		}
		logger.Info("config option set", zap.String("name", args[0]))
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <name>",
	Short: "Remove an option",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		section, key, err := config.SplitKey(args[0])
		if err != nil {
			wrapFatalln("config unset", err)
			return
		}
		r, err := findRepo(true)
		if err != nil {
			dieOutsideRepository(err)
			return
		}
		cfg := r.Config().Clone()
		if !cfg.Unset(section, key) {
			wrapFatalWithCodef(exitConfigNoSection, "%s is not set", args[0])
			return
		}
		if err := r.ReplaceConfig(cfg); err != nil {
			wrapFatalln("failed to save config", err)
			return
		}
		logger.Info("config option removed", zap.String("name", args[0]))
	},
}

var configListFormat *outputFormat

var configListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print all options",
	Example: `% byog config list -o list
core.repositoryformatversion=0
core.filemode=false
core.bare=false`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := findRepo(true)
		if err != nil {
			dieOutsideRepository(err)
			return
		}
		var buf bytes.Buffer
		if err := configListFormat.Format(&buf, r.Config()); err != nil {
			wrapFatalln("failed to format config", err)
			return
		}
		infoLogger.Print(buf.String())
	},
}

func formatConfigIni(w io.Writer, data interface{}) error {
	cfg, ok := data.(*config.Config)
	if !ok {
		return fmt.Errorf("expected a config, got %T", data)
	}
	scanner := bufio.NewScanner(bytes.NewReader(cfg.Bytes()))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "[") {
			line = color.YellowString(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func formatConfigList(w io.Writer, data interface{}) error {
	cfg, ok := data.(*config.Config)
	if !ok {
		return fmt.Errorf("expected a config, got %T", data)
	}
	for _, section := range cfg.Sections() {
		for _, key := range cfg.Keys(section) {
			v, _ := cfg.Get(section, key)
			if _, err := fmt.Fprintf(w, "%s=%s\n", color.HiBlackString(config.JoinKey(section, key)), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	configListFormat = addFormatFlag(configListCmd, "ini", map[string]Formatter{
		"ini":  FormatterFunc(formatConfigIni),
		"list": FormatterFunc(formatConfigList),
	})
	configCmd.AddCommand(configGetCmd, configSetCmd, configUnsetCmd, configListCmd)
}
