package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xxrBear/build-your-own-git/pkg/dlogger"
	"github.com/xxrBear/build-your-own-git/pkg/model"
	"go.uber.org/zap"
)

const (
	envPrefix         = "BYOG"
	envConfigLocation = "BYOG_CONFIG"

	keyLogLevel = "loglevel"
	keyMetaDir  = "metadir"
	keyBranch   = "branch"
)

var rootOptions struct {
	dir string
}

// logger is built from --loglevel before any command runs
var logger = zap.NewNop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "byog",
	Short: "byog is a minimal content tracker",
	Long: `byog is a minimal content tracker with a git like interface.

A repository is a work tree with a metadata directory (` + model.DefaultMetaDir + ` by default) right under it.
Commands look for the repository in the current directory, then in each of its parents.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l, err := dlogger.GetLogger(viper.GetString(keyLogLevel))
		if err != nil {
			wrapFatalln("invalid log level", err)
			return
		}
		logger = l
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using settings file", zap.String("file", used))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	fls := rootCmd.PersistentFlags()
	fls.StringVarP(&rootOptions.dir, "directory", "C", "", "Run as if started in this directory")
	fls.String(keyLogLevel, dlogger.LogLevelNone, "The logging level: none, debug, info, warn or error")
	fls.String(keyMetaDir, model.DefaultMetaDir, "The name of the metadata directory under the work tree")
	_ = viper.BindPFlag(keyLogLevel, fls.Lookup(keyLogLevel))
	_ = viper.BindPFlag(keyMetaDir, fls.Lookup(keyMetaDir))
	viper.SetDefault(keyBranch, model.DefaultBranch)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	if os.Getenv(envConfigLocation) != "" {
		viper.SetConfigFile(os.Getenv(envConfigLocation))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.byog")
		viper.SetConfigName("byog")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in. It is reported once the logger is set up.
	_ = viper.ReadInConfig()
}
