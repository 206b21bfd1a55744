// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/log/level"
	"github.com/luxfi/vebanny/cmd/configcmd"
	"github.com/luxfi/vebanny/cmd/networkscmd"
	"github.com/luxfi/vebanny/cmd/resolvecmd"
	"github.com/luxfi/vebanny/cmd/simulatecmd"
	"github.com/luxfi/vebanny/cmd/tierscmd"
	"github.com/luxfi/vebanny/cmd/verifycmd"
	"github.com/luxfi/vebanny/pkg/application"
	"github.com/luxfi/vebanny/pkg/config"
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app        *application.App
	logFactory luxlog.Factory

	logLevel string
	Version  = "0.3.0"
	cfgFile  string
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "vebanny",
		Long: `vebanny - off-chain twin of the veBanny token URI resolver.

A veBanny NFT's artwork is picked from the amount of tokens locked and the
lock duration. vebanny computes the same URI the JBVeTokenUriResolver
contract returns, walks the whole table, and checks deployed contracts
against it.

COMMAND OVERVIEW:

  resolve     Resolve one (amount, duration) pair
  simulate    Resolve every sample amount against every duration
  tiers       List, check and export the range table
  verify      Compare a deployed resolver with the local one
  networks    List known networks
  config      CLI configuration

QUICK START:

  vebanny resolve 101 2160000
  vebanny simulate --format table
  vebanny verify --network localhost

For detailed command help, use: vebanny <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vebanny/cli.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	rootCmd.AddCommand(resolvecmd.NewCmd(app))
	rootCmd.AddCommand(simulatecmd.NewCmd(app))
	rootCmd.AddCommand(tierscmd.NewCmd(app))
	rootCmd.AddCommand(verifycmd.NewCmd(app))
	rootCmd.AddCommand(networkscmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	// Adjust log level based on flags BEFORE any logging happens
	if cmd.Flags().Changed("debug") {
		logFactory.SetLogLevel(constants.LoggerName, luxlog.Level(level.Debug))
		logFactory.SetDisplayLevel(constants.LoggerName, luxlog.Level(level.Debug))
	} else if cmd.Flags().Changed("verbose") {
		logFactory.SetLogLevel(constants.LoggerName, luxlog.Level(level.Info))
		logFactory.SetDisplayLevel(constants.LoggerName, luxlog.Level(level.Info))
	} else if cmd.Flags().Changed("quiet") {
		logFactory.SetLogLevel(constants.LoggerName, luxlog.Level(level.Error))
		logFactory.SetDisplayLevel(constants.LoggerName, luxlog.Level(level.Error))
	} else if logLevel != "" {
		level, err := luxlog.ToLevel(logLevel)
		if err == nil {
			logFactory.SetLogLevel(constants.LoggerName, level)
			logFactory.SetDisplayLevel(constants.LoggerName, level)
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("unable to get working directory: %w", err)
	}

	cf := config.New()
	app.Setup(baseDir, workDir, log, cf)

	initConfig(baseDir)
	return nil
}

func setupEnv() (string, error) {
	// Set base dir
	home, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get home directory %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(home, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, 0o750)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}

	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(-6) // Info level for file logging

	// Set default display level to WARN (quiet by default)
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/luxfi/vebanny/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(constants.LoggerName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// Store factory globally so we can adjust levels later
	logFactory = factory
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(baseDir string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(baseDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName) // cli.yaml
	}

	// VEBANNY_RPC -> rpc, VEBANNY_PARALLEL -> parallel, ...
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	}
	// No config file is normal - most users don't have one, so we silently continue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if ux.Logger != nil {
			ux.Logger.WithWriter(os.Stderr).PrintError("%s", err)
		} else {
			fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		}
		os.Exit(1)
	}
}
