// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"path/filepath"

	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	initProject bool
	initForce   bool
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration with the canonical resolver tables",
		Long: `Initialize a new configuration file holding the canonical range table, the
default duration preset, the veBanny IPFS root and the sample amounts.

By default, creates a global configuration at ~/.vebanny/config.json.
Use --project to create a project-local configuration at .vebanny.json.

The command auto-detects your environment (CI, Codespace, development) and
suggests how many tokenURI reads verify should keep in flight.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVar(&initProject, "project", false, "Create project-local config instead of global")
	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config file")

	return cmd
}

func runInit(_ *cobra.Command, _ []string) error {
	ux.Logger.PrintToUser("Detected environment: %s", globalconfig.DetectEnvironment())
	ux.Logger.PrintToUser("Suggested verify parallelism: %d", globalconfig.SuggestVerifyParallel())

	if initProject {
		return initProjectConfig()
	}
	return initGlobalConfig()
}

func initGlobalConfig() error {
	baseDir := app.GetBaseDir()

	existing, err := globalconfig.LoadGlobalConfig(baseDir)
	if err != nil {
		return fmt.Errorf("failed to check existing config: %w", err)
	}
	path := filepath.Join(baseDir, globalconfig.GlobalConfigFile)
	if existing != nil && !initForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	config := globalconfig.DefaultGlobalConfig()
	if err := globalconfig.SaveGlobalConfig(baseDir, &config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ux.Logger.GreenCheckmarkToUser("Created global config at %s", path)
	return nil
}

func initProjectConfig() error {
	dir := app.GetWorkDir()
	path := filepath.Join(dir, globalconfig.ProjectConfigFile)

	root, err := globalconfig.FindProjectRoot(dir)
	if err == nil && root == dir && !initForce {
		return fmt.Errorf("project config already exists at %s (use --force to overwrite)", path)
	}

	config := &globalconfig.ProjectConfig{
		GlobalConfig: globalconfig.DefaultGlobalConfig(),
		ProjectName:  filepath.Base(dir),
	}
	if err := globalconfig.SaveProjectConfig(dir, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ux.Logger.GreenCheckmarkToUser("Created project config at %s", path)
	return nil
}
