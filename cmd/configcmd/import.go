// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	importProject bool
	importForce   bool
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace a config file with a JSON or YAML document",
		Long: `Import reads a configuration document (.json, .yaml or .yml) with the same
resolver, simulation and network sections as config.json, checks that it
describes a working resolver, and writes it as the global config, or as the
project config with --project.

An existing file is only replaced with --force.

Examples:
  vebanny config import resolver.yaml
  vebanny config import --project --force ci/vebanny.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolVar(&importProject, "project", false, "Import into the project config instead of global")
	cmd.Flags().BoolVar(&importForce, "force", false, "Overwrite existing config file")

	return cmd
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	imported, err := globalconfig.Decode(data, formatOfFile(path))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := validateImport(imported); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if imported.Version == "" {
		imported.Version = globalconfig.ConfigVersion
	}

	if importProject {
		return importProjectConfig(path, imported)
	}
	return importGlobalConfig(path, imported)
}

func formatOfFile(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return constants.FormatYAML
	case ".json":
		return constants.FormatJSON
	default:
		return strings.TrimPrefix(ext, ".")
	}
}

// validateImport builds a resolver from the document layered over the
// defaults, the same way it will be read back.
func validateImport(imported *globalconfig.GlobalConfig) error {
	if _, err := globalconfig.Merge(imported, nil).Resolver(); err != nil {
		return err
	}
	for _, a := range imported.Simulation.Amounts {
		if a <= 0 {
			return &tokenuri.AmountError{Amount: a, Reason: "must be positive"}
		}
	}
	return nil
}

func importGlobalConfig(source string, imported *globalconfig.GlobalConfig) error {
	baseDir := app.GetBaseDir()
	existing, err := globalconfig.LoadGlobalConfig(baseDir)
	if err != nil {
		return fmt.Errorf("failed to check existing config: %w", err)
	}
	path := filepath.Join(baseDir, globalconfig.GlobalConfigFile)
	if existing != nil && !importForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}
	if err := globalconfig.SaveGlobalConfig(baseDir, imported); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	ux.Logger.GreenCheckmarkToUser("Imported %s into %s", source, path)
	return nil
}

func importProjectConfig(source string, imported *globalconfig.GlobalConfig) error {
	dir := app.GetWorkDir()
	path := filepath.Join(dir, globalconfig.ProjectConfigFile)
	root, err := globalconfig.FindProjectRoot(dir)
	if err == nil && root == dir && !importForce {
		return fmt.Errorf("project config already exists at %s (use --force to overwrite)", path)
	}
	config := &globalconfig.ProjectConfig{
		GlobalConfig: *imported,
		ProjectName:  filepath.Base(dir),
	}
	if err := globalconfig.SaveProjectConfig(dir, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	ux.Logger.GreenCheckmarkToUser("Imported %s into %s", source, path)
	return nil
}
