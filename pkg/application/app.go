// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"fmt"
	"os"
	"path/filepath"

	luxlog "github.com/luxfi/log"
	"github.com/luxfi/vebanny/pkg/config"
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/globalconfig"
)

// App carries what every command needs: logger, runtime config and the
// directories configuration is read from.
type App struct {
	Log     luxlog.Logger
	baseDir string
	workDir string
	Conf    *config.Config
}

func New() *App {
	return &App{}
}

func (app *App) Setup(baseDir, workDir string, log luxlog.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.workDir = workDir
	app.Log = log
	app.Conf = conf
}

func (app *App) GetBaseDir() string {
	return app.baseDir
}

// GetWorkDir is where the project config search and deployments lookup start.
func (app *App) GetWorkDir() string {
	return app.workDir
}

func (app *App) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *App) GetDeploymentsDir() string {
	return filepath.Join(app.workDir, constants.DeploymentsDir)
}

// GetDeploymentPath points at the hardhat-deploy artifact of the resolver.
func (app *App) GetDeploymentPath(network string) string {
	return filepath.Join(app.GetDeploymentsDir(), network, constants.ResolverContractName+constants.DeploymentArtifactExt)
}

func (app *App) ConfigFileExists() bool {
	return app.Conf != nil && app.Conf.ConfigFileExists()
}

// LoadEffectiveConfig merges defaults, ~/.vebanny/config.json and the nearest .vebanny.json.
func (app *App) LoadEffectiveConfig() (*globalconfig.MergedConfig, error) {
	merged, err := globalconfig.GetEffectiveConfig(app.baseDir, app.workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return merged, nil
}

// WriteOutputFile writes command output, creating parent directories.
func (app *App) WriteOutputFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, constants.DefaultOutputFilePerms)
}
