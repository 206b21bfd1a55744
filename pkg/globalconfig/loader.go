// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/luxfi/vebanny/pkg/constants"
)

const (
	GlobalConfigFile  = "config.json"
	ProjectConfigFile = ".vebanny.json"
)

var (
	globalConfigCache = map[string]*GlobalConfig{}
	cacheMu           sync.RWMutex
)

// LoadGlobalConfig loads the global config from ~/.vebanny/config.json
func LoadGlobalConfig(baseDir string) (*GlobalConfig, error) {
	configPath := filepath.Join(baseDir, GlobalConfigFile)

	cacheMu.RLock()
	if cached, ok := globalConfigCache[configPath]; ok {
		defer cacheMu.RUnlock()
		return cached, nil
	}
	cacheMu.RUnlock()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var config GlobalConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	config.Resolver.normalize()

	cacheMu.Lock()
	globalConfigCache[configPath] = &config
	cacheMu.Unlock()

	return &config, nil
}

// SaveGlobalConfig saves the global config to ~/.vebanny/config.json
func SaveGlobalConfig(baseDir string, config *GlobalConfig) error {
	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		return err
	}

	configPath := filepath.Join(baseDir, GlobalConfigFile)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	cacheMu.Lock()
	globalConfigCache[configPath] = config
	cacheMu.Unlock()

	return os.WriteFile(configPath, data, constants.WriteReadReadPerms)
}

// LoadProjectConfig loads the project config by searching upward from startDir
func LoadProjectConfig(startDir string) (*ProjectConfig, error) {
	projectRoot, err := FindProjectRoot(startDir)
	if err != nil {
		return nil, nil // No project config found
	}

	configPath := filepath.Join(projectRoot, ProjectConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var config ProjectConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	config.Resolver.normalize()

	return &config, nil
}

// SaveProjectConfig saves the project config to .vebanny.json in dir
func SaveProjectConfig(dir string, config *ProjectConfig) error {
	configPath := filepath.Join(dir, ProjectConfigFile)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, constants.WriteReadReadPerms)
}

// FindProjectRoot searches upward from startDir to find .vebanny.json
func FindProjectRoot(startDir string) (string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// ClearCache clears the global config cache
func ClearCache() {
	cacheMu.Lock()
	globalConfigCache = map[string]*GlobalConfig{}
	cacheMu.Unlock()
}
