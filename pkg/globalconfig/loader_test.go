// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/vebanny/pkg/tokenuri"
)

func TestLoadGlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config returns nil
	ClearCache()
	config, err := LoadGlobalConfig(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error loading non-existent config: %v", err)
	}
	if config != nil {
		t.Fatal("expected nil config for non-existent file")
	}

	// Test loading valid config
	testConfig := DefaultGlobalConfig()
	if err := SaveGlobalConfig(tmpDir, &testConfig); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	ClearCache()
	loaded, err := LoadGlobalConfig(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected non-nil config")
	}
	if loaded.Version != ConfigVersion {
		t.Errorf("expected version %s, got %s", ConfigVersion, loaded.Version)
	}
	if len(loaded.Resolver.Ranges) != 60 {
		t.Fatalf("expected 60 ranges, got %d", len(loaded.Resolver.Ranges))
	}
	if !loaded.Resolver.Ranges[59].IsUnbounded() {
		t.Errorf("expected open last range, got %s", loaded.Resolver.Ranges[59])
	}
}

func TestLoadGlobalConfigOpenUpperBound(t *testing.T) {
	tmpDir := t.TempDir()
	data := []byte(`{"version":"1.0.0","resolver":{"ranges":[{"lower":1,"upper":10,"index":1},{"lower":11,"upper":0,"index":2}]}}`)
	if err := os.WriteFile(filepath.Join(tmpDir, GlobalConfigFile), data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	ClearCache()
	loaded, err := LoadGlobalConfig(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if got := loaded.Resolver.Ranges[1].Upper; got != tokenuri.Unbounded {
		t.Errorf("expected upper 0 to load as unbounded, got %d", got)
	}
}

func TestLoadGlobalConfigRejectsGarbage(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, GlobalConfigFile), []byte("{"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	ClearCache()
	if _, err := LoadGlobalConfig(tmpDir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveGlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()

	config := DefaultGlobalConfig()
	if err := SaveGlobalConfig(tmpDir, &config); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tmpDir, GlobalConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "sub", "dir")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	// Test not found
	_, err := FindProjectRoot(subDir)
	if !os.IsNotExist(err) {
		t.Fatal("expected ErrNotExist for missing project config")
	}

	// Create project config at root
	configPath := filepath.Join(tmpDir, ProjectConfigFile)
	data := []byte(`{"projectName":"vebanny-rinkeby","version":"1.0.0","resolver":{"preset":"classic"}}`)
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	// Test finding from subdirectory
	foundRoot, err := FindProjectRoot(subDir)
	if err != nil {
		t.Fatalf("failed to find project root: %v", err)
	}
	if foundRoot != tmpDir {
		t.Errorf("expected root %s, got %s", tmpDir, foundRoot)
	}

	project, err := LoadProjectConfig(subDir)
	if err != nil {
		t.Fatalf("failed to load project config: %v", err)
	}
	if project.ProjectName != "vebanny-rinkeby" || project.Resolver.Preset != tokenuri.PresetClassic {
		t.Errorf("unexpected project config %+v", project)
	}
}

func TestSaveProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()
	project := &ProjectConfig{ProjectName: "local"}
	project.Resolver.IPFSRoot = tokenuri.DefaultRoot
	if err := SaveProjectConfig(tmpDir, project); err != nil {
		t.Fatalf("failed to save project config: %v", err)
	}
	loaded, err := LoadProjectConfig(tmpDir)
	if err != nil {
		t.Fatalf("failed to load project config: %v", err)
	}
	if loaded.Resolver.IPFSRoot != tokenuri.DefaultRoot {
		t.Errorf("expected root %s, got %s", tokenuri.DefaultRoot, loaded.Resolver.IPFSRoot)
	}
}

func TestCacheClearing(t *testing.T) {
	tmpDir := t.TempDir()

	// Save initial config
	config1 := DefaultGlobalConfig()
	config1.Simulation.Amounts = []int64{1, 2, 3}
	if err := SaveGlobalConfig(tmpDir, &config1); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Load and verify
	ClearCache()
	loaded1, err := LoadGlobalConfig(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if len(loaded1.Simulation.Amounts) != 3 {
		t.Errorf("expected 3 amounts, got %d", len(loaded1.Simulation.Amounts))
	}

	// Rewrite the file behind the cache's back
	if err := os.WriteFile(filepath.Join(tmpDir, GlobalConfigFile), []byte(`{"simulation":{"amounts":[7]}}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cached, _ := LoadGlobalConfig(tmpDir)
	if len(cached.Simulation.Amounts) != 3 {
		t.Errorf("expected cached config, got %v", cached.Simulation.Amounts)
	}

	ClearCache()
	fresh, _ := LoadGlobalConfig(tmpDir)
	if len(fresh.Simulation.Amounts) != 1 || fresh.Simulation.Amounts[0] != 7 {
		t.Errorf("expected fresh config after clearing cache, got %v", fresh.Simulation.Amounts)
	}
}
