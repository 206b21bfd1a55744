// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"testing"

	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/models"
	"github.com/luxfi/vebanny/pkg/tokenuri"
)

func TestMergeDefaults(t *testing.T) {
	merged := Merge(nil, nil)

	if merged.Config.Resolver.IPFSRoot != tokenuri.DefaultRoot {
		t.Errorf("expected default root %s, got %s", tokenuri.DefaultRoot, merged.Config.Resolver.IPFSRoot)
	}
	if merged.Sources.IPFSRoot != SourceDefault {
		t.Errorf("expected source %s, got %s", SourceDefault, merged.Sources.IPFSRoot)
	}
	if merged.Config.Network.DefaultNetwork != constants.DefaultNetwork {
		t.Errorf("expected default network %s, got %s", constants.DefaultNetwork, merged.Config.Network.DefaultNetwork)
	}
}

func TestMergeGlobalOverridesDefaults(t *testing.T) {
	global := &GlobalConfig{
		Simulation: SimulationConfig{Amounts: []int64{5, 10}},
	}

	merged := Merge(global, nil)

	if len(merged.Config.Simulation.Amounts) != 2 {
		t.Errorf("expected 2 amounts, got %v", merged.Config.Simulation.Amounts)
	}
	if merged.Sources.Amounts != SourceGlobal {
		t.Errorf("expected source %s, got %s", SourceGlobal, merged.Sources.Amounts)
	}
	if merged.Sources.Ranges != SourceDefault {
		t.Errorf("expected ranges source %s, got %s", SourceDefault, merged.Sources.Ranges)
	}
}

func TestMergeProjectOverridesGlobal(t *testing.T) {
	global := &GlobalConfig{
		Network: NetworkConfig{DefaultNetwork: "mainnet"},
	}
	project := &ProjectConfig{
		GlobalConfig: GlobalConfig{
			Network: NetworkConfig{DefaultNetwork: "rinkeby"},
		},
	}

	merged := Merge(global, project)

	if merged.Config.Network.DefaultNetwork != "rinkeby" {
		t.Errorf("expected rinkeby, got %s", merged.Config.Network.DefaultNetwork)
	}
	if merged.Sources.DefaultNetwork != SourceProject {
		t.Errorf("expected source %s, got %s", SourceProject, merged.Sources.DefaultNetwork)
	}
}

func TestMergePresetReplacesInheritedDurations(t *testing.T) {
	global := &GlobalConfig{
		Resolver: ResolverConfig{Durations: []int64{1, 2, 3}},
	}
	project := &ProjectConfig{
		GlobalConfig: GlobalConfig{
			Resolver: ResolverConfig{Preset: tokenuri.PresetClassic},
		},
	}

	merged := Merge(global, project)
	durations, err := merged.Config.Resolver.DurationTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := tokenuri.DurationPreset(tokenuri.PresetClassic)
	if len(durations) != len(want) || durations[1] != want[1] {
		t.Errorf("expected classic preset %v, got %v", want, durations)
	}
	if merged.Sources.Durations != SourceProject {
		t.Errorf("expected source %s, got %s", SourceProject, merged.Sources.Durations)
	}
}

func TestMergeNetworksLayered(t *testing.T) {
	global := &GlobalConfig{
		Network: NetworkConfig{Networks: map[string]models.Network{
			"rinkeby": {Resolver: "0x00000000000000000000000000000000000000aa"},
		}},
	}
	project := &ProjectConfig{
		GlobalConfig: GlobalConfig{
			Network: NetworkConfig{Networks: map[string]models.Network{
				"rinkeby": {RPC: "http://127.0.0.1:8545"},
			}},
		},
	}

	merged := Merge(global, project)
	n, err := merged.GetNetwork("rinkeby", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Resolver != "0x00000000000000000000000000000000000000aa" || n.RPC != "http://127.0.0.1:8545" {
		t.Errorf("unexpected merged network %+v", n)
	}
	if n.ChainID != constants.RinkebyChainID {
		t.Errorf("expected chain id %d, got %d", constants.RinkebyChainID, n.ChainID)
	}
}

func TestMergedResolver(t *testing.T) {
	merged := Merge(nil, nil)
	r, err := merged.Resolver()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uri, err := r.Resolve(101, 2160000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uri != "ipfs://"+tokenuri.DefaultRoot+"/7" {
		t.Errorf("unexpected uri %s", uri)
	}

	broken := Merge(&GlobalConfig{Resolver: ResolverConfig{IPFSRoot: "not-a-cid"}}, nil)
	if _, err := broken.Resolver(); err == nil {
		t.Fatal("expected invalid root to be rejected")
	}
}

func TestGetAmountsAndDurations(t *testing.T) {
	merged := Merge(nil, nil)

	if got := merged.GetAmounts(nil, false); len(got) != 60 {
		t.Errorf("expected 60 default amounts, got %d", len(got))
	}
	if got := merged.GetAmounts([]int64{9}, true); len(got) != 1 || got[0] != 9 {
		t.Errorf("expected flag amounts, got %v", got)
	}

	durations, err := merged.GetDurations(nil, tokenuri.PresetClassic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if durations[1] != 50*tokenuri.Day {
		t.Errorf("expected classic second duration, got %d", durations[1])
	}
	durations, err = merged.GetDurations([]int64{42}, tokenuri.PresetClassic)
	if err != nil || len(durations) != 1 || durations[0] != 42 {
		t.Errorf("expected flag durations to win, got %v (%v)", durations, err)
	}
	if _, err := merged.GetDurations(nil, "hourly"); err == nil {
		t.Error("expected unknown preset error")
	}
}

func TestGetEffectiveConfig(t *testing.T) {
	baseDir := t.TempDir()
	workDir := t.TempDir()
	ClearCache()

	global := GlobalConfig{Network: NetworkConfig{DefaultNetwork: "mainnet"}}
	if err := SaveGlobalConfig(baseDir, &global); err != nil {
		t.Fatalf("failed to save global config: %v", err)
	}
	project := &ProjectConfig{GlobalConfig: GlobalConfig{Network: NetworkConfig{DefaultNetwork: "mumbai"}}}
	if err := SaveProjectConfig(workDir, project); err != nil {
		t.Fatalf("failed to save project config: %v", err)
	}

	merged, err := GetEffectiveConfig(baseDir, workDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := merged.GetNetwork("", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Name != "mumbai" || n.ChainID != constants.MumbaiChainID {
		t.Errorf("expected mumbai, got %s", n)
	}
}
