// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"slices"

	"github.com/luxfi/vebanny/pkg/models"
)

// ConfigSource indicates where a config value came from
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceGlobal  ConfigSource = "global"
	SourceProject ConfigSource = "project"
	SourceFlag    ConfigSource = "flag"
)

// MergedConfig holds the final merged configuration with source tracking
type MergedConfig struct {
	Config  GlobalConfig
	Sources ConfigSources
}

// ConfigSources tracks where each config value originated
type ConfigSources struct {
	IPFSRoot       ConfigSource
	Durations      ConfigSource
	Ranges         ConfigSource
	Amounts        ConfigSource
	DefaultNetwork ConfigSource
	Networks       ConfigSource
}

// Merge combines default, global, and project configs with proper precedence
// Hierarchy: project > global > defaults
func Merge(global *GlobalConfig, project *ProjectConfig) *MergedConfig {
	merged := &MergedConfig{
		Config: DefaultGlobalConfig(),
		Sources: ConfigSources{
			IPFSRoot:       SourceDefault,
			Durations:      SourceDefault,
			Ranges:         SourceDefault,
			Amounts:        SourceDefault,
			DefaultNetwork: SourceDefault,
			Networks:       SourceDefault,
		},
	}

	// Apply global config
	if global != nil {
		mergeLayer(merged, global, SourceGlobal)
	}

	// Apply project config (highest precedence)
	if project != nil {
		mergeLayer(merged, &project.GlobalConfig, SourceProject)
	}

	return merged
}

func mergeLayer(merged *MergedConfig, layer *GlobalConfig, source ConfigSource) {
	// Resolver settings
	if layer.Resolver.IPFSRoot != "" {
		merged.Config.Resolver.IPFSRoot = layer.Resolver.IPFSRoot
		merged.Sources.IPFSRoot = source
	}
	if layer.Resolver.Preset != "" {
		// a preset replaces durations inherited from a lower layer
		merged.Config.Resolver.Preset = layer.Resolver.Preset
		merged.Config.Resolver.Durations = nil
		merged.Sources.Durations = source
	}
	if len(layer.Resolver.Durations) > 0 {
		merged.Config.Resolver.Durations = slices.Clone(layer.Resolver.Durations)
		merged.Sources.Durations = source
	}
	if len(layer.Resolver.Ranges) > 0 {
		merged.Config.Resolver.Ranges = slices.Clone(layer.Resolver.Ranges)
		merged.Sources.Ranges = source
	}

	// Simulation settings
	if len(layer.Simulation.Amounts) > 0 {
		merged.Config.Simulation.Amounts = slices.Clone(layer.Simulation.Amounts)
		merged.Sources.Amounts = source
	}

	// Network settings
	if layer.Network.DefaultNetwork != "" {
		merged.Config.Network.DefaultNetwork = layer.Network.DefaultNetwork
		merged.Sources.DefaultNetwork = source
	}
	if len(layer.Network.Networks) > 0 {
		merged.Config.Network.Networks = models.MergeNetworks(merged.Config.Network.Networks, layer.Network.Networks)
		merged.Sources.Networks = source
	}
}

// GetEffectiveConfig loads and merges all config sources
func GetEffectiveConfig(baseDir, workDir string) (*MergedConfig, error) {
	global, err := LoadGlobalConfig(baseDir)
	if err != nil {
		return nil, err
	}

	project, err := LoadProjectConfig(workDir)
	if err != nil {
		return nil, err
	}

	return Merge(global, project), nil
}
