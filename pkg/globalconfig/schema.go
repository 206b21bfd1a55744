// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"github.com/luxfi/vebanny/pkg/models"
	"github.com/luxfi/vebanny/pkg/tokenuri"
)

// GlobalConfig represents the global configuration stored in ~/.vebanny/config.json
type GlobalConfig struct {
	Version    string           `json:"version" yaml:"version"`
	Resolver   ResolverConfig   `json:"resolver" yaml:"resolver"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Network    NetworkConfig    `json:"network" yaml:"network"`
}

// ResolverConfig mirrors the constructor arguments of the on-chain resolver.
// Durations, when set, win over Preset.
type ResolverConfig struct {
	IPFSRoot  string           `json:"ipfsRoot,omitempty" yaml:"ipfsRoot,omitempty"`
	Preset    string           `json:"preset,omitempty" yaml:"preset,omitempty"`
	Durations []int64          `json:"durations,omitempty" yaml:"durations,omitempty"`
	Ranges    []tokenuri.Range `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

// SimulationConfig holds the amounts the harness walks.
type SimulationConfig struct {
	Amounts []int64 `json:"amounts,omitempty" yaml:"amounts,omitempty"`
}

// NetworkConfig contains network-related settings
type NetworkConfig struct {
	DefaultNetwork string                    `json:"defaultNetwork,omitempty" yaml:"defaultNetwork,omitempty"`
	Networks       map[string]models.Network `json:"networks,omitempty" yaml:"networks,omitempty"`
}

// ProjectConfig represents project-local configuration in .vebanny.json
type ProjectConfig struct {
	GlobalConfig
	ProjectName string `json:"projectName,omitempty" yaml:"projectName,omitempty"`
}
