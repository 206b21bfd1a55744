// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/tokenuri"
)

const (
	// ConfigVersion is the current version of the config schema
	ConfigVersion = "1.0.0"
)

// DefaultGlobalConfig returns a new GlobalConfig with default values
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version: ConfigVersion,
		Resolver: ResolverConfig{
			IPFSRoot: tokenuri.DefaultRoot,
			Preset:   tokenuri.PresetDefault,
			Ranges:   tokenuri.CanonicalRanges(),
		},
		Simulation: SimulationConfig{
			Amounts: tokenuri.DefaultSampleAmounts(),
		},
		Network: NetworkConfig{
			DefaultNetwork: constants.DefaultNetwork,
		},
	}
}
