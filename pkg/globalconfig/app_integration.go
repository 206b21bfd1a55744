// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"slices"

	"github.com/luxfi/vebanny/pkg/models"
	"github.com/luxfi/vebanny/pkg/tokenuri"
)

// Resolver builds a resolver from the merged configuration.
func (m *MergedConfig) Resolver() (*tokenuri.Resolver, error) {
	cfg, err := m.Config.Resolver.TokenURIConfig()
	if err != nil {
		return nil, err
	}
	return tokenuri.NewResolver(cfg)
}

// GetAmounts returns the effective simulation amounts
// Priority: flagValue (if flagChanged) > project config > global config > defaults
func (m *MergedConfig) GetAmounts(flagValue []int64, flagChanged bool) []int64 {
	if flagChanged && len(flagValue) > 0 {
		return slices.Clone(flagValue)
	}
	if len(m.Config.Simulation.Amounts) > 0 {
		return slices.Clone(m.Config.Simulation.Amounts)
	}
	return tokenuri.DefaultSampleAmounts()
}

// GetDurations returns the effective duration table
// Priority: flag durations > flag preset > config
func (m *MergedConfig) GetDurations(flagValue []int64, preset string) (tokenuri.DurationTable, error) {
	if len(flagValue) > 0 {
		return slices.Clone(flagValue), nil
	}
	if preset != "" {
		return tokenuri.DurationPreset(preset)
	}
	return m.Config.Resolver.DurationTable()
}

// Networks returns the known networks overlaid with configured ones.
func (m *MergedConfig) Networks() map[string]models.Network {
	return models.MergeNetworks(models.KnownNetworks(), m.Config.Network.Networks)
}

// GetNetwork returns the effective network
// Priority: flagValue (if flagChanged) > project config > global config > default
func (m *MergedConfig) GetNetwork(flagValue string, flagChanged bool) (models.Network, error) {
	name := m.Config.Network.DefaultNetwork
	if flagChanged && flagValue != "" {
		name = flagValue
	}
	return models.NetworkFromString(m.Networks(), name)
}
