// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"fmt"
	"slices"

	"github.com/luxfi/vebanny/pkg/tokenuri"
)

// normalize lets hand-written files leave the last upper bound as 0.
func (r *ResolverConfig) normalize() {
	if n := len(r.Ranges); n > 0 && r.Ranges[n-1].Upper == 0 {
		r.Ranges[n-1].Upper = tokenuri.Unbounded
	}
}

// DurationTable resolves explicit durations or the named preset.
func (r ResolverConfig) DurationTable() (tokenuri.DurationTable, error) {
	if len(r.Durations) > 0 {
		return slices.Clone(r.Durations), nil
	}
	preset := r.Preset
	if preset == "" {
		preset = tokenuri.PresetDefault
	}
	return tokenuri.DurationPreset(preset)
}

// TokenURIConfig converts the resolver section into a validated resolver config.
func (r ResolverConfig) TokenURIConfig() (tokenuri.Config, error) {
	durations, err := r.DurationTable()
	if err != nil {
		return tokenuri.Config{}, err
	}
	ranges := tokenuri.RangeTable(slices.Clone(r.Ranges))
	if len(ranges) == 0 {
		ranges = tokenuri.CanonicalRanges()
	}
	root := r.IPFSRoot
	if root == "" {
		root = tokenuri.DefaultRoot
	}
	cfg := tokenuri.Config{
		Root:      root,
		Ranges:    ranges,
		Durations: durations,
	}
	if err := cfg.Validate(); err != nil {
		return tokenuri.Config{}, fmt.Errorf("invalid resolver configuration: %w", err)
	}
	return cfg, nil
}
