// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenuri

import (
	"fmt"
	"slices"
	"sort"
)

// DefaultRoot is the veBanny medallion folder pinned on IPFS.
const DefaultRoot = "QmauKpZU5NyDWJBkcFZGLCcbXLXZV4z86k2Mhi3sPHvuUZ"

const (
	PresetDefault = "default"
	PresetClassic = "classic"
)

// canonicalUppers are the inclusive upper bounds of buckets 1 through 59.
// Bucket 3 runs to 400 so that 301-400 is covered.
var canonicalUppers = []int64{
	100, 200, 400, 500, 600, 700, 800, 900, 1_000,
	2_000, 3_000, 4_000, 5_000, 6_000, 7_000, 8_000, 9_000, 10_000,
	12_000, 14_000, 16_000, 18_000, 20_000, 22_000, 24_000, 26_000, 28_000, 30_000,
	40_000, 50_000, 60_000, 70_000, 80_000, 90_000, 100_000,
	200_000, 300_000, 400_000, 500_000, 600_000, 700_000, 800_000, 900_000, 1_000_000,
	2_000_000, 3_000_000, 4_000_000, 5_000_000, 6_000_000, 7_000_000, 8_000_000, 9_000_000, 10_000_000,
	20_000_000, 40_000_000, 50_000_000, 100_000_000, 500_000_000, 700_000_000,
}

// sampleAmounts holds one amount per bucket, used by the simulation harness.
var sampleAmounts = []int64{
	1, 101, 201, 401, 501, 601, 701, 801, 901, 1001, 2001, 3001, 4001, 5001, 6001, 7001, 8001, 9001,
	10001, 12001, 14001, 16001, 18001, 20001, 22001, 24001, 26001, 28001, 30001, 40001, 50001, 60001,
	70001, 80001, 90001, 100001, 200001, 300001, 400001, 500001, 600001, 700001, 800001, 900001,
	1000001, 2000001, 3000001, 4000001, 5000001, 6000001, 7000001, 8000001, 9000001, 10000001,
	20000001, 40000001, 50000001, 100000001, 500000001, 700000001,
}

var durationPresets = map[string]DurationTable{
	PresetDefault: {10 * Day, 25 * Day, 100 * Day, 250 * Day, 1000 * Day},
	PresetClassic: {10 * Day, 50 * Day, 100 * Day, 500 * Day, 1000 * Day},
}

// CanonicalRanges returns a fresh copy of the 60-bucket table.
func CanonicalRanges() RangeTable {
	table, err := NewRangeTable(canonicalUppers)
	if err != nil {
		panic(err)
	}
	return table
}

// DefaultDurations returns a fresh copy of the default duration preset.
func DefaultDurations() DurationTable {
	return slices.Clone(durationPresets[PresetDefault])
}

// DefaultSampleAmounts returns a fresh copy of the harness amounts.
func DefaultSampleAmounts() []int64 {
	return slices.Clone(sampleAmounts)
}

// DurationPreset looks up a named duration table.
func DurationPreset(name string) (DurationTable, error) {
	preset, ok := durationPresets[name]
	if !ok {
		return nil, fmt.Errorf("unknown duration preset %q, expected one of %v", name, PresetNames())
	}
	return slices.Clone(preset), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(durationPresets))
	for name := range durationPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultConfig is the configuration the deployed resolver was built with.
func DefaultConfig() Config {
	return Config{
		Root:      DefaultRoot,
		Ranges:    CanonicalRanges(),
		Durations: DefaultDurations(),
	}
}
