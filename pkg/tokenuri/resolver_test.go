// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenuri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const rootPrefix = "ipfs://" + DefaultRoot + "/"

func newDefaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(DefaultConfig())
	require.NoError(t, err)
	return r
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		duration int64
		want     string
		wantErr  error
	}{
		{name: "smallest amount", amount: 1, duration: 864000, want: rootPrefix + "1"},
		{name: "top of first bucket", amount: 100, duration: 864000, want: rootPrefix + "1"},
		{name: "second bucket second duration", amount: 101, duration: 2160000, want: rootPrefix + "7"},
		{name: "whale", amount: 700000001, duration: 86400000, want: rootPrefix + "300"},
		{name: "zero amount", amount: 0, duration: 864000, wantErr: ErrInvalidAmount},
		{name: "unknown duration", amount: 100, duration: 900000, wantErr: ErrInvalidDuration},
		{name: "negative duration", amount: 100, duration: -864000, wantErr: ErrInvalidDuration},
	}
	r := newDefaultResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.amount, tt.duration)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAmountCheckedFirst(t *testing.T) {
	r := newDefaultResolver(t)
	_, err := r.Resolve(0, 1)
	require.ErrorIs(t, err, ErrInvalidAmount)
	require.NotErrorIs(t, err, ErrInvalidDuration)
}

func TestResolveIsDeterministic(t *testing.T) {
	r := newDefaultResolver(t)
	for _, amount := range DefaultSampleAmounts() {
		first, err := r.Resolve(amount, 8640000)
		require.NoError(t, err)
		second, err := r.Resolve(amount, 8640000)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestSlotIndexIsInjective(t *testing.T) {
	require := require.New(t)
	seen := map[int]struct{}{}
	for bucket := 1; bucket <= 60; bucket++ {
		for multiplier := 1; multiplier <= 5; multiplier++ {
			index := SlotIndex(bucket, multiplier, 5)
			require.Equal(bucket*5-5+multiplier, index)
			require.GreaterOrEqual(index, 1)
			require.LessOrEqual(index, 300)
			_, dup := seen[index]
			require.False(dup, "index %d reached twice", index)
			seen[index] = struct{}{}
		}
	}
	require.Len(seen, 300)
}

func TestResolveEntry(t *testing.T) {
	r := newDefaultResolver(t)
	entry, err := r.ResolveEntry(401, 21600000)
	require.NoError(t, err)
	require.Equal(t, Entry{
		Amount:     401,
		Duration:   21600000,
		Bucket:     4,
		Multiplier: 4,
		Index:      19,
		URI:        rootPrefix + "19",
	}, entry)
	require.Equal(t, 300, r.Slots())
}

func TestNewResolverValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "short root", mutate: func(c *Config) { c.Root = "QmShort" }, wantErr: ErrInvalidRoot},
		{name: "non base58 root", mutate: func(c *Config) { c.Root = DefaultRoot[:45] + "0" }, wantErr: ErrInvalidRoot},
		{name: "gap in ranges", mutate: func(c *Config) { c.Ranges[2].Upper = 300 }, wantErr: ErrInvalidTable},
		{name: "no durations", mutate: func(c *Config) { c.Durations = nil }, wantErr: ErrInvalidDuration},
		{name: "unsorted durations", mutate: func(c *Config) { c.Durations[0], c.Durations[1] = c.Durations[1], c.Durations[0] }, wantErr: ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewResolver(cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolverOwnsItsTables(t *testing.T) {
	cfg := DefaultConfig()
	r, err := NewResolver(cfg)
	require.NoError(t, err)
	cfg.Durations[0] = 1
	cfg.Ranges[0].Upper = 5

	got, err := r.Resolve(50, 864000)
	require.NoError(t, err)
	require.Equal(t, rootPrefix+"1", got)
}

func TestResolveHelperWithClassicPreset(t *testing.T) {
	durations, err := DurationPreset(PresetClassic)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Durations = durations

	got, err := Resolve(101, 50*Day, cfg)
	require.NoError(t, err)
	require.Equal(t, rootPrefix+"7", got)

	_, err = Resolve(101, 25*Day, cfg)
	require.ErrorIs(t, err, ErrInvalidDuration)
}
