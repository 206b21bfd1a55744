// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenuri

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSimulateCoversEverySlot(t *testing.T) {
	require := require.New(t)
	r := newDefaultResolver(t)

	entries, err := Collect(r.Simulate(DefaultSampleAmounts(), DefaultDurations()))
	require.NoError(err)
	require.Len(entries, 300)

	for i, e := range entries {
		require.Equal(i+1, e.Index, "sample amounts are bucket lower bounds, so row order follows slot order")
	}
	cov := CoverageOf(entries, r.Slots())
	require.True(cov.Complete())
	require.Empty(cov.Missing)
}

func TestSampleAmountsAreBucketLowerBounds(t *testing.T) {
	if diff := cmp.Diff(CanonicalRanges().LowerBounds(), DefaultSampleAmounts()); diff != "" {
		t.Errorf("sample amounts drifted from the range table (-want +got):\n%s", diff)
	}
}

func TestSimulateIsRestartable(t *testing.T) {
	r := newDefaultResolver(t)
	seq := r.Simulate([]int64{1, 5000, 700000001}, DefaultDurations())

	first, err := Collect(seq)
	require.NoError(t, err)
	second, err := Collect(seq)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestSimulateOrderIsAmountMajor(t *testing.T) {
	r := newDefaultResolver(t)
	entries, err := Collect(r.Simulate([]int64{1, 101}, []int64{864000, 2160000}))
	require.NoError(t, err)

	got := make([][2]int64, len(entries))
	for i, e := range entries {
		got[i] = [2]int64{e.Amount, e.Duration}
	}
	want := [][2]int64{{1, 864000}, {1, 2160000}, {101, 864000}, {101, 2160000}}
	require.Equal(t, want, got)
}

func TestSimulateAbortsOnFirstFailure(t *testing.T) {
	require := require.New(t)
	r := newDefaultResolver(t)

	var seen int
	var failure error
	for entry, err := range r.Simulate([]int64{1, 0, 101}, []int64{864000, 2160000}) {
		if err != nil {
			failure = err
			require.Equal(int64(0), entry.Amount)
			require.Equal(int64(864000), entry.Duration)
			continue
		}
		seen++
	}
	require.Equal(2, seen)
	require.ErrorIs(failure, ErrInvalidAmount)

	var simErr *SimulationError
	require.ErrorAs(failure, &simErr)
	require.Equal(int64(0), simErr.Amount)
	require.Equal(int64(864000), simErr.Duration)
	require.Contains(failure.Error(), "[0|864000]")

	entries, err := Collect(r.Simulate([]int64{1}, []int64{864000, 900000}))
	require.ErrorIs(err, ErrInvalidDuration)
	require.Len(entries, 1)
}

func TestSimulateStopsWhenConsumerBreaks(t *testing.T) {
	r := newDefaultResolver(t)
	n := 0
	for range r.Simulate(DefaultSampleAmounts(), DefaultDurations()) {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestCoverageOfPartialRun(t *testing.T) {
	r := newDefaultResolver(t)
	entries, err := Collect(r.Simulate([]int64{1}, DefaultDurations()))
	require.NoError(t, err)
	cov := CoverageOf(entries, r.Slots())
	require.False(t, cov.Complete())
	require.Equal(t, 5, cov.Hit)
	require.Len(t, cov.Missing, 295)
	require.Equal(t, 6, cov.Missing[0])
}
