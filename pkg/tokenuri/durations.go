// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenuri

import "fmt"

// Day is one staking day in seconds.
const Day int64 = 24 * 60 * 60

// DurationTable lists the accepted lock durations in seconds, ascending.
// A duration's multiplier is its 1-based position in the table.
type DurationTable []int64

// Validate requires a non-empty, strictly ascending list of positive durations.
func (t DurationTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: duration table is empty", ErrInvalidDuration)
	}
	for i, d := range t {
		if d <= 0 {
			return &DurationError{Duration: d, Reason: fmt.Sprintf("at position %d must be positive", i)}
		}
		if i > 0 && d <= t[i-1] {
			return &DurationError{Duration: d, Reason: fmt.Sprintf("at position %d must be greater than %d", i, t[i-1])}
		}
	}
	return nil
}

// MultiplierFor returns the stake multiplier of an exact table match.
func (t DurationTable) MultiplierFor(duration int64) (int, error) {
	if duration <= 0 {
		return 0, &DurationError{Duration: duration, Reason: "must be positive"}
	}
	for i, d := range t {
		if d == duration {
			return i + 1, nil
		}
	}
	return 0, &DurationError{Duration: duration, Reason: fmt.Sprintf("is not one of %v", []int64(t))}
}

// Days renders the table in whole days for display.
func (t DurationTable) Days() []string {
	days := make([]string, len(t))
	for i, d := range t {
		if d%Day == 0 {
			days[i] = fmt.Sprintf("%dd", d/Day)
		} else {
			days[i] = fmt.Sprintf("%ds", d)
		}
	}
	return days
}
