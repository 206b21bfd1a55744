// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenuri

import (
	"fmt"
	"math"
	"sort"
)

// Unbounded marks the open upper end of the last range.
const Unbounded int64 = math.MaxInt64

// Range is one bucket of the amount domain, inclusive on both ends.
type Range struct {
	Lower int64 `json:"lower" yaml:"lower"`
	Upper int64 `json:"upper" yaml:"upper"`
	Index int   `json:"index" yaml:"index"`
}

func (r Range) Contains(amount int64) bool {
	return amount >= r.Lower && amount <= r.Upper
}

func (r Range) IsUnbounded() bool {
	return r.Upper == Unbounded
}

func (r Range) String() string {
	if r.IsUnbounded() {
		return fmt.Sprintf("#%d [%d, +inf)", r.Index, r.Lower)
	}
	return fmt.Sprintf("#%d [%d, %d]", r.Index, r.Lower, r.Upper)
}

// RangeTable is an ordered, contiguous partition of the positive integers.
type RangeTable []Range

// NewRangeTable builds a table from the ascending inclusive upper bound of
// every bucket but the last, which stays open.
func NewRangeTable(uppers []int64) (RangeTable, error) {
	table := make(RangeTable, 0, len(uppers)+1)
	lower := int64(1)
	for i, upper := range uppers {
		if upper < lower {
			return nil, fmt.Errorf("%w: upper bound %d at position %d is below %d", ErrInvalidTable, upper, i, lower)
		}
		if upper == Unbounded {
			return nil, fmt.Errorf("%w: upper bound at position %d leaves no room for the open range", ErrInvalidTable, i)
		}
		table = append(table, Range{Lower: lower, Upper: upper, Index: i + 1})
		lower = upper + 1
	}
	table = append(table, Range{Lower: lower, Upper: Unbounded, Index: len(uppers) + 1})
	return table, nil
}

// Validate checks the table is contiguous and exhaustive from 1 upward.
func (t RangeTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidTable)
	}
	if t[0].Lower != 1 {
		return fmt.Errorf("%w: first range starts at %d, want 1", ErrInvalidTable, t[0].Lower)
	}
	for i, r := range t {
		if r.Index != i+1 {
			return fmt.Errorf("%w: range %s at position %d, want index %d", ErrInvalidTable, r, i, i+1)
		}
		if r.Upper < r.Lower {
			return fmt.Errorf("%w: range %s is empty", ErrInvalidTable, r)
		}
		if i == len(t)-1 {
			break
		}
		if r.IsUnbounded() {
			return fmt.Errorf("%w: range %s is open but not last", ErrInvalidTable, r)
		}
		next := t[i+1]
		if r.Upper+1 != next.Lower {
			if r.Upper+1 < next.Lower {
				return fmt.Errorf("%w: gap between %s and %s", ErrInvalidTable, r, next)
			}
			return fmt.Errorf("%w: %s overlaps %s", ErrInvalidTable, r, next)
		}
	}
	if last := t[len(t)-1]; !last.IsUnbounded() {
		return fmt.Errorf("%w: last range %s must be open", ErrInvalidTable, last)
	}
	return nil
}

// Classify returns the bucket index of amount.
func (t RangeTable) Classify(amount int64) (int, error) {
	if amount <= 0 {
		return 0, &AmountError{Amount: amount, Reason: "must be at least 1"}
	}
	i := sort.Search(len(t), func(i int) bool { return t[i].Upper >= amount })
	if i == len(t) || !t[i].Contains(amount) {
		return 0, &AmountError{Amount: amount, Reason: "is not covered by any range"}
	}
	return t[i].Index, nil
}

// Bucket returns the range with the given index.
func (t RangeTable) Bucket(index int) (Range, bool) {
	if index < 1 || index > len(t) {
		return Range{}, false
	}
	return t[index-1], true
}

// Uppers returns the finite upper bounds, the inverse of NewRangeTable.
func (t RangeTable) Uppers() []int64 {
	uppers := make([]int64, 0, len(t))
	for _, r := range t {
		if r.IsUnbounded() {
			break
		}
		uppers = append(uppers, r.Upper)
	}
	return uppers
}

// LowerBounds returns the first amount of every bucket.
func (t RangeTable) LowerBounds() []int64 {
	lowers := make([]int64, len(t))
	for i, r := range t {
		lowers[i] = r.Lower
	}
	return lowers
}
