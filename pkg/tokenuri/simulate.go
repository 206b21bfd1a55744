// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenuri

import (
	"iter"
	"slices"
)

// Simulate walks the amount-major cross product of amounts and durations.
// The sequence is recomputed on every range, so it can be replayed freely.
// The first failing pair is yielded with a *SimulationError and ends the walk.
func (r *Resolver) Simulate(amounts, durations []int64) iter.Seq2[Entry, error] {
	amounts = slices.Clone(amounts)
	durations = slices.Clone(durations)
	return func(yield func(Entry, error) bool) {
		for _, amount := range amounts {
			for _, duration := range durations {
				entry, err := r.ResolveEntry(amount, duration)
				if err != nil {
					yield(Entry{Amount: amount, Duration: duration}, &SimulationError{
						Amount:   amount,
						Duration: duration,
						Err:      err,
					})
					return
				}
				if !yield(entry, nil) {
					return
				}
			}
		}
	}
}

// Collect drains seq, stopping at the first error.
func Collect(seq iter.Seq2[Entry, error]) ([]Entry, error) {
	var entries []Entry
	for entry, err := range seq {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Coverage reports which slot indexes in [1, slots] the entries reached.
type Coverage struct {
	Slots   int
	Hit     int
	Missing []int
}

func (c Coverage) Complete() bool {
	return c.Hit == c.Slots
}

func CoverageOf(entries []Entry, slots int) Coverage {
	seen := make([]bool, slots+1)
	cov := Coverage{Slots: slots}
	for _, e := range entries {
		if e.Index < 1 || e.Index > slots || seen[e.Index] {
			continue
		}
		seen[e.Index] = true
		cov.Hit++
	}
	for i := 1; i <= slots; i++ {
		if !seen[i] {
			cov.Missing = append(cov.Missing, i)
		}
	}
	return cov
}
