// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenuri

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount   = errors.New("insufficient balance")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidTable    = errors.New("invalid range table")
	ErrInvalidRoot     = errors.New("invalid ipfs root")
)

// AmountError reports an amount the classifier refused and why.
type AmountError struct {
	Amount int64
	Reason string
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("%s: amount %d %s", ErrInvalidAmount, e.Amount, e.Reason)
}

func (*AmountError) Unwrap() error {
	return ErrInvalidAmount
}

// DurationError reports a duration the lookup refused and why.
type DurationError struct {
	Duration int64
	Reason   string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s: duration %d %s", ErrInvalidDuration, e.Duration, e.Reason)
}

func (*DurationError) Unwrap() error {
	return ErrInvalidDuration
}

// SimulationError identifies the pair that stopped a batch run.
type SimulationError struct {
	Amount   int64
	Duration int64
	Err      error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation aborted at [%d|%d]: %s", e.Amount, e.Duration, e.Err)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}
