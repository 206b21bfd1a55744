// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"fmt"
	"time"

	luxlog "github.com/luxfi/log"
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mismatch is a pair where the contract disagrees with the local resolver.
type Mismatch struct {
	Entry   tokenuri.Entry `json:"entry"`
	OnChain string         `json:"onChain"`
}

type Report struct {
	Checked    int        `json:"checked"`
	Mismatches []Mismatch `json:"mismatches"`
}

func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// CallError wraps a failed tokenURI call.
type CallError struct {
	Amount   int64
	Duration int64
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("tokenURI(%d,%d) failed: %v", e.Amount, e.Duration, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

type Verifier struct {
	reader   URIReader
	parallel int
	timeout  time.Duration
	log      luxlog.Logger
}

type VerifierOption func(*Verifier)

func WithParallel(n int) VerifierOption {
	return func(v *Verifier) {
		if n > 0 {
			v.parallel = n
		}
	}
}

func WithCallTimeout(d time.Duration) VerifierOption {
	return func(v *Verifier) {
		if d > 0 {
			v.timeout = d
		}
	}
}

func WithLogger(log luxlog.Logger) VerifierOption {
	return func(v *Verifier) {
		if log != nil {
			v.log = log
		}
	}
}

func NewVerifier(reader URIReader, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		reader:   reader,
		parallel: constants.DefaultVerifyParallel,
		timeout:  constants.DefaultVerifyTimeout,
		log:      luxlog.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify asks the contract for every entry and reports the ones whose URI
// differs. Mismatches keep the order of entries. Any failed call aborts the
// run and cancels calls still in flight.
func (v *Verifier) Verify(ctx context.Context, entries []tokenuri.Entry) (Report, error) {
	onChain := make([]string, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.parallel)
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			callCtx, cancel := context.WithTimeout(gctx, v.timeout)
			defer cancel()
			uri, err := v.reader.TokenURI(callCtx, entry.Amount, entry.Duration)
			if err != nil {
				return &CallError{Amount: entry.Amount, Duration: entry.Duration, Err: err}
			}
			onChain[i] = uri
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Checked: len(entries)}
	for i, entry := range entries {
		if onChain[i] == entry.URI {
			continue
		}
		v.log.Debug("token URI mismatch",
			zap.Int64("amount", entry.Amount),
			zap.Int64("duration", entry.Duration),
			zap.String("expected", entry.URI),
			zap.String("onChain", onChain[i]),
		)
		report.Mismatches = append(report.Mismatches, Mismatch{Entry: entry, OnChain: onChain[i]})
	}
	return report, nil
}
