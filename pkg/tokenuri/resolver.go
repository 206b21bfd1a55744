// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tokenuri mirrors the on-chain veBanny token URI selection: a locked
// amount picks one of the range buckets, a lock duration picks a multiplier,
// and the pair addresses one medallion under a fixed IPFS root.
package tokenuri

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	URIScheme = "ipfs://"

	cidV0Length = 46
	sha256Code  = 0x12
	sha256Size  = 0x20
)

// Config holds everything the resolver is parameterised by.
type Config struct {
	Root      string
	Ranges    RangeTable
	Durations DurationTable
}

// Validate checks the root and both tables.
func (c Config) Validate() error {
	if err := ValidateRoot(c.Root); err != nil {
		return err
	}
	if err := c.Ranges.Validate(); err != nil {
		return err
	}
	return c.Durations.Validate()
}

// Entry is one resolved (amount, duration) pair.
type Entry struct {
	Amount     int64  `json:"amount"`
	Duration   int64  `json:"duration"`
	Bucket     int    `json:"bucket"`
	Multiplier int    `json:"multiplier"`
	Index      int    `json:"index"`
	URI        string `json:"uri"`
}

type Resolver struct {
	root      string
	ranges    RangeTable
	durations DurationTable
}

// NewResolver validates cfg and returns a resolver over private copies of its tables.
func NewResolver(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{
		root:      cfg.Root,
		ranges:    append(RangeTable(nil), cfg.Ranges...),
		durations: append(DurationTable(nil), cfg.Durations...),
	}, nil
}

// Resolve is a one-shot helper for callers holding a Config.
func Resolve(amount, duration int64, cfg Config) (string, error) {
	r, err := NewResolver(cfg)
	if err != nil {
		return "", err
	}
	return r.Resolve(amount, duration)
}

// Resolve returns ipfs://<root>/<index> for the pair.
func (r *Resolver) Resolve(amount, duration int64) (string, error) {
	entry, err := r.ResolveEntry(amount, duration)
	if err != nil {
		return "", err
	}
	return entry.URI, nil
}

// ResolveEntry resolves the pair and keeps the intermediate bucket and multiplier.
func (r *Resolver) ResolveEntry(amount, duration int64) (Entry, error) {
	bucket, err := r.ranges.Classify(amount)
	if err != nil {
		return Entry{}, err
	}
	multiplier, err := r.durations.MultiplierFor(duration)
	if err != nil {
		return Entry{}, err
	}
	index := SlotIndex(bucket, multiplier, len(r.durations))
	return Entry{
		Amount:     amount,
		Duration:   duration,
		Bucket:     bucket,
		Multiplier: multiplier,
		Index:      index,
		URI:        r.URI(index),
	}, nil
}

// URI formats a slot index under the resolver's root.
func (r *Resolver) URI(index int) string {
	return URIScheme + r.root + "/" + strconv.Itoa(index)
}

func (r *Resolver) Root() string {
	return r.root
}

func (r *Resolver) Ranges() RangeTable {
	return append(RangeTable(nil), r.ranges...)
}

func (r *Resolver) Durations() DurationTable {
	return append(DurationTable(nil), r.durations...)
}

// Slots is the size of the index space, one slot per (bucket, multiplier).
func (r *Resolver) Slots() int {
	return len(r.ranges) * len(r.durations)
}

// SlotIndex computes bucket*stride - stride + multiplier, stride being the
// number of durations. With five durations this is the contract's formula.
func SlotIndex(bucket, multiplier, stride int) int {
	return bucket*stride - stride + multiplier
}

// ValidateRoot accepts a base58 CIDv0 (sha2-256 multihash).
func ValidateRoot(root string) error {
	if len(root) != cidV0Length {
		return fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidRoot, root, len(root), cidV0Length)
	}
	decoded := base58.Decode(root)
	if len(decoded) != sha256Size+2 || decoded[0] != sha256Code || decoded[1] != sha256Size {
		return fmt.Errorf("%w: %q is not a sha2-256 CIDv0", ErrInvalidRoot, root)
	}
	return nil
}
