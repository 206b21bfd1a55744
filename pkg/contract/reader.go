// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/ethclient"
	"github.com/luxfi/vebanny/pkg/constants"
)

// URIReader returns the token URI a contract reports for a pair.
type URIReader interface {
	TokenURI(ctx context.Context, amount, duration int64) (string, error)
}

// ChainIDReader is satisfied by *ethclient.Client.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// ResolverCaller calls tokenURI on a deployed resolver.
type ResolverCaller struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewResolverCaller binds parsed at address. The resolver is only read, so
// caller is the one backend needed; *ethclient.Client satisfies it.
func NewResolverCaller(address common.Address, parsed abi.ABI, caller bind.ContractCaller) *ResolverCaller {
	return &ResolverCaller{
		address:  address,
		contract: bind.NewBoundContract(address, parsed, caller, nil, nil),
	}
}

func (c *ResolverCaller) Address() common.Address {
	return c.address
}

func (c *ResolverCaller) TokenURI(ctx context.Context, amount, duration int64) (string, error) {
	var result []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &result, tokenURIMethod, big.NewInt(amount), big.NewInt(duration)); err != nil {
		return "", err
	}
	if len(result) == 0 {
		return "", fmt.Errorf("tokenURI(%d,%d) returned no value", amount, duration)
	}
	uri, ok := result[0].(string)
	if !ok {
		return "", fmt.Errorf("tokenURI(%d,%d) returned %T, expected string", amount, duration, result[0])
	}
	return uri, nil
}

// Dial connects to rpcURL, giving up after constants.DefaultDialTimeout.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultDialTimeout)
	defer cancel()
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
	}
	return client, nil
}

// CheckChainID fails when want is set and the endpoint reports another chain.
func CheckChainID(ctx context.Context, reader ChainIDReader, want uint64) error {
	if want == 0 {
		return nil
	}
	got, err := reader.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if !got.IsUint64() || got.Uint64() != want {
		return fmt.Errorf("%w: expected %d, got %s", constants.ErrChainIDMismatch, want, got)
	}
	return nil
}

// ParseAddress rejects anything that is not a 20 byte hex address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid resolver address %q", s)
	}
	return common.HexToAddress(s), nil
}
