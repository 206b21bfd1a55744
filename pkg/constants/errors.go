// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoResolverAddress = errors.New("\n\nNo resolver address found. To resolve this:\n- Pass --address with the deployed JBVeTokenUriResolver address.\n- Or pass --deployment with the hardhat-deploy artifact.\n- Or set networks.<name>.resolver with 'vebanny config set'.\n") //nolint:stylecheck
	ErrNoRPCEndpoint     = errors.New("no RPC endpoint: pass --rpc or --network")
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrChainIDMismatch   = errors.New("chain id mismatch")
)
