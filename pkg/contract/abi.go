// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract reads token URIs from a deployed resolver contract and
// checks them against the local resolver.
package contract

import (
	"strings"

	"github.com/luxfi/geth/accounts/abi"
)

// ResolverABI is the minimal view surface of JBVeTokenUriResolver.
const ResolverABI = `[
	{"inputs":[{"internalType":"uint256","name":"_amount","type":"uint256"},{"internalType":"uint256","name":"_duration","type":"uint256"}],"name":"tokenURI","outputs":[{"internalType":"string","name":"uri","type":"string"}],"stateMutability":"view","type":"function"}
]`

const tokenURIMethod = "tokenURI"

func ParseResolverABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(ResolverABI))
}
