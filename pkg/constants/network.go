// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Chain IDs of the networks the resolver has been deployed to or tested on.
const (
	MainnetChainID  = 1
	RopstenChainID  = 3
	RinkebyChainID  = 4
	GoerliChainID   = 5
	KovanChainID    = 42
	PolygonChainID  = 137
	GanacheChainID  = 1337
	HardhatChainID  = 31337
	MumbaiChainID   = 80001
	LocalhostRPCURL = "http://localhost:8545"

	DefaultNetwork = "localhost"

	InfuraAPIKeyEnvVar        = "INFURA_API_KEY"
	AlchemyMumbaiAPIKeyEnvVar = "ALCHEMY_MUMBAI_API_KEY"
	AlchemyMaticAPIKeyEnvVar  = "ALCHEMY_MATIC_API_KEY"
)
