// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	ResolveCmd  = "resolve"
	SimulateCmd = "simulate"
	TiersCmd    = "tiers"
	VerifyCmd   = "verify"
	NetworksCmd = "networks"
	ConfigCmd   = "config"
)
