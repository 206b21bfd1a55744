// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"os"
	"runtime"

	"github.com/luxfi/vebanny/pkg/constants"
)

// Environment represents the detected development environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvCI          Environment = "ci"
	EnvCodespace   Environment = "codespace"
)

// DetectEnvironment analyzes the current environment
func DetectEnvironment() Environment {
	// Check for CI environments
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" || os.Getenv("JENKINS_URL") != "" {
		return EnvCI
	}

	// Check for GitHub Codespaces
	if os.Getenv("CODESPACES") != "" || os.Getenv("CODESPACE_NAME") != "" {
		return EnvCodespace
	}

	return EnvDevelopment
}

// SuggestVerifyParallel returns how many tokenURI reads to keep in flight.
// Public RPC providers rate limit aggressively, so CI and small machines stay low.
func SuggestVerifyParallel() int {
	switch DetectEnvironment() {
	case EnvCI, EnvCodespace:
		return 2
	}
	if runtime.NumCPU() <= 2 {
		return 4
	}
	return constants.DefaultVerifyParallel
}
