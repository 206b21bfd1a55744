// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"testing"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CODESPACES", "CODESPACE_NAME"} {
		t.Setenv(key, "")
	}
}

func TestDetectEnvironmentDevelopment(t *testing.T) {
	clearCIEnv(t)
	if env := DetectEnvironment(); env != EnvDevelopment {
		t.Errorf("expected %s, got %s", EnvDevelopment, env)
	}
}

func TestDetectEnvironmentCI(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CI", "true")
	if env := DetectEnvironment(); env != EnvCI {
		t.Errorf("expected %s, got %s", EnvCI, env)
	}
	if got := SuggestVerifyParallel(); got != 2 {
		t.Errorf("expected 2 parallel reads in CI, got %d", got)
	}
}

func TestDetectEnvironmentCodespace(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CODESPACE_NAME", "vebanny")
	if env := DetectEnvironment(); env != EnvCodespace {
		t.Errorf("expected %s, got %s", EnvCodespace, env)
	}
}

func TestSuggestVerifyParallelDevelopment(t *testing.T) {
	clearCIEnv(t)
	if got := SuggestVerifyParallel(); got < 1 {
		t.Errorf("expected positive parallelism, got %d", got)
	}
}
