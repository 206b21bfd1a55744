// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	keyIPFSRoot       = "resolver.ipfsRoot"
	keyPreset         = "resolver.preset"
	keyDurations      = "resolver.durations"
	keyRanges         = "resolver.ranges"
	keyAmounts        = "simulation.amounts"
	keyDefaultNetwork = "network.defaultNetwork"
	networksSection   = "networks"
)

// shortKeys lets the common settings be named without their section.
var shortKeys = map[string]string{
	"ipfsRoot":       keyIPFSRoot,
	"preset":         keyPreset,
	"durations":      keyDurations,
	"ranges":         keyRanges,
	"amounts":        keyAmounts,
	"defaultNetwork": keyDefaultNetwork,
}

func canonicalKey(key string) string {
	if full, ok := shortKeys[key]; ok {
		return full
	}
	return key
}

// splitNetworkKey parses networks.<name>.<field>.
func splitNetworkKey(key string) (name, field string, ok bool) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 || parts[0] != networksSection || parts[1] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func parseInt64List(value string) ([]int64, error) {
	var out []int64
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.ParseInt(strings.ReplaceAll(field, "_", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func formatInt64List(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
