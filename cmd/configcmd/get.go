// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"strconv"

	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/spf13/cobra"
)

var getShowSource bool

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value, showing the effective value after merging all config sources.

Keys:
  resolver.ipfsRoot        - IPFS root CID (alias: ipfsRoot)
  resolver.preset          - Duration preset (alias: preset)
  resolver.durations       - Lock durations in seconds (alias: durations)
  resolver.ranges          - Bucket upper bounds (alias: ranges)
  simulation.amounts       - Amounts simulate and verify walk (alias: amounts)
  network.defaultNetwork   - Default network for verify (alias: defaultNetwork)
  networks.<name>.rpc      - RPC endpoint of a network
  networks.<name>.chainId  - Chain ID of a network
  networks.<name>.resolver - Resolver address on a network

Use --source to also show where the value came from (default, global, project).

Examples:
  vebanny config get durations
  vebanny config get --source networks.mainnet.rpc`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}

	cmd.Flags().BoolVar(&getShowSource, "source", false, "Show the source of the value")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}

	value, source, err := getConfigValue(merged, key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if getShowSource {
		_, err = fmt.Fprintf(out, "%s = %s (source: %s)\n", key, value, source)
	} else {
		_, err = fmt.Fprintf(out, "%s = %s\n", key, value)
	}
	return err
}

func getConfigValue(merged *globalconfig.MergedConfig, key string) (string, globalconfig.ConfigSource, error) {
	if name, field, ok := splitNetworkKey(key); ok {
		return getNetworkField(merged, name, field)
	}

	resolver := merged.Config.Resolver
	switch canonicalKey(key) {
	case keyIPFSRoot:
		return resolver.IPFSRoot, merged.Sources.IPFSRoot, nil
	case keyPreset:
		return resolver.Preset, merged.Sources.Durations, nil
	case keyDurations:
		durations, err := resolver.DurationTable()
		if err != nil {
			return "", "", err
		}
		return formatInt64List(durations), merged.Sources.Durations, nil
	case keyRanges:
		ranges := tokenuri.RangeTable(resolver.Ranges)
		if len(ranges) == 0 {
			ranges = tokenuri.CanonicalRanges()
		}
		return formatInt64List(ranges.Uppers()), merged.Sources.Ranges, nil
	case keyAmounts:
		return formatInt64List(merged.GetAmounts(nil, false)), merged.Sources.Amounts, nil
	case keyDefaultNetwork:
		return merged.Config.Network.DefaultNetwork, merged.Sources.DefaultNetwork, nil
	default:
		return "", "", fmt.Errorf("unknown config key: %s", key)
	}
}

func getNetworkField(merged *globalconfig.MergedConfig, name, field string) (string, globalconfig.ConfigSource, error) {
	network, ok := merged.Networks()[name]
	if !ok {
		return "", "", fmt.Errorf("unknown network: %s", name)
	}
	source := globalconfig.SourceDefault
	if _, configured := merged.Config.Network.Networks[name]; configured {
		source = merged.Sources.Networks
	}
	switch field {
	case "rpc":
		return network.RPC, source, nil
	case "chainId":
		return strconv.FormatUint(network.ChainID, 10), source, nil
	case "resolver":
		return network.Resolver, source, nil
	default:
		return "", "", fmt.Errorf("unknown network setting: %s", field)
	}
}
