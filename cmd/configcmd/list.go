// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"io"

	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/models"
	"github.com/spf13/cobra"
)

var listShowSources bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all configuration values with their effective values.

Shows the merged configuration from all sources (defaults, global, project).
Use --sources to see where each value comes from.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listShowSources, "sources", false, "Show the source of each value")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	sections := []struct {
		name string
		keys []string
	}{
		{"resolver", []string{keyIPFSRoot, keyPreset, keyDurations, keyRanges}},
		{"simulation", []string{keyAmounts}},
		{"network", []string{keyDefaultNetwork}},
	}
	for _, section := range sections {
		fmt.Fprintf(out, "[%s]\n", section.name)
		for _, key := range section.keys {
			value, source, err := getConfigValue(merged, key)
			if err != nil {
				return err
			}
			printValue(out, key[len(section.name)+1:], value, source)
		}
		fmt.Fprintln(out)
	}

	if len(merged.Config.Network.Networks) > 0 {
		fmt.Fprintln(out, "[networks]")
		for _, name := range models.NetworkNames(merged.Config.Network.Networks) {
			n := merged.Networks()[name]
			printValue(out, name, fmt.Sprintf("chain %d, rpc %s, resolver %s", n.ChainID, n.RPC, n.Resolver), merged.Sources.Networks)
		}
		fmt.Fprintln(out)
	}

	if app.ConfigFileExists() {
		fmt.Fprintln(out, "[runtime]")
		path := app.Conf.GetConfigPath()
		fmt.Fprintf(out, "  file = %s\n", path)
		for _, key := range runtimeKeys {
			if app.Conf.ConfigValueIsSet(key) {
				printValue(out, key, app.Conf.GetConfigStringValue(key), globalconfig.ConfigSource(path))
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

// runtimeKeys are read from cli.yaml and VEBANNY_* by viper, not from config.json.
var runtimeKeys = []string{constants.ConfigRPCKey, constants.ConfigNetworkKey, constants.ConfigParallelKey, constants.ConfigTimeoutKey}

func printValue(out io.Writer, name, value string, source globalconfig.ConfigSource) {
	if value == "" {
		value = "(not set)"
	}
	if listShowSources {
		fmt.Fprintf(out, "  %s = %s (%s)\n", name, value, source)
	} else {
		fmt.Fprintf(out, "  %s = %s\n", name, value)
	}
}
