// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkscmd

import (
	"strconv"

	"github.com/luxfi/vebanny/pkg/application"
	"github.com/luxfi/vebanny/pkg/models"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var app *application.App

// vebanny networks
func NewCmd(injectedApp *application.App) *cobra.Command {
	app = injectedApp
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks verify can read the resolver from",
		Long: `Networks lists the built-in network catalog merged with networks from the
global and project config. The default network is marked with *.

RPC templates like ${INFURA_API_KEY} are expanded from the environment when
the network is used.`,
		Args: cobra.NoArgs,
		RunE: listNetworks,
	}
}

func listNetworks(cmd *cobra.Command, _ []string) error {
	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	networks := merged.Networks()
	defaultNetwork := merged.Config.Network.DefaultNetwork

	table := ux.DefaultTable(cmd.OutOrStdout(), tw.AlignLeft, "Network", "Chain ID", "RPC", "Resolver")
	for _, name := range models.NetworkNames(networks) {
		n := networks[name]
		label := name
		if name == defaultNetwork {
			label += " *"
		}
		resolver := n.Resolver
		if resolver == "" {
			resolver = "-"
		}
		if err := table.Append([]string{label, strconv.FormatUint(n.ChainID, 10), n.RPC, resolver}); err != nil {
			return err
		}
	}
	return table.Render()
}
