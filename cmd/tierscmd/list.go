// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tierscmd

import (
	"fmt"
	"strconv"

	"github.com/luxfi/vebanny/cmd/flags"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var listFlags flags.ResolverFlags

// vebanny tiers list
func newListCmd() *cobra.Command {
	listFlags = flags.ResolverFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every bucket with its amount bounds and slot indexes",
		Args:  cobra.NoArgs,
		RunE:  listTiers,
	}
	flags.AddResolverFlagsToCmd(cmd, &listFlags)
	return cmd
}

func listTiers(cmd *cobra.Command, _ []string) error {
	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	r, err := listFlags.Resolver(merged)
	if err != nil {
		return err
	}
	stride := len(r.Durations())
	table := ux.DefaultTable(cmd.OutOrStdout(), tw.AlignRight, "Bucket", "From", "To", "Slots")
	for _, rng := range r.Ranges() {
		upper := "+inf"
		if !rng.IsUnbounded() {
			upper = ux.ConvertToStringWithThousandSeparator(rng.Upper)
		}
		first := tokenuri.SlotIndex(rng.Index, 1, stride)
		last := tokenuri.SlotIndex(rng.Index, stride, stride)
		if err := table.Append([]string{
			strconv.Itoa(rng.Index),
			ux.ConvertToStringWithThousandSeparator(rng.Lower),
			upper,
			fmt.Sprintf("%d-%d", first, last),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
