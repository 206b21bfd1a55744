// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tierscmd

import (
	"fmt"

	"github.com/luxfi/vebanny/cmd/flags"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	checkFlags   flags.ResolverFlags
	checkAmounts []int64
)

// vebanny tiers check
func newCheckCmd() *cobra.Command {
	checkFlags = flags.ResolverFlags{}
	checkAmounts = nil
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the effective range and duration tables",
		Long: `Check validates the effective configuration: the range table must start
at 1, have no gaps or overlaps and end with an open bucket, the durations
must be positive and ascending, and the IPFS root must be a CIDv0.

It then runs the simulation amounts through the resolver and reports slots
they do not reach.`,
		Args: cobra.NoArgs,
		RunE: checkTiers,
	}
	flags.AddResolverFlagsToCmd(cmd, &checkFlags)
	flags.AddAmountsFlagToCmd(cmd, &checkAmounts)
	return cmd
}

func checkTiers(cmd *cobra.Command, _ []string) error {
	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	r, err := checkFlags.Resolver(merged)
	if err != nil {
		ux.Logger.RedXToUser("%s", err)
		return err
	}
	ux.Logger.GreenCheckmarkToUser("%d buckets, %d durations, %d slots (ranges from %s)",
		len(r.Ranges()), len(r.Durations()), r.Slots(), merged.Sources.Ranges)

	entries, err := tokenuri.Collect(r.Simulate(flags.Amounts(cmd, checkAmounts, merged), r.Durations()))
	if err != nil {
		ux.Logger.RedXToUser("%s", err)
		return err
	}
	cov := tokenuri.CoverageOf(entries, r.Slots())
	if !cov.Complete() {
		err := fmt.Errorf("simulation amounts reach %d of %d slots, first unreached slot is %d", cov.Hit, cov.Slots, cov.Missing[0])
		ux.Logger.RedXToUser("%s", err)
		return err
	}
	ux.Logger.GreenCheckmarkToUser("simulation amounts reach all %d slots", cov.Slots)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return err
}
