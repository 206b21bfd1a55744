// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package resolvecmd

import (
	"fmt"
	"strconv"

	"github.com/luxfi/vebanny/cmd/flags"
	"github.com/luxfi/vebanny/pkg/application"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	app           *application.App
	resolverFlags flags.ResolverFlags
	explain       bool
)

// vebanny resolve
func NewCmd(injectedApp *application.App) *cobra.Command {
	app = injectedApp
	resolverFlags = flags.ResolverFlags{}
	explain = false
	cmd := &cobra.Command{
		Use:   "resolve <amount> <duration>",
		Short: "Resolve the token URI for a locked amount and duration",
		Long: `Resolve prints the token URI the resolver returns for a lock of <amount>
tokens held for <duration> seconds.

The amount picks a range bucket and the duration must match one of the
configured lock durations exactly.

Examples:
  vebanny resolve 101 2160000
  vebanny resolve --explain 700000001 86400000
  vebanny resolve --preset classic 101 4320000`,
		Args: cobra.ExactArgs(2),
		RunE: resolve,
	}
	flags.AddResolverFlagsToCmd(cmd, &resolverFlags)
	cmd.Flags().BoolVar(&explain, "explain", false, "show the bucket, multiplier and index behind the URI")
	return cmd
}

func resolve(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	duration, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[1], err)
	}

	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	r, err := resolverFlags.Resolver(merged)
	if err != nil {
		return err
	}
	entry, err := r.ResolveEntry(amount, duration)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !explain {
		_, err = fmt.Fprintln(out, entry.URI)
		return err
	}
	return printExplanation(cmd, r, entry)
}

func printExplanation(cmd *cobra.Command, r *tokenuri.Resolver, entry tokenuri.Entry) error {
	bucket, _ := r.Ranges().Bucket(entry.Bucket)
	days := r.Durations().Days()
	out := cmd.OutOrStdout()
	_, err := fmt.Fprintf(out,
		"amount     %s\nbucket     %s\nduration   %d (%s)\nmultiplier %d of %d\nindex      %d of %d\nuri        %s\n",
		ux.ConvertToStringWithThousandSeparator(entry.Amount),
		bucket,
		entry.Duration, days[entry.Multiplier-1],
		entry.Multiplier, len(days),
		entry.Index, r.Slots(),
		entry.URI,
	)
	return err
}
