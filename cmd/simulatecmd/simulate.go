// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package simulatecmd

import (
	"bytes"
	"fmt"

	"github.com/luxfi/vebanny/cmd/flags"
	"github.com/luxfi/vebanny/pkg/application"
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app           *application.App
	resolverFlags flags.ResolverFlags
	amounts       []int64
	format        string
	outputPath    string
)

// vebanny simulate
func NewCmd(injectedApp *application.App) *cobra.Command {
	app = injectedApp
	resolverFlags = flags.ResolverFlags{}
	amounts = nil
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Resolve every amount against every lock duration",
		Long: `Simulate walks the cross product of amounts and lock durations, amount
first, and prints the token URI of each pair.

With the default amounts (the lower bound of every bucket) and the default
durations the run reaches every one of the 300 medallion slots exactly once.
The run stops at the first pair that cannot be resolved.

Examples:
  vebanny simulate
  vebanny simulate --amounts 1,101,700000001 --format table
  vebanny simulate --format csv --output uris.csv`,
		Args: cobra.NoArgs,
		RunE: simulate,
	}
	flags.AddResolverFlagsToCmd(cmd, &resolverFlags)
	flags.AddAmountsFlagToCmd(cmd, &amounts)
	cmd.Flags().StringVar(&format, "format", constants.FormatText,
		fmt.Sprintf("output format (%s, %s, %s, %s, %s)", constants.FormatText, constants.FormatTable, constants.FormatCSV, constants.FormatJSON, constants.FormatYAML))
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the result to a file instead of stdout")
	return cmd
}

func simulate(cmd *cobra.Command, _ []string) error {
	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	r, err := resolverFlags.Resolver(merged)
	if err != nil {
		return err
	}
	walk := flags.Amounts(cmd, amounts, merged)
	app.Log.Debug("simulating", zap.Int("amounts", len(walk)), zap.Int("durations", len(r.Durations())))

	entries, err := tokenuri.Collect(r.Simulate(walk, r.Durations()))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Render(&buf, format, entries); err != nil {
		return err
	}
	if outputPath != "" {
		if err := app.WriteOutputFile(outputPath, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		ux.Logger.GreenCheckmarkToUser("Wrote %d token URIs to %s", len(entries), outputPath)
	} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	// stdout carrying csv, json or yaml must stay parseable
	user := ux.Logger
	if outputPath == "" && machineReadable(format) {
		user = ux.Logger.WithWriter(cmd.ErrOrStderr())
	}
	reportCoverage(user, tokenuri.CoverageOf(entries, r.Slots()))
	return nil
}

func reportCoverage(user *ux.UserLog, cov tokenuri.Coverage) {
	if cov.Complete() {
		user.GreenCheckmarkToUser("%d/%d slots reached", cov.Hit, cov.Slots)
		return
	}
	user.PrintToUser("Warning: %d/%d slots reached, first unreached slot is %d", cov.Hit, cov.Slots, cov.Missing[0])
}
