// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tierscmd

import (
	"fmt"

	"github.com/luxfi/vebanny/cmd/flags"
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	exportFlags  flags.ResolverFlags
	exportFormat string
	exportOutput string
)

// ResolverArgs is what the resolver contract is constructed with.
type ResolverArgs struct {
	IPFSRoot  string           `json:"ipfsRoot" yaml:"ipfsRoot"`
	Durations []int64          `json:"durations" yaml:"durations"`
	Uppers    []int64          `json:"uppers" yaml:"uppers"`
	Ranges    []tokenuri.Range `json:"ranges" yaml:"ranges"`
	Source    string           `json:"source" yaml:"source"`
}

// vebanny tiers export
func newExportCmd() *cobra.Command {
	exportFlags = flags.ResolverFlags{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the effective resolver tables as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE:  exportTiers,
	}
	flags.AddResolverFlagsToCmd(cmd, &exportFlags)
	cmd.Flags().StringVar(&exportFormat, "format", constants.FormatJSON, "output format (json, yaml)")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func exportTiers(cmd *cobra.Command, _ []string) error {
	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	r, err := exportFlags.Resolver(merged)
	if err != nil {
		return err
	}
	ranges := r.Ranges()
	data, err := globalconfig.Encode(ResolverArgs{
		IPFSRoot:  r.Root(),
		Durations: r.Durations(),
		Uppers:    ranges.Uppers(),
		Ranges:    ranges,
		Source:    string(sourceOf(merged)),
	}, exportFormat)
	if err != nil {
		return err
	}
	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := app.WriteOutputFile(exportOutput, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	ux.Logger.GreenCheckmarkToUser("Exported resolver tables to %s", exportOutput)
	return nil
}

// sourceOf names the layer the exported tables came from.
func sourceOf(merged *globalconfig.MergedConfig) globalconfig.ConfigSource {
	if merged.Sources.Ranges != globalconfig.SourceDefault {
		return merged.Sources.Ranges
	}
	return merged.Sources.Durations
}
