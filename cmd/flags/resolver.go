// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"
	"strings"

	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	rootFlag      = "root"
	presetFlag    = "preset"
	durationsFlag = "durations"
	amountsFlag   = "amounts"
)

// ResolverFlags override the resolver section of the effective config.
type ResolverFlags struct {
	Root      string
	Preset    string
	Durations []int64
}

func AddResolverFlagsToCmd(cmd *cobra.Command, f *ResolverFlags) {
	f.AddFlags(cmd.Flags())
}

func (f *ResolverFlags) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Root, rootFlag, "", "IPFS root CID the token URIs live under")
	fs.StringVar(&f.Preset, presetFlag, "", fmt.Sprintf("duration preset (%s)", strings.Join(tokenuri.PresetNames(), ", ")))
	fs.Int64SliceVar(&f.Durations, durationsFlag, nil, "lock durations in seconds, ascending (overrides --preset)")
}

// Resolver builds a resolver from merged with the flags applied on top.
func (f *ResolverFlags) Resolver(merged *globalconfig.MergedConfig) (*tokenuri.Resolver, error) {
	section := merged.Config.Resolver
	if f.Root != "" {
		section.IPFSRoot = f.Root
	}
	durations, err := merged.GetDurations(f.Durations, f.Preset)
	if err != nil {
		return nil, err
	}
	section.Durations = durations
	cfg, err := section.TokenURIConfig()
	if err != nil {
		return nil, err
	}
	return tokenuri.NewResolver(cfg)
}

func AddAmountsFlagToCmd(cmd *cobra.Command, amounts *[]int64) {
	cmd.Flags().Int64SliceVar(amounts, amountsFlag, nil, "locked amounts to walk (defaults to one sample per bucket)")
}

// Amounts returns the flag value when it was given, else the configured amounts.
func Amounts(cmd *cobra.Command, amounts []int64, merged *globalconfig.MergedConfig) []int64 {
	return merged.GetAmounts(amounts, cmd.Flags().Changed(amountsFlag))
}
