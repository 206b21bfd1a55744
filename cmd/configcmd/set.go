// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"strconv"

	"github.com/luxfi/vebanny/pkg/contract"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/models"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
)

var setProject bool

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the global or project config.

Keys are the ones listed by 'vebanny config get --help'. Lists are comma
separated. Setting durations clears the preset of the same file and setting
a preset clears its durations.

Examples:
  vebanny config set preset classic
  vebanny config set durations 864000,2160000,8640000,21600000,86400000
  vebanny config set ipfsRoot QmauKpZU5NyDWJBkcFZGLCcbXLXZV4z86k2Mhi3sPHvuUZ
  vebanny config set networks.mainnet.resolver 0x5FbDB2315678afecb367f032d93F642f64180aa3
  vebanny config set --project defaultNetwork goerli`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}

	cmd.Flags().BoolVar(&setProject, "project", false, "Set value in project config instead of global")

	return cmd
}

func runSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if setProject {
		return setProjectValue(key, value)
	}
	return setGlobalValue(key, value)
}

func setGlobalValue(key, value string) error {
	baseDir := app.GetBaseDir()

	config, err := globalconfig.LoadGlobalConfig(baseDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if config == nil {
		config = &globalconfig.GlobalConfig{Version: globalconfig.ConfigVersion}
	}

	if err := applyConfigValue(config, key, value); err != nil {
		return err
	}

	if err := globalconfig.SaveGlobalConfig(baseDir, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ux.Logger.PrintToUser("Set %s = %s in global config", key, value)
	return nil
}

func setProjectValue(key, value string) error {
	dir := app.GetWorkDir()
	if root, err := globalconfig.FindProjectRoot(dir); err == nil {
		dir = root
	}
	config, err := globalconfig.LoadProjectConfig(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if config == nil {
		config = &globalconfig.ProjectConfig{
			GlobalConfig: globalconfig.GlobalConfig{Version: globalconfig.ConfigVersion},
		}
	}

	if err := applyConfigValue(&config.GlobalConfig, key, value); err != nil {
		return err
	}

	if err := globalconfig.SaveProjectConfig(dir, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ux.Logger.PrintToUser("Set %s = %s in project config", key, value)
	return nil
}

func applyConfigValue(config *globalconfig.GlobalConfig, key, value string) error {
	if name, field, ok := splitNetworkKey(key); ok {
		return applyNetworkSetting(config, name, field, value)
	}

	switch canonicalKey(key) {
	case keyIPFSRoot:
		if err := tokenuri.ValidateRoot(value); err != nil {
			return err
		}
		config.Resolver.IPFSRoot = value
	case keyPreset:
		if _, err := tokenuri.DurationPreset(value); err != nil {
			return err
		}
		config.Resolver.Preset = value
		config.Resolver.Durations = nil
	case keyDurations:
		durations, err := parseInt64List(value)
		if err != nil {
			return fmt.Errorf("invalid durations value: %w", err)
		}
		if err := tokenuri.DurationTable(durations).Validate(); err != nil {
			return err
		}
		config.Resolver.Durations = durations
		config.Resolver.Preset = ""
	case keyRanges:
		uppers, err := parseInt64List(value)
		if err != nil {
			return fmt.Errorf("invalid ranges value: %w", err)
		}
		ranges, err := tokenuri.NewRangeTable(uppers)
		if err != nil {
			return err
		}
		if err := ranges.Validate(); err != nil {
			return err
		}
		config.Resolver.Ranges = ranges
	case keyAmounts:
		amounts, err := parseInt64List(value)
		if err != nil {
			return fmt.Errorf("invalid amounts value: %w", err)
		}
		for _, a := range amounts {
			if a <= 0 {
				return &tokenuri.AmountError{Amount: a, Reason: "must be positive"}
			}
		}
		config.Simulation.Amounts = amounts
	case keyDefaultNetwork:
		if value == "" {
			return fmt.Errorf("default network cannot be empty")
		}
		config.Network.DefaultNetwork = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func applyNetworkSetting(config *globalconfig.GlobalConfig, name, field, value string) error {
	if config.Network.Networks == nil {
		config.Network.Networks = map[string]models.Network{}
	}
	network := config.Network.Networks[name]
	network.Name = name

	switch field {
	case "rpc":
		network.RPC = value
	case "chainId":
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return fmt.Errorf("invalid chainId value %q", value)
		}
		network.ChainID = id
	case "resolver":
		address, err := contract.ParseAddress(value)
		if err != nil {
			return err
		}
		network.Resolver = address.Hex()
	default:
		return fmt.Errorf("unknown network setting: %s", field)
	}

	config.Network.Networks[name] = network
	return nil
}
