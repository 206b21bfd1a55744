// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/luxfi/vebanny/pkg/constants"
)

// Network is an EVM network the resolver can be read from.
// RPC may contain ${VAR} placeholders resolved from the environment.
type Network struct {
	Name     string `json:"name" yaml:"name"`
	ChainID  uint64 `json:"chainId" yaml:"chainId"`
	RPC      string `json:"rpc,omitempty" yaml:"rpc,omitempty"`
	Resolver string `json:"resolver,omitempty" yaml:"resolver,omitempty"`
}

func (n Network) String() string {
	return fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)
}

// Endpoint expands the RPC template. Placeholders whose variable is unset are
// reported so the caller does not dial a half-built URL.
func (n Network) Endpoint() (string, error) {
	if n.RPC == "" {
		return "", fmt.Errorf("%w for network %s", constants.ErrNoRPCEndpoint, n.Name)
	}
	var missing []string
	endpoint := os.Expand(n.RPC, func(key string) string {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			missing = append(missing, key)
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("network %s needs %s set in the environment", n.Name, strings.Join(missing, ", "))
	}
	return endpoint, nil
}

// KnownNetworks mirrors the networks section of the hardhat project the
// resolver was deployed with.
func KnownNetworks() map[string]Network {
	return map[string]Network{
		"localhost": {Name: "localhost", ChainID: constants.HardhatChainID, RPC: constants.LocalhostRPCURL},
		"hardhat":   {Name: "hardhat", ChainID: constants.HardhatChainID, RPC: constants.LocalhostRPCURL},
		"ganache":   {Name: "ganache", ChainID: constants.GanacheChainID, RPC: "http://localhost:7545"},
		"mainnet":   {Name: "mainnet", ChainID: constants.MainnetChainID, RPC: "https://mainnet.infura.io/v3/${" + constants.InfuraAPIKeyEnvVar + "}"},
		"ropsten":   {Name: "ropsten", ChainID: constants.RopstenChainID, RPC: "https://ropsten.infura.io/v3/${" + constants.InfuraAPIKeyEnvVar + "}"},
		"rinkeby":   {Name: "rinkeby", ChainID: constants.RinkebyChainID, RPC: "https://rinkeby.infura.io/v3/${" + constants.InfuraAPIKeyEnvVar + "}"},
		"goerli":    {Name: "goerli", ChainID: constants.GoerliChainID, RPC: "https://goerli.infura.io/v3/${" + constants.InfuraAPIKeyEnvVar + "}"},
		"kovan":     {Name: "kovan", ChainID: constants.KovanChainID, RPC: "https://kovan.infura.io/v3/${" + constants.InfuraAPIKeyEnvVar + "}"},
		"polygon":   {Name: "polygon", ChainID: constants.PolygonChainID, RPC: "https://polygon-mainnet.g.alchemy.com/v2/${" + constants.AlchemyMaticAPIKeyEnvVar + "}"},
		"matic":     {Name: "matic", ChainID: constants.PolygonChainID, RPC: "https://polygon-mainnet.g.alchemy.com/v2/${" + constants.AlchemyMaticAPIKeyEnvVar + "}"},
		"mumbai":    {Name: "mumbai", ChainID: constants.MumbaiChainID, RPC: "https://polygon-mumbai.g.alchemy.com/v2/${" + constants.AlchemyMumbaiAPIKeyEnvVar + "}"},
	}
}

// MergeNetworks overlays user networks on the known ones. Empty fields in an
// override keep the known value.
func MergeNetworks(base, overrides map[string]Network) map[string]Network {
	merged := make(map[string]Network, len(base)+len(overrides))
	for name, n := range base {
		merged[name] = n
	}
	for name, o := range overrides {
		n := merged[name]
		n.Name = name
		if o.ChainID != 0 {
			n.ChainID = o.ChainID
		}
		if o.RPC != "" {
			n.RPC = o.RPC
		}
		if o.Resolver != "" {
			n.Resolver = o.Resolver
		}
		merged[name] = n
	}
	return merged
}

func NetworkFromString(networks map[string]Network, name string) (Network, error) {
	n, ok := networks[name]
	if !ok {
		return Network{}, fmt.Errorf("%w %q, expected one of %s", constants.ErrUnknownNetwork, name, strings.Join(NetworkNames(networks), ", "))
	}
	return n, nil
}

func NetworkNames(networks map[string]Network) []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
