// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package verifycmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/vebanny/cmd/flags"
	"github.com/luxfi/vebanny/pkg/application"
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/contract"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/models"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.App

	resolverFlags  flags.ResolverFlags
	amounts        []int64
	addressFlag    string
	deploymentFlag string
	rpcFlag        string
	networkFlag    string
	parallel       int
	callTimeout    time.Duration
)

// target is a resolved resolver contract to read from.
type target struct {
	network  models.Network
	endpoint string
	address  common.Address
	abi      abi.ABI
	// chainID is 0 when the endpoint was given explicitly.
	chainID uint64
}

// dialReader opens a reader for t. Tests replace it.
var dialReader = func(ctx context.Context, t target) (contract.URIReader, func(), error) {
	client, err := contract.Dial(ctx, t.endpoint)
	if err != nil {
		return nil, nil, err
	}
	if err := contract.CheckChainID(ctx, client, t.chainID); err != nil {
		client.Close()
		return nil, nil, err
	}
	return contract.NewResolverCaller(t.address, t.abi, client), client.Close, nil
}

// vebanny verify
func NewCmd(injectedApp *application.App) *cobra.Command {
	app = injectedApp
	resolverFlags = flags.ResolverFlags{}
	amounts = nil
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare a deployed resolver against the local resolver",
		Long: `Verify calls tokenURI(amount, duration) on a deployed JBVeTokenUriResolver
for every pair the simulation walks and compares each answer with the local
resolver. Any pair that differs is listed and the command fails.

The contract address comes from --address, from --deployment (a
hardhat-deploy artifact), from the network's configured resolver, or from
deployments/<network>/JBVeTokenUriResolver.json under the working directory.

The endpoint comes from --rpc, the rpc setting in ~/.vebanny/cli.yaml or
VEBANNY_RPC, or the network catalog. When the endpoint comes from the catalog
its chain id is checked before reading.

Examples:
  vebanny verify --network localhost
  vebanny verify --network mainnet --deployment deployments/mainnet/JBVeTokenUriResolver.json
  vebanny verify --rpc http://127.0.0.1:8545 --address 0x5FbDB2315678afecb367f032d93F642f64180aa3`,
		Args: cobra.NoArgs,
		RunE: verify,
	}
	flags.AddResolverFlagsToCmd(cmd, &resolverFlags)
	flags.AddAmountsFlagToCmd(cmd, &amounts)
	cmd.Flags().StringVar(&addressFlag, "address", "", "resolver contract address")
	cmd.Flags().StringVar(&deploymentFlag, "deployment", "", "hardhat-deploy artifact with the resolver address and ABI")
	cmd.Flags().StringVar(&rpcFlag, "rpc", "", "JSON-RPC endpoint")
	cmd.Flags().StringVar(&networkFlag, "network", "", "network from the catalog (see 'vebanny networks')")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "concurrent tokenURI calls (default depends on the environment)")
	cmd.Flags().DurationVar(&callTimeout, "timeout", constants.DefaultVerifyTimeout, "timeout for each tokenURI call")
	return cmd
}

func verify(cmd *cobra.Command, _ []string) error {
	merged, err := app.LoadEffectiveConfig()
	if err != nil {
		return err
	}
	r, err := resolverFlags.Resolver(merged)
	if err != nil {
		return err
	}
	entries, err := tokenuri.Collect(r.Simulate(flags.Amounts(cmd, amounts, merged), r.Durations()))
	if err != nil {
		return err
	}

	t, err := resolveTarget(cmd, merged)
	if err != nil {
		return err
	}
	app.Log.Info("verifying resolver",
		zap.String("network", t.network.Name),
		zap.String("address", t.address.Hex()),
		zap.Int("pairs", len(entries)),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tracker := ux.NewStepTracker(ux.Logger, 10*time.Second)
	tracker.Start(fmt.Sprintf("Connecting to %s", t.network))
	reader, closeReader, err := dialReader(ctx, t)
	if err != nil {
		tracker.Failed(err.Error())
		return err
	}
	defer closeReader()
	tracker.CompleteSuccess()

	verifier := contract.NewVerifier(reader,
		contract.WithParallel(parallelism(cmd)),
		contract.WithCallTimeout(timeout(cmd)),
		contract.WithLogger(app.Log),
	)
	tracker.Start(fmt.Sprintf("Reading %d token URIs from %s", len(entries), t.address.Hex()))
	report, err := verifier.Verify(ctx, entries)
	if err != nil {
		tracker.Failed(err.Error())
		return err
	}
	tracker.CompleteSuccess()

	if report.OK() {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d/%d match\n", report.Checked, report.Checked)
		return err
	}
	if err := renderMismatches(cmd, report); err != nil {
		return err
	}
	return fmt.Errorf("%d of %d token URIs differ from the local resolver", len(report.Mismatches), report.Checked)
}

func resolveTarget(cmd *cobra.Command, merged *globalconfig.MergedConfig) (target, error) {
	network, err := merged.GetNetwork(networkFlag, cmd.Flags().Changed("network"))
	if err != nil {
		return target{}, err
	}
	t := target{network: network}

	switch {
	case rpcFlag != "":
		t.endpoint = rpcFlag
	case app.Conf != nil && app.Conf.GetConfigStringValue(constants.ConfigRPCKey) != "":
		t.endpoint = app.Conf.GetConfigStringValue(constants.ConfigRPCKey)
	default:
		if t.endpoint, err = network.Endpoint(); err != nil {
			return target{}, err
		}
		t.chainID = network.ChainID
	}
	if cmd.Flags().Changed("network") {
		t.chainID = network.ChainID
	}

	t.address, t.abi, err = resolveAddress(network)
	if err != nil {
		return target{}, err
	}
	return t, nil
}

// resolveAddress picks the contract address and ABI. An artifact is only
// read when no explicit address is given.
func resolveAddress(network models.Network) (common.Address, abi.ABI, error) {
	if addressFlag != "" {
		return addressWithDefaultABI(addressFlag)
	}
	if deploymentFlag != "" {
		return fromDeployment(deploymentFlag)
	}
	if network.Resolver != "" {
		return addressWithDefaultABI(network.Resolver)
	}
	path := app.GetDeploymentPath(network.Name)
	if _, err := os.Stat(path); err == nil {
		return fromDeployment(path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return common.Address{}, abi.ABI{}, err
	}
	return common.Address{}, abi.ABI{}, constants.ErrNoResolverAddress
}

func addressWithDefaultABI(s string) (common.Address, abi.ABI, error) {
	address, err := contract.ParseAddress(s)
	if err != nil {
		return common.Address{}, abi.ABI{}, err
	}
	parsed, err := contract.ParseResolverABI()
	return address, parsed, err
}

func fromDeployment(path string) (common.Address, abi.ABI, error) {
	d, err := contract.LoadDeployment(path)
	if err != nil {
		return common.Address{}, abi.ABI{}, err
	}
	parsed, err := d.ParsedABI()
	return d.Address, parsed, err
}

// parallelism: flag, then cli.yaml/VEBANNY_PARALLEL, then a guess from the environment.
func parallelism(cmd *cobra.Command) int {
	if cmd.Flags().Changed("parallel") && parallel > 0 {
		return parallel
	}
	if app.Conf != nil && app.Conf.ConfigValueIsSet(constants.ConfigParallelKey) {
		if n := app.Conf.GetConfigIntValue(constants.ConfigParallelKey); n > 0 {
			return n
		}
	}
	return globalconfig.SuggestVerifyParallel()
}

func timeout(cmd *cobra.Command) time.Duration {
	if !cmd.Flags().Changed("timeout") && app.Conf != nil && app.Conf.ConfigValueIsSet(constants.ConfigTimeoutKey) {
		if d := app.Conf.GetConfigDurationValue(constants.ConfigTimeoutKey); d > 0 {
			return d
		}
	}
	return callTimeout
}

func renderMismatches(cmd *cobra.Command, report contract.Report) error {
	table := ux.DefaultTable(cmd.OutOrStdout(), tw.AlignLeft, "Amount", "Duration", "Index", "Expected", "On-chain")
	for _, m := range report.Mismatches {
		onChain := m.OnChain
		if onChain == "" {
			onChain = "(empty)"
		}
		if err := table.Append([]string{
			strconv.FormatInt(m.Entry.Amount, 10),
			strconv.FormatInt(m.Entry.Duration, 10),
			strconv.Itoa(m.Entry.Index),
			m.Entry.URI,
			onChain,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
