// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package resolvecmd

import (
	"testing"

	"github.com/luxfi/vebanny/cmd/cmdtest"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/stretchr/testify/require"
)

const prefix = "ipfs://" + tokenuri.DefaultRoot + "/"

func TestResolve(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"1", "864000"}, prefix + "1\n"},
		{[]string{"100", "864000"}, prefix + "1\n"},
		{[]string{"101", "2160000"}, prefix + "7\n"},
		{[]string{"700000001", "86400000"}, prefix + "300\n"},
		{[]string{"--preset", "classic", "101", "4320000"}, prefix + "7\n"},
	}
	for _, tt := range tests {
		app := cmdtest.NewApp(t)
		out, err := cmdtest.Run(t, NewCmd(app), tt.args...)
		require.NoError(t, err, "args %v", tt.args)
		require.Equal(t, tt.want, out)
	}
}

func TestResolveErrors(t *testing.T) {
	app := cmdtest.NewApp(t)

	_, err := cmdtest.Run(t, NewCmd(app), "0", "864000")
	require.ErrorIs(t, err, tokenuri.ErrInvalidAmount)

	_, err = cmdtest.Run(t, NewCmd(app), "100", "900000")
	require.ErrorIs(t, err, tokenuri.ErrInvalidDuration)

	_, err = cmdtest.Run(t, NewCmd(app), "ten", "864000")
	require.ErrorContains(t, err, `invalid amount "ten"`)

	_, err = cmdtest.Run(t, NewCmd(app), "100")
	require.Error(t, err)
}

func TestResolveExplain(t *testing.T) {
	app := cmdtest.NewApp(t)
	out, err := cmdtest.Run(t, NewCmd(app), "--explain", "401", "21600000")
	require.NoError(t, err)
	require.Contains(t, out, "#4 [401, 500]")
	require.Contains(t, out, "21600000 (250d)")
	require.Contains(t, out, "multiplier 4 of 5")
	require.Contains(t, out, "index      19 of 300")
	require.Contains(t, out, prefix+"19")
}

func TestResolveUsesGlobalConfig(t *testing.T) {
	app := cmdtest.NewApp(t)
	cmdtest.WriteGlobal(t, app, &globalconfig.GlobalConfig{
		Resolver: globalconfig.ResolverConfig{Durations: []int64{60, 120}},
	})

	out, err := cmdtest.Run(t, NewCmd(app), "101", "120")
	require.NoError(t, err)
	require.Equal(t, prefix+"4\n", out)
}
