// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/vebanny/cmd/cmdtest"
	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/stretchr/testify/require"
)

const importYAML = `resolver:
  durations: [60, 120]
  ranges:
    - {lower: 1, upper: 100, index: 1}
    - {lower: 101, upper: 1000, index: 2}
    - {lower: 1001, upper: 0, index: 3}
simulation:
  amounts: [1, 101, 1001]
network:
  defaultNetwork: rinkeby
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestImportGlobalYAML(t *testing.T) {
	require := require.New(t)
	app := cmdtest.NewApp(t)
	path := writeFile(t, "resolver.yaml", importYAML)

	_, err := cmdtest.Run(t, NewCmd(app), "import", path)
	require.NoError(err)

	out, err := cmdtest.Run(t, NewCmd(app), "get", "--source", "durations")
	require.NoError(err)
	require.Equal("durations = 60,120 (source: global)\n", out)

	cfg, err := globalconfig.LoadGlobalConfig(app.GetBaseDir())
	require.NoError(err)
	require.Equal(globalconfig.ConfigVersion, cfg.Version)
	require.True(cfg.Resolver.Ranges[2].IsUnbounded())
	require.Equal([]int64{1, 101, 1001}, cfg.Simulation.Amounts)

	_, err = cmdtest.Run(t, NewCmd(app), "import", path)
	require.ErrorContains(err, "already exists")
	_, err = cmdtest.Run(t, NewCmd(app), "import", "--force", path)
	require.NoError(err)
}

func TestImportProjectJSON(t *testing.T) {
	app := cmdtest.NewApp(t)
	path := writeFile(t, "vebanny.json", `{"resolver":{"preset":"classic"},"network":{"defaultNetwork":"goerli"}}`)

	_, err := cmdtest.Run(t, NewCmd(app), "import", "--project", path)
	require.NoError(t, err)

	project, err := globalconfig.LoadProjectConfig(app.GetWorkDir())
	require.NoError(t, err)
	require.NotNil(t, project)
	require.Equal(t, filepath.Base(app.GetWorkDir()), project.ProjectName)

	out, err := cmdtest.Run(t, NewCmd(app), "get", "--source", "defaultNetwork")
	require.NoError(t, err)
	require.Equal(t, "defaultNetwork = goerli (source: project)\n", out)
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	app := cmdtest.NewApp(t)

	gap := writeFile(t, "gap.yaml", `resolver:
  ranges:
    - {lower: 1, upper: 300, index: 1}
    - {lower: 401, index: 2}
`)
	_, err := cmdtest.Run(t, NewCmd(app), "import", gap)
	require.ErrorIs(t, err, tokenuri.ErrInvalidTable)

	unsorted := writeFile(t, "unsorted.json", `{"resolver":{"durations":[120,60]}}`)
	_, err = cmdtest.Run(t, NewCmd(app), "import", unsorted)
	require.ErrorIs(t, err, tokenuri.ErrInvalidDuration)

	zero := writeFile(t, "zero.yaml", "simulation:\n  amounts: [1, 0]\n")
	_, err = cmdtest.Run(t, NewCmd(app), "import", zero)
	require.ErrorIs(t, err, tokenuri.ErrInvalidAmount)

	toml := writeFile(t, "resolver.toml", "[resolver]\n")
	_, err = cmdtest.Run(t, NewCmd(app), "import", toml)
	require.ErrorIs(t, err, constants.ErrUnknownFormat)

	_, err = cmdtest.Run(t, NewCmd(app), "import", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read")

	_, err = os.Stat(filepath.Join(app.GetBaseDir(), globalconfig.GlobalConfigFile))
	require.ErrorIs(t, err, os.ErrNotExist)
}
