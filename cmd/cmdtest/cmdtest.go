// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cmdtest wires an App against temporary directories for command tests.
package cmdtest

import (
	"bytes"
	"io"
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/luxfi/vebanny/pkg/application"
	"github.com/luxfi/vebanny/pkg/config"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// NewApp returns an App whose base and work directories are fresh temp dirs.
func NewApp(t *testing.T) *application.App {
	t.Helper()
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	globalconfig.ClearCache()
	t.Cleanup(globalconfig.ClearCache)

	app := application.New()
	app.Setup(t.TempDir(), t.TempDir(), luxlog.NewNoOpLogger(), config.NewWithViper(viper.New()))
	return app
}

// UserOutput points ux.Logger at w until the test ends.
func UserOutput(t *testing.T, w io.Writer) {
	t.Helper()
	prev := ux.Logger
	ux.Logger = nil
	ux.NewUserLog(luxlog.NewNoOpLogger(), w)
	t.Cleanup(func() { ux.Logger = prev })
}

// Run executes cmd with args and returns what it wrote to stdout.
func Run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), err
}

// WriteGlobal stores cfg as the app's global config.
func WriteGlobal(t *testing.T, app *application.App, cfg *globalconfig.GlobalConfig) {
	t.Helper()
	require.NoError(t, globalconfig.SaveGlobalConfig(app.GetBaseDir(), cfg))
}
