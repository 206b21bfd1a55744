// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tierscmd

import (
	"fmt"

	"github.com/luxfi/vebanny/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.App

// vebanny tiers
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Inspect the amount range table",
		Long: `The tiers command suite inspects the range table that maps locked
amounts to medallion buckets, checks that it partitions every positive
amount, and exports it for deployment.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newExportCmd())
	return cmd
}
