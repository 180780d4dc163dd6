// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tfim/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or persist the effective configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "save <path>",
		Short: "Write the effective configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], a.cfg); err != nil {
				return err
			}
			a.log.WithField("path", args[0]).Info("configuration saved")

			return nil
		},
	})

	return cmd
}
