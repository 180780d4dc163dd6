// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tfim/order"
)

func newHistCmd(a *app) *cobra.Command {
	var bins int
	cmd := &cobra.Command{
		Use:   "hist <solution-file>",
		Short: "Print density histograms of c6 and order_p",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, _, err := a.report(args[0])
			if err != nil {
				return err
			}
			columns := []struct {
				name  string
				field func(order.Record) float64
			}{
				{"c6", func(r order.Record) float64 { return r.C6 }},
				{"order_p", func(r order.Record) float64 { return r.OrderP }},
			}
			w := cmd.OutOrStdout()
			for _, col := range columns {
				h, err := order.NewHistogram(rep.Column(col.field), bins)
				if err != nil {
					return fmt.Errorf("hist %s: %w", col.name, err)
				}
				fmt.Fprintf(w, "# %s center\tdensity\tcount\n", col.name)
				for i, c := range h.Centers {
					fmt.Fprintf(w, "%g\t%g\t%d\n", c, h.Density[i], h.Counts[i])
				}
			}

			return a.flushMetrics()
		},
	}
	cmd.Flags().IntVar(&bins, "bins", order.DefaultBins, "number of bins")

	return cmd
}
