// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tfim/store"
)

var errNoDB = errors.New("tfim: --db is required")

func newRunsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List archived analyses, or print the records of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DB == "" {
				return errNoDB
			}
			st, err := store.Open(a.cfg.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer tw.Flush()

			if len(args) == 1 {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("runs: %w", err)
				}
				recs, err := st.Records(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "c6\torder_p\tconfig\tlayer\tenergy")
				for _, r := range recs {
					fmt.Fprintln(tw, r.String())
				}

				return nil
			}

			runs, err := st.Runs(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(tw, "id\tcreated\tgamma\tJ\tL\tH\tsolutions\temitted\tskipped\tmean_order_p\tsource")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%d\t%d\t%d\t%d\t%d\t%g\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Meta.Gamma, r.Meta.Strength,
					r.Meta.SideLength, r.Meta.Height, r.Solutions, r.Emitted, r.Skipped,
					r.MeanOrderP, r.Source)
			}

			return nil
		},
	}
}
