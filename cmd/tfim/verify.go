// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tfim/problem"
)

var errEnergyMismatch = errors.New("tfim: reported energy differs from the polynomial")

// energyTolerance absorbs the annealer's own float formatting.
const energyTolerance = 1e-6

func newVerifyCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "verify <solution-file>",
		Short: "Re-evaluate every solution against the submitted polynomial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				input = filepath.Join(a.cfg.OutDir, inputFile)
			}

			return a.verify(cmd, args[0], input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "problem file the solutions answer (default {out-dir}/input.json)")

	return cmd
}

func (a *app) verify(cmd *cobra.Command, solPath, inPath string) error {
	prob, err := problem.ReadProblem(inPath)
	if err != nil {
		return err
	}
	poly, err := prob.Polynomial()
	if err != nil {
		return err
	}
	batch, err := problem.ReadSolutions(solPath)
	if err != nil {
		return err
	}

	n := poly.MaxVar() + 1
	if info, perr := problem.ParseRunName(solPath); perr == nil {
		n = max(n, info.Side*info.Side*info.Height)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "solution\treported\tevaluated\tdelta")
	var bad int
	for i, sol := range batch.QUBOSolution.Solutions {
		bits, err := sol.Bits(n)
		if err != nil {
			return fmt.Errorf("verify: solution %d: %w", i, err)
		}
		got, err := poly.Evaluate(bits)
		if err != nil {
			return fmt.Errorf("verify: solution %d: %w", i, err)
		}
		delta := got - sol.Energy
		if math.Abs(delta) > energyTolerance {
			bad++
		}
		fmt.Fprintf(tw, "%d\t%g\t%g\t%g\n", i, sol.Energy, got, delta)
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	if bad > 0 {
		a.log.WithField("mismatched", bad).Error("energy verification failed")
		return fmt.Errorf("verify: %d of %d solutions: %w", bad, len(batch.QUBOSolution.Solutions), errEnergyMismatch)
	}
	a.log.WithField("solutions", len(batch.QUBOSolution.Solutions)).Info("energies verified")

	return nil
}
