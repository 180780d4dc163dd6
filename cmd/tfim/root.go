// SPDX-License-Identifier: MIT

package main

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tfim/config"
	"github.com/katalvlaran/tfim/metrics"
)

// app is the state shared by every subcommand after flag parsing.
type app struct {
	cfg     config.Config
	log     *logrus.Logger
	metrics *metrics.Metrics
	seed    int64
}

func newRootCmd() *cobra.Command {
	a := &app{}
	v := viper.New()

	root := &cobra.Command{
		Use:   "tfim",
		Short: "Transverse-field Ising model QUBO builder and solution analyzer",
		Long: `tfim maps a transverse-field Ising model on an L×L×H stacked triangular
lattice to a binary polynomial for a digital annealer.

Without a batch flag it writes {out-dir}/input.json and {out-dir}/metadata.json.
With --gamma-analysis it computes the three-sublattice order parameter of every
layer of every solution in the given file. With --guidance-config it seeds the
next request with one of the given solutions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Bind(v, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.DebugOutput)
			a.metrics = metrics.New()
			a.seed = cfg.Seed
			if a.seed == 0 {
				a.seed = time.Now().UnixNano()
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			switch {
			case a.cfg.GammaAnalysis != "":
				err = a.analyze(cmd.Context(), a.cfg.GammaAnalysis)
			case a.cfg.GuidanceConfig != "":
				err = a.guide(a.cfg.GuidanceConfig)
			default:
				err = a.generate(cmd.OutOrStdout())
			}
			if err != nil {
				a.log.WithError(err).Error("run failed")
				return err
			}

			return a.flushMetrics()
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.MarkFlagsMutuallyExclusive(config.KeyGammaAnalysis, config.KeyGuidanceConfig)

	root.AddCommand(
		newVerifyCmd(a),
		newHistCmd(a),
		newRunsCmd(a),
		newConfigCmd(a),
	)

	return root
}

func (a *app) rng() *rand.Rand {
	return rand.New(rand.NewSource(a.seed))
}

func (a *app) flushMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return err
	}
	a.log.WithField("path", a.cfg.MetricsFile).Debug("metrics written")

	return nil
}
