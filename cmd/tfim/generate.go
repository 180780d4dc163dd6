// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tfim/coupling"
	"github.com/katalvlaran/tfim/lattice"
	"github.com/katalvlaran/tfim/problem"
	"github.com/katalvlaran/tfim/qubo"
)

const (
	inputFile    = "input.json"
	metadataFile = "metadata.json"
)

// generate builds the lattice, assigns couplings, builds the polynomial
// and writes the problem and metadata files under OutDir.
func (a *app) generate(debugOut io.Writer) error {
	p := a.cfg.Params()
	log := a.log.WithFields(logrus.Fields{
		"side":   p.Side,
		"height": p.Height,
		"gamma":  p.Gamma,
		"J":      p.Strength,
	})
	if p.Gamma != a.cfg.Gamma || p.Height != a.cfg.Height {
		log.Info("classical run: gamma=0, height=1, layer strength=0")
	}

	stop := a.metrics.Time("lattice")
	lat, err := lattice.New(p.Side, p.Height)
	stop()
	if err != nil {
		return err
	}

	opts := []coupling.Option{
		coupling.WithStrength(p.Strength),
		coupling.WithLayerStrength(p.LayerStrength),
	}
	if a.cfg.UseRandom {
		log.WithField("seed", a.seed).Info("random couplings")
		opts = append(opts, coupling.WithRandom(), coupling.WithSeed(a.seed))
	}
	stop = a.metrics.Time("couplings")
	sum, err := coupling.Assign(lat, opts...)
	stop()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"layer_strength": sum.LayerStrength,
		"min":            sum.MinInPlane,
		"max":            sum.MaxInPlane,
	}).Debug("couplings assigned")

	buildOpts := []qubo.Option{qubo.WithWorkers(a.cfg.Workers)}
	if a.cfg.WithoutCycle {
		buildOpts = append(buildOpts, qubo.WithoutCycle())
	}
	stop = a.metrics.Time("build")
	poly, stats, err := qubo.Build(lat, buildOpts...)
	stop()
	if err != nil {
		return err
	}
	a.metrics.ObserveBuild(stats, poly.Len())
	log.WithFields(logrus.Fields{
		"terms":            poly.Len(),
		"front_emitted":    stats.FrontEmitted,
		"back_emitted":     stats.BackEmitted,
		"front_suppressed": stats.FrontSuppressed,
		"back_suppressed":  stats.BackSuppressed,
	}).Info("hamiltonian built")

	stop = a.metrics.Time("write")
	defer stop()
	prob := problem.NewProblem(poly, problem.DefaultSolverOptions(a.cfg.TimeLimit))
	inPath := filepath.Join(a.cfg.OutDir, inputFile)
	if err = problem.WriteProblem(inPath, prob); err != nil {
		return err
	}
	meta := a.cfg.Metadata(sum.LayerStrength)
	metaPath := filepath.Join(a.cfg.OutDir, metadataFile)
	if err = problem.WriteMetadata(metaPath, meta); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":    inPath,
		"metadata": metaPath,
		"run":      problem.RunName(meta),
	}).Info("problem written")

	if a.cfg.DebugOutput {
		return dumpDebug(debugOut, lat, poly)
	}

	return nil
}

func dumpDebug(w io.Writer, lat *lattice.Lattice, poly *qubo.Polynomial) error {
	if _, err := lat.WriteTo(w); err != nil {
		return err
	}
	for _, t := range poly.Terms() {
		if _, err := fmt.Fprintf(w, "term %v %g\n", t.Vars, t.Coefficient); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "terms %d\n", poly.Len())

	return err
}
