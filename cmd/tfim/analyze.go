// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tfim/coupling"
	"github.com/katalvlaran/tfim/order"
	"github.com/katalvlaran/tfim/problem"
	"github.com/katalvlaran/tfim/store"
)

// analyze runs the order-parameter analysis on one solution file, writes
// the records next to the other analyses of the same Γ and archives them
// when a database is configured.
func (a *app) analyze(ctx context.Context, path string) error {
	rep, info, err := a.report(path)
	if err != nil {
		return err
	}
	log := a.log.WithFields(logrus.Fields{
		"source":    path,
		"solutions": rep.Solutions,
		"records":   len(rep.Records),
		"skipped":   rep.Skipped,
	})

	var buf bytes.Buffer
	if _, err = rep.WriteTo(&buf); err != nil {
		return err
	}
	out := problem.AnalysisPath(a.cfg.OutDir, info)
	stop := a.metrics.Time("write")
	err = problem.WriteFileAtomic(out, buf.Bytes())
	stop()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"output":      out,
		"mean_orderp": rep.MeanOrderP(),
	}).Info("analysis written")

	if a.cfg.DB == "" {
		return nil
	}
	st, err := store.Open(a.cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()
	id, err := st.SaveReport(ctx, path, a.runMetadata(info), rep)
	if err != nil {
		return err
	}
	log.WithField("run_id", id).Info("analysis archived")

	return nil
}

// report loads a solution file named after its run and analyzes it.
func (a *app) report(path string) (*order.Report, problem.RunInfo, error) {
	info, err := problem.ParseRunName(path)
	if err != nil {
		return nil, problem.RunInfo{}, err
	}
	stop := a.metrics.Time("read")
	batch, err := problem.ReadSolutions(path)
	stop()
	if err != nil {
		return nil, problem.RunInfo{}, err
	}

	stop = a.metrics.Time("analyze")
	rep, err := order.Analyze(batch.QUBOSolution.Solutions, info.Side, info.Height)
	stop()
	if err != nil {
		return nil, problem.RunInfo{}, err
	}
	a.metrics.ObserveReport(rep)

	return rep, info, nil
}

// runMetadata completes the parameters encoded in a run name with J_L.
// {out-dir}/metadata.json wins when it describes the same lattice, since
// random-coupling runs draw their J_L; otherwise J_L follows from Γ.
func (a *app) runMetadata(info problem.RunInfo) problem.Metadata {
	meta := info.Metadata()
	meta.LayerStrength = coupling.Normalize(coupling.Params{
		Strength: info.Strength,
		Gamma:    info.Gamma,
		Side:     info.Side,
		Height:   info.Height,
	}).LayerStrength

	metaPath := filepath.Join(a.cfg.OutDir, metadataFile)
	stored, err := problem.ReadMetadata(metaPath)
	if err != nil || !stored.SameLattice(meta) {
		a.log.WithField("layer_strength", meta.LayerStrength).Debug("layer strength derived from gamma")
		return meta
	}
	meta.LayerStrength = stored.LayerStrength
	if meta.TimeLimitSec == 0 {
		meta.TimeLimitSec = stored.TimeLimitSec
	}
	a.log.WithFields(logrus.Fields{
		"layer_strength": meta.LayerStrength,
		"metadata":       metaPath,
	}).Debug("layer strength read from metadata")

	return meta
}
