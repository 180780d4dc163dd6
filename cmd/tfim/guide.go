// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tfim/guidance"
)

// guide seeds OutDir/input.json with a configuration drawn from the
// solution batch at path.
func (a *app) guide(path string) error {
	paths := guidance.Paths{
		Solutions: path,
		Metadata:  filepath.Join(a.cfg.OutDir, metadataFile),
		Input:     filepath.Join(a.cfg.OutDir, inputFile),
	}
	stop := a.metrics.Time("guidance")
	choice, err := guidance.Seed(paths, a.rng())
	stop()
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"source": path,
		"index":  choice.Index,
		"energy": choice.Energy,
		"seed":   a.seed,
		"input":  paths.Input,
	}).Info("guidance configuration written")

	return nil
}
