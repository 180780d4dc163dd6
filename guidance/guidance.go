// SPDX-License-Identifier: MIT
// Package: tfim/guidance
//
// guidance.go: warm-start selection.
//
// Contract:
//   • The lattice check (Γ, J, L, H) runs before anything is drawn or written.
//   • The RNG is supplied by the caller; there is no global source.
//   • Seed leaves the input file untouched on any error.

package guidance

import (
	"fmt"
	"maps"
	"math/rand"

	"github.com/katalvlaran/tfim/problem"
)

// Choice is the selected warm start.
type Choice struct {
	Index         int
	Configuration map[string]bool
	Energy        float64
}

// Select verifies that batchMeta and current describe the same lattice and
// then draws an index uniformly in [0, len(batch)).
//
// Errors: ErrNeedRandSource, ErrMetadataMismatch, ErrEmptyBatch.
func Select(batch []problem.Solution, batchMeta, current problem.Metadata, rng *rand.Rand) (Choice, error) {
	if rng == nil {
		return Choice{}, fmt.Errorf("Select: %w", ErrNeedRandSource)
	}
	if err := checkLattice(batchMeta, current); err != nil {
		return Choice{}, fmt.Errorf("Select: %w", err)
	}
	if len(batch) == 0 {
		return Choice{}, fmt.Errorf("Select: %w", ErrEmptyBatch)
	}
	i := rng.Intn(len(batch))

	return Choice{
		Index:         i,
		Configuration: maps.Clone(batch[i].Configuration),
		Energy:        batch[i].Energy,
	}, nil
}

// checkLattice reports ErrMetadataMismatch unless both runs share Γ, J, L
// and H.
func checkLattice(batchMeta, current problem.Metadata) error {
	if batchMeta.SameLattice(current) {
		return nil
	}

	return fmt.Errorf("batch (Γ=%v J=%v L=%d H=%d) vs current (Γ=%v J=%v L=%d H=%d): %w",
		batchMeta.Gamma, batchMeta.Strength, batchMeta.SideLength, batchMeta.Height,
		current.Gamma, current.Strength, current.SideLength, current.Height,
		ErrMetadataMismatch)
}

// Apply stores c as the guidance configuration of p, replacing any
// previous one.
func Apply(p *problem.Problem, c Choice) {
	p.Solver.GuidanceConfig = maps.Clone(c.Configuration)
}

// Paths names the files Seed touches.
type Paths struct {
	Solutions string // solution file following the run naming scheme
	Metadata  string // metadata of the run about to be submitted
	Input     string // problem file to rewrite
}

// Seed reads the solution batch at paths.Solutions, checks its run name
// against the metadata file, and rewrites paths.Input with a randomly
// chosen configuration. The input file is untouched on any error.
//
// Errors: problem.ErrBadRunName, ErrMetadataMismatch, ErrEmptyBatch, I/O.
func Seed(paths Paths, rng *rand.Rand) (Choice, error) {
	info, err := problem.ParseRunName(paths.Solutions)
	if err != nil {
		return Choice{}, fmt.Errorf("Seed: %w", err)
	}
	current, err := problem.ReadMetadata(paths.Metadata)
	if err != nil {
		return Choice{}, fmt.Errorf("Seed: %w", err)
	}
	// Checked before loading a potentially large solution file.
	if err = checkLattice(info.Metadata(), current); err != nil {
		return Choice{}, fmt.Errorf("Seed: %w", err)
	}
	batch, err := problem.ReadSolutions(paths.Solutions)
	if err != nil {
		return Choice{}, fmt.Errorf("Seed: %w", err)
	}
	input, err := problem.ReadProblem(paths.Input)
	if err != nil {
		return Choice{}, fmt.Errorf("Seed: %w", err)
	}

	choice, err := Select(batch.QUBOSolution.Solutions, info.Metadata(), current, rng)
	if err != nil {
		return Choice{}, err
	}
	Apply(&input, choice)
	if err = problem.WriteProblem(paths.Input, input); err != nil {
		return Choice{}, fmt.Errorf("Seed: %w", err)
	}

	return choice, nil
}
