// SPDX-License-Identifier: MIT

package coupling

import "errors"

var (
	// ErrNilLattice indicates Assign was called without a lattice.
	ErrNilLattice = errors.New("coupling: lattice is nil")
	// ErrNeedRandSource indicates random mode was requested without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("coupling: rng is required for random couplings")
	// ErrInvalidGamma indicates a negative or non-finite transverse field.
	ErrInvalidGamma = errors.New("coupling: gamma must be a finite value >= 0")
)
