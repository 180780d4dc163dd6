// SPDX-License-Identifier: MIT

package qubo

import (
	"github.com/katalvlaran/tfim/lattice"
)

// IsingEnergy evaluates H_eff = Σ K·s_i·s_j − Σ K'·s_i·s_i' directly on
// spins (true = +1, false = −1), visiting the same bonds Build would with
// the same options. For every assignment x,
//
//	Build(lat).Evaluate(x) == IsingEnergy(lat, x)
//
// up to floating-point rounding.
//
// Errors: ErrNilLattice, ErrAssignmentSize, lattice.ErrCorrupt (wrapped).
// Complexity: O(L²·H).
func IsingEnergy(lat *lattice.Lattice, spins []bool, opts ...Option) (float64, error) {
	if lat == nil {
		return 0, quboErrorf("IsingEnergy", "%w", ErrNilLattice)
	}
	if len(spins) < lat.Len() {
		return 0, quboErrorf("IsingEnergy", "%d spins for %d sites: %w", len(spins), lat.Len(), ErrAssignmentSize)
	}
	if err := lat.Validate(); err != nil {
		return 0, quboErrorf("IsingEnergy", "%w", err)
	}
	cfg := newBuildConfig(opts...)

	var energy float64
	front := func(k float64, a, b int) { energy += k * spin(spins[a]) * spin(spins[b]) }
	back := func(k float64, a, b int) { energy -= k * spin(spins[a]) * spin(spins[b]) }

	for idx := 0; idx < lat.Len(); idx++ {
		if _, err := frontBonds(lat, idx, cfg.withoutCycle, front); err != nil {
			return 0, quboErrorf("IsingEnergy", "%w", err)
		}
	}
	if lat.Height() > 1 {
		for base := 0; base < lat.Plane(); base++ {
			if _, err := backBonds(lat, base, cfg.withoutCycle, back); err != nil {
				return 0, quboErrorf("IsingEnergy", "%w", err)
			}
		}
	}

	return energy, nil
}

func spin(up bool) float64 {
	if up {
		return 1
	}
	return -1
}
