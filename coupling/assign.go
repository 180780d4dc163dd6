// SPDX-License-Identifier: MIT
// Package: tfim/coupling
//
// assign.go: writing couplings on a lattice.
//
// Contract:
//   • Random draws follow base-site index order, then right, bottom, bottom-right.
//   • In-plane couplings are identical on every layer.
//   • Assign never panics.

package coupling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tfim/lattice"
	"github.com/katalvlaran/tfim/precision"
)

// Summary describes the couplings written by Assign.
type Summary struct {
	Random        bool
	LayerStrength float64 // J_L actually stored on every layer bond
	MinInPlane    float64
	MaxInPlane    float64
	MeanInPlane   float64
}

// Assign writes couplings on every bond of lat.
//
// Uniform mode (default): in-plane bonds get WithStrength (default 1.0),
// layer bonds get WithLayerStrength (default 0).
//
// Random mode (WithRandom): for each base-layer site in index order draw
// right, bottom, bottom-right in [0,max) rounded to two decimals and copy
// the triple to the same (i,j) on every layer. When H > 1 one more draw,
// same range and rounding, becomes the layer strength shared by every layer
// bond; with H = 1 the layer strength stays 0.
//
// Errors: ErrNilLattice, ErrNeedRandSource.
// Complexity: O(L²·H).
func Assign(lat *lattice.Lattice, opts ...Option) (Summary, error) {
	if lat == nil {
		return Summary{}, fmt.Errorf("Assign: %w", ErrNilLattice)
	}
	cfg := newAssignConfig(opts...)
	if cfg.random {
		return assignRandom(lat, cfg)
	}

	return assignUniform(lat, cfg)
}

func assignUniform(lat *lattice.Lattice, cfg assignConfig) (Summary, error) {
	for idx := 0; idx < lat.Len(); idx++ {
		for _, d := range lattice.InPlane {
			if err := lat.SetCoupling(idx, d, cfg.strength); err != nil {
				return Summary{}, fmt.Errorf("Assign: %w", err)
			}
		}
		if err := lat.SetCoupling(idx, lattice.LayerUp, cfg.layerStrength); err != nil {
			return Summary{}, fmt.Errorf("Assign: %w", err)
		}
	}

	return Summary{
		LayerStrength: cfg.layerStrength,
		MinInPlane:    cfg.strength,
		MaxInPlane:    cfg.strength,
		MeanInPlane:   cfg.strength,
	}, nil
}

func assignRandom(lat *lattice.Lattice, cfg assignConfig) (Summary, error) {
	if cfg.rng == nil {
		return Summary{}, fmt.Errorf("Assign: %w", ErrNeedRandSource)
	}
	draw := func() float64 {
		return precision.Round(cfg.rng.Float64()*cfg.maxStrength, precision.CouplingPlaces)
	}

	sum := Summary{Random: true, MinInPlane: math.Inf(1), MaxInPlane: math.Inf(-1)}
	var total float64
	plane := lat.Plane()
	for base := 0; base < plane; base++ {
		var triple [len(lattice.InPlane)]float64
		for k := range triple {
			triple[k] = draw()
			total += triple[k]
			sum.MinInPlane = math.Min(sum.MinInPlane, triple[k])
			sum.MaxInPlane = math.Max(sum.MaxInPlane, triple[k])
		}
		for h := 0; h < lat.Height(); h++ {
			for k, d := range lattice.InPlane {
				if err := lat.SetCoupling(h*plane+base, d, triple[k]); err != nil {
					return Summary{}, fmt.Errorf("Assign: %w", err)
				}
			}
		}
	}
	sum.MeanInPlane = total / float64(plane*len(lattice.InPlane))

	if lat.Height() > 1 {
		sum.LayerStrength = draw()
	}
	for idx := 0; idx < lat.Len(); idx++ {
		if err := lat.SetCoupling(idx, lattice.LayerUp, sum.LayerStrength); err != nil {
			return Summary{}, fmt.Errorf("Assign: %w", err)
		}
	}

	return sum, nil
}
