// SPDX-License-Identifier: MIT

package coupling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tfim/precision"
)

// Params is the physical parameter set of one run.
type Params struct {
	Strength      float64 // in-plane J
	LayerStrength float64 // inter-layer J_L
	Gamma         float64 // transverse field Γ
	Side          int     // L
	Height        int     // H (Trotter slices)
}

// LayerStrength returns J_L = -½·ln(tanh Γ) rounded to ten decimals, or 0
// when Γ = 0. Γ must be >= 0; see Params.Validate.
// Complexity: O(1).
func LayerStrength(gamma float64) float64 {
	if gamma == 0 {
		return 0
	}

	return precision.Round(-0.5*math.Log(math.Tanh(gamma)), precision.LayerCouplingPlaces)
}

// Validate rejects a transverse field that LayerStrength cannot map.
func (p Params) Validate() error {
	if math.IsNaN(p.Gamma) || math.IsInf(p.Gamma, 0) || p.Gamma < 0 {
		return fmt.Errorf("Validate: gamma=%v: %w", p.Gamma, ErrInvalidGamma)
	}

	return nil
}

// Classical reports whether p describes the single-layer problem without
// transverse field.
func (p Params) Classical() bool {
	return p.Gamma == 0 || p.Height == 1
}

// Normalize derives J_L from Γ and collapses to the classical case when
// Γ = 0 or H = 1 (Γ = 0, J_L = 0, H = 1). Normalize(Normalize(p)) == Normalize(p).
func Normalize(p Params) Params {
	if p.Classical() {
		p.Gamma = 0
		p.LayerStrength = 0
		p.Height = 1

		return p
	}
	p.LayerStrength = LayerStrength(p.Gamma)

	return p
}
