// SPDX-License-Identifier: MIT
// Package: tfim/order
//
// param.go: magnetizations, ψ, order_p and c6.
//
// Contract:
//   • ψ is evaluated in closed form, so equal magnetizations give ψ = 0 exactly.
//   • Spins map true → +1, false → −1.
//   • A color with no sites has magnetization 0.

package order

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/tfim/lattice"
	"github.com/katalvlaran/tfim/problem"
)

// Magnetization holds the signed magnetization of each sublattice of one
// layer, indexed by lattice.Sublattice.
type Magnetization [lattice.NumSublattices]float64

var invSqrt3 = 1 / math.Sqrt(3)

// Psi returns the complex order parameter of m.
//
// With e^{±i4π/3} = −½ ∓ i·√3/2 the expression expands to
//
//	Re ψ = (m_A − (m_B + m_C)/2) / √3
//	Im ψ = (m_C − m_B) / 2
//
// which is evaluated directly so equal magnetizations cancel exactly.
func Psi(m Magnetization) complex128 {
	a, b, c := m[lattice.SublatticeA], m[lattice.SublatticeB], m[lattice.SublatticeC]
	re := (a - (b+c)/2) * invSqrt3
	im := (c - b) / 2

	return complex(re, im)
}

// OrderP returns |ψ|².
func OrderP(psi complex128) float64 {
	return real(psi)*real(psi) + imag(psi)*imag(psi)
}

// C6 returns Re(ψ⁶)/|ψ⁶|. ok is false when |ψ⁶| <= tol; with tol = 0 only
// an exact zero is rejected.
func C6(psi complex128, tol float64) (c6 float64, ok bool) {
	p2 := psi * psi
	p6 := p2 * p2 * p2
	norm := cmplx.Abs(p6)
	if norm <= tol || norm == 0 {
		return 0, false
	}

	return real(p6) / norm, true
}

// Magnetizations splits a configuration by layer and sublattice and returns
// one Magnetization per layer. A sublattice with no sites in the
// configuration has magnetization 0.
//
// Errors: problem.ErrBadSiteIndex, ErrLayerOutOfRange, ErrBadGeometry.
// Complexity: O(|configuration|).
func Magnetizations(configuration map[string]bool, side, height int) ([]Magnetization, error) {
	if side <= 0 || height <= 0 {
		return nil, fmt.Errorf("Magnetizations: L=%d H=%d: %w", side, height, ErrBadGeometry)
	}
	plane := side * side
	sums := make([][lattice.NumSublattices]int, height)
	counts := make([][lattice.NumSublattices]int, height)

	for key, up := range configuration {
		idx, err := problem.ParseSiteIndex(key)
		if err != nil {
			return nil, fmt.Errorf("Magnetizations: %w", err)
		}
		layer := idx / plane
		if layer >= height {
			return nil, fmt.Errorf("Magnetizations: site %d is in layer %d of %d: %w",
				idx, layer, height, ErrLayerOutOfRange)
		}
		sub := lattice.SublatticeOf(idx%plane, side)
		counts[layer][sub]++
		if up {
			sums[layer][sub]++
		} else {
			sums[layer][sub]--
		}
	}

	out := make([]Magnetization, height)
	for h := range out {
		for c := range out[h] {
			if counts[h][c] > 0 {
				out[h][c] = float64(sums[h][c]) / float64(counts[h][c])
			}
		}
	}

	return out, nil
}
