// Package coupling assigns bond strengths to a lattice.Lattice and derives
// the inter-layer coupling of the Trotterized transverse-field model.
//
// What:
//
//   - LayerStrength maps the transverse field Γ to J_L = -½·ln(tanh Γ),
//     rounded to precision.LayerCouplingPlaces (J_L = 0 when Γ = 0).
//   - Normalize collapses a parameter set to the classical problem when Γ = 0
//     or H = 1: Γ = 0, J_L = 0, H = 1. Applying it twice changes nothing.
//   - Assign writes the couplings in one of two modes:
//     uniform (every in-plane bond J, every layer bond J_L) or
//     random (per base site three draws in [0,max) rounded to two decimals,
//     replicated on every layer, then one shared layer strength).
//
// Determinism:
//
//   - Random mode consumes the RNG in site-index order (right, bottom,
//     bottom-right) and draws the layer strength last, so a seed fixes the
//     whole assignment.
//   - Uniform mode never touches an RNG.
//
// Options are functional; constructors panic on meaningless values, Assign
// itself never panics.
package coupling
