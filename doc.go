// Package tfim maps the transverse-field Ising model on a stacked
// triangular lattice to a binary polynomial (QUBO) for a digital annealer,
// and analyzes the answers.
//
// What is tfim?
//
//	A Suzuki–Trotter pipeline in small, testable stages:
//		• lattice:   L×L×H periodic triangular lattice, three-sublattice coloring
//		• coupling:  uniform or seeded random J, and J_L = −½ ln tanh Γ
//		• qubo:      front/back bond expansion into an ordered, consolidated polynomial
//		• problem:   annealer request, response, metadata and run-name formats
//		• order:     three-sublattice order parameter ψ, |ψ|², c6 and histograms
//		• guidance:  warm start drawn from a previous batch
//		• store:     SQLite archive of analysis runs
//		• config, metrics, cmd/tfim: the command-line tool
//
// Quick picture of one layer (L = 3), index = i·L + j, colors A/B/C:
//
//	A─B─C
//	│╲│╲│
//	B─C─A
//	│╲│╲│
//	C─A─B
//
// Each site owns three in-plane bonds (right, bottom, bottom-right) and one
// bond to the same site one layer up; all wrap around periodically.
//
//	go install github.com/katalvlaran/tfim/cmd/tfim@latest
package tfim
