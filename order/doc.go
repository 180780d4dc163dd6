// Package order computes the three-sublattice order parameter of annealer
// solutions and its sixth-power chiral invariant.
//
// For every replica layer of a solution:
//
//	m_c   = (Σ_{sites of color c} ±1) / (number of sites of color c)
//	ψ     = (m_A + m_B·e^{i4π/3} + m_C·e^{−i4π/3}) / √3
//	order_p = |ψ|²
//	c6    = Re(ψ⁶) / |ψ⁶|
//
// A layer with ψ⁶ = 0 has no defined c6; it is counted as skipped and
// produces no record. This is an expected outcome, not an error.
//
// ψ is evaluated in the closed form
//
//	Re ψ = (m_A − (m_B + m_C)/2) / √3,  Im ψ = (m_C − m_B) / 2
//
// so equal magnetizations cancel exactly: a uniform layer such as
// m = (1,1,1) has ψ = 0 and is skipped. Evaluating the complex
// exponentials numerically instead leaves a residue of order 1e-16 and
// would emit a record for such layers, so record and skip counts on
// uniform layers differ from that approach.
//
// Records are written one per line as
//
//	c6 \t order_p \t config \t layer \t energy
//
// with floats in their shortest decimal form.
//
// Errors:
//
//   - problem.ErrBadSiteIndex: a configuration key that is not an integer.
//   - ErrLayerOutOfRange: a site index beyond the configured height. Fatal.
//   - ErrAccounting: emitted + skipped != solutions·H. Fatal.
//   - ErrEmptyInput, ErrBadBins: Histogram arguments.
package order
