// SPDX-License-Identifier: MIT
// Package: tfim/qubo
//
// bonds.go: expansion of lattice bonds into raw monomials.
//
// Contract:
//   • Every bond k·s_a·s_b becomes four monomials under s = 2x−1.
//   • Front bonds are the in-plane right, bottom and bottom-right bonds of a site.
//   • Back bonds walk the layer_up ring of a base-layer site, negated.
//   • Suppression (WithoutCycle) drops only bonds crossing the periodic edge.
//   • Nothing here panics; a ring that does not close is lattice.ErrCorrupt.

package qubo

import (
	"github.com/katalvlaran/tfim/lattice"
)

// monomial is one raw, unconsolidated term with at most two variables.
type monomial struct {
	coef float64
	vars [2]int
	n    int // 0 constant, 1 linear, 2 quadratic
}

// key returns the sorted variable tuple used for consolidation.
// The result never aliases m.
func (m monomial) key() []int {
	if m.vars[0] > m.vars[1] && m.n == 2 {
		return []int{m.vars[1], m.vars[0]}
	}

	return append([]int(nil), m.vars[:m.n]...)
}

// appendBond expands sign·k·s_a·s_b with s = 2x−1:
// sign·(4k·x_a·x_b − 2k·x_a − 2k·x_b + k).
// All four monomials are appended even when k = 0.
// Complexity: O(1) amortized.
func appendBond(out []monomial, sign, k float64, a, b int) []monomial {
	k *= sign
	return append(out,
		monomial{coef: 4 * k, vars: [2]int{a, b}, n: 2},
		monomial{coef: -2 * k, vars: [2]int{a}, n: 1},
		monomial{coef: -2 * k, vars: [2]int{b}, n: 1},
		monomial{coef: k},
	)
}

// wraps reports whether the in-plane bond idx→nb along d crosses the
// periodic boundary. A right bond wraps when it lands on a smaller index;
// bottom and bottom-right bonds wrap unless they land exactly one row
// (plus one column) further. The layer direction never wraps here.
func wraps(idx, nb, side int, d lattice.Direction) bool {
	switch d {
	case lattice.Right:
		return nb < idx
	case lattice.Bottom:
		return nb != idx+side
	case lattice.BottomRight:
		return nb != idx+side+1
	default:
		return false
	}
}

// bondCounts tallies bonds per kind for Stats.
type bondCounts struct {
	frontEmitted, frontSuppressed int
	backEmitted, backSuppressed   int
}

func (c *bondCounts) add(o bondCounts) {
	c.frontEmitted += o.frontEmitted
	c.frontSuppressed += o.frontSuppressed
	c.backEmitted += o.backEmitted
	c.backSuppressed += o.backSuppressed
}

// frontBonds visits the in-plane bonds leaving idx; emit receives
// (k, idx, neighbor) for every bond that survives suppression.
//
// Errors: lattice.ErrOutOfRange for an idx outside lat.
// Complexity: O(1), three bonds per site.
func frontBonds(lat *lattice.Lattice, idx int, withoutCycle bool, emit func(k float64, a, b int)) (bondCounts, error) {
	var c bondCounts
	n, err := lat.Node(idx)
	if err != nil {
		return c, err
	}
	for _, d := range lattice.InPlane {
		nb := n.Neighbor(d)
		if withoutCycle && wraps(idx, nb, lat.Side(), d) {
			c.frontSuppressed++
			continue
		}
		emit(n.Coupling(d), idx, nb)
		c.frontEmitted++
	}

	return c, nil
}

// backBonds walks the layer_up ring of base; emit receives (k, cur, next)
// for each bond, k being the layer coupling stored on cur. With
// withoutCycle the bond that would return to base is dropped.
//
// With H = 1 the ring is the self-loop base→base: one bond, or none when
// suppressed.
//
// Errors: lattice.ErrCorrupt when the ring does not return to base within
// H steps; lattice.ErrOutOfRange from node lookups.
// Complexity: O(H).
func backBonds(lat *lattice.Lattice, base int, withoutCycle bool, emit func(k float64, a, b int)) (bondCounts, error) {
	var c bondCounts
	cur := base
	node, err := lat.Node(cur)
	if err != nil {
		return c, err
	}
	next := node.LayerUp
	for steps := 0; ; steps++ {
		if steps >= lat.Height() {
			return c, quboErrorf("backBonds", "ring of site %d does not close: %w", base, lattice.ErrCorrupt)
		}
		if withoutCycle && next == base {
			c.backSuppressed++
			break
		}
		emit(node.JLayerUp, cur, next)
		c.backEmitted++
		if next == base {
			break
		}
		cur = next
		if node, err = lat.Node(cur); err != nil {
			return c, err
		}
		next = node.LayerUp
	}

	return c, nil
}
