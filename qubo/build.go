// SPDX-License-Identifier: MIT
// Package: tfim/qubo
//
// build.go: Build, the partitioned generator and its ordered merge.
//
// Contract:
//   • Sites are split into contiguous partitions, one goroutine each.
//   • Partitions are merged in site order, so output does not depend on workers.
//   • The lattice is read-only during Build.

package qubo

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tfim/lattice"
)

// Stats counts the bonds Build visited.
type Stats struct {
	FrontEmitted    int // in-plane bonds expanded
	FrontSuppressed int // in-plane bonds dropped by WithoutCycle
	BackEmitted     int // inter-layer bonds expanded
	BackSuppressed  int // layer rings left open by WithoutCycle
	Monomials       int // raw monomials before consolidation
}

// Build expands every bond of lat into monomials and consolidates them.
//
// Front terms are generated for all L²·H sites, then, when H > 1, back terms
// for the L² base sites. With H = 1 no back term is ever produced.
//
// Errors: ErrNilLattice; lattice.ErrCorrupt (wrapped) when lat fails
// Validate. A corrupt lattice is a construction bug and must abort the run.
// Complexity: O(N log N), N = L²·H.
func Build(lat *lattice.Lattice, opts ...Option) (*Polynomial, Stats, error) {
	if lat == nil {
		return nil, Stats{}, quboErrorf("Build", "%w", ErrNilLattice)
	}
	if err := lat.Validate(); err != nil {
		return nil, Stats{}, quboErrorf("Build", "%w", err)
	}
	cfg := newBuildConfig(opts...)

	front, err := generate(lat.Len(), cfg.workers, func(idx int, out []monomial) ([]monomial, bondCounts, error) {
		c, err := frontBonds(lat, idx, cfg.withoutCycle, func(k float64, a, b int) {
			out = appendBond(out, 1, k, a, b)
		})
		return out, c, err
	})
	if err != nil {
		return nil, Stats{}, quboErrorf("Build", "front terms: %w", err)
	}

	var back []partition
	if lat.Height() > 1 {
		back, err = generate(lat.Plane(), cfg.workers, func(idx int, out []monomial) ([]monomial, bondCounts, error) {
			c, err := backBonds(lat, idx, cfg.withoutCycle, func(k float64, a, b int) {
				out = appendBond(out, -1, k, a, b)
			})
			return out, c, err
		})
		if err != nil {
			return nil, Stats{}, quboErrorf("Build", "back terms: %w", err)
		}
	}

	// Sequential merge in site order; this is what keeps the result
	// independent of the worker count.
	poly := NewPolynomial()
	var counts bondCounts
	var stats Stats
	for _, parts := range [][]partition{front, back} {
		for _, p := range parts {
			counts.add(p.counts)
			stats.Monomials += len(p.monomials)
			for _, m := range p.monomials {
				if m.n == 0 {
					poly.constant += m.coef
					continue
				}
				poly.accumulate(m.coef, m.key())
			}
		}
	}
	stats.FrontEmitted = counts.frontEmitted
	stats.FrontSuppressed = counts.frontSuppressed
	stats.BackEmitted = counts.backEmitted
	stats.BackSuppressed = counts.backSuppressed

	return poly, stats, nil
}

// partition holds the raw output of one contiguous site range.
type partition struct {
	monomials []monomial
	counts    bondCounts
}

// generate splits [0,n) into at most workers contiguous ranges, runs site on
// each index and returns the partitions in range order.
func generate(n, workers int, site func(idx int, out []monomial) ([]monomial, bondCounts, error)) ([]partition, error) {
	if workers > n {
		workers = max(n, 1)
	}
	parts := make([]partition, workers)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, min((w+1)*chunk, n)
		g.Go(func() error {
			p := &parts[w]
			for idx := lo; idx < hi; idx++ {
				var c bondCounts
				var err error
				if p.monomials, c, err = site(idx, p.monomials); err != nil {
					return err
				}
				p.counts.add(c)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return parts, nil
}
