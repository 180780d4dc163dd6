// SPDX-License-Identifier: MIT
// Package: tfim/lattice
//
// lattice.go: the L×L×H periodic triangular lattice.
//
// Contract:
//   • index = h·L² + i·L + j; neighbors wrap around on every axis.
//   • Topology is fixed by New; only couplings and spins are mutable.
//   • Accessors report ErrOutOfRange instead of panicking.

package lattice

import (
	"bufio"
	"fmt"
	"io"
)

// Lattice is the owned arena of L²·H nodes.
type Lattice struct {
	side   int
	height int
	nodes  []Node
}

// New builds the periodic L×L×H lattice with every coupling set to zero.
//
// Errors: ErrInvalidSide, ErrInvalidHeight.
// Complexity: O(L²·H) time and memory.
func New(side, height int) (*Lattice, error) {
	if side <= 0 || side%NumSublattices != 0 {
		return nil, latticeErrorf("New", "L=%d: %w", side, ErrInvalidSide)
	}
	if height <= 0 {
		return nil, latticeErrorf("New", "H=%d: %w", height, ErrInvalidHeight)
	}

	l := &Lattice{side: side, height: height}
	l.nodes = make([]Node, 0, side*side*height)
	for h := 0; h < height; h++ {
		for i := 0; i < side; i++ {
			for j := 0; j < side; j++ {
				idx := l.Index(h, i, j)
				l.nodes = append(l.nodes, Node{
					Index:       idx,
					Right:       l.Index(h, i, (j+1)%side),
					Bottom:      l.Index(h, (i+1)%side, j),
					BottomRight: l.Index(h, (i+1)%side, (j+1)%side),
					LayerUp:     l.Index((h+1)%height, i, j),
					Sublattice:  SublatticeOf(idx, side),
				})
			}
		}
	}

	return l, nil
}

// Side returns L.
func (l *Lattice) Side() int { return l.side }

// Height returns H, the number of replica layers.
func (l *Lattice) Height() int { return l.height }

// Plane returns L², the number of sites in one layer.
func (l *Lattice) Plane() int { return l.side * l.side }

// Len returns L²·H.
func (l *Lattice) Len() int { return len(l.nodes) }

// Index maps (h,i,j) to h·L² + i·L + j. Coordinates are not range-checked.
func (l *Lattice) Index(h, i, j int) int {
	return h*l.side*l.side + i*l.side + j
}

// Coordinate is the inverse of Index for idx in [0, Len()).
func (l *Lattice) Coordinate(idx int) (h, i, j int) {
	plane := l.Plane()
	h = idx / plane
	rem := idx % plane

	return h, rem / l.side, rem % l.side
}

// Contains reports whether idx addresses a site of l.
func (l *Lattice) Contains(idx int) bool {
	return idx >= 0 && idx < len(l.nodes)
}

// Node returns a copy of the node at idx.
// Errors: ErrOutOfRange.
func (l *Lattice) Node(idx int) (Node, error) {
	if !l.Contains(idx) {
		return Node{}, latticeErrorf("Node", "index %d of %d: %w", idx, len(l.nodes), ErrOutOfRange)
	}

	return l.nodes[idx], nil
}

// Neighbor returns the index reached from idx along d.
// Errors: ErrOutOfRange, ErrUnknownDirection.
func (l *Lattice) Neighbor(idx int, d Direction) (int, error) {
	if !l.Contains(idx) {
		return 0, latticeErrorf("Neighbor", "index %d: %w", idx, ErrOutOfRange)
	}
	n := l.nodes[idx].Neighbor(d)
	if n < 0 {
		return 0, latticeErrorf("Neighbor", "direction %d: %w", d, ErrUnknownDirection)
	}

	return n, nil
}

// SetCoupling sets the strength of the bond leaving idx along d.
// Errors: ErrOutOfRange, ErrUnknownDirection.
func (l *Lattice) SetCoupling(idx int, d Direction, k float64) error {
	if !l.Contains(idx) {
		return latticeErrorf("SetCoupling", "index %d: %w", idx, ErrOutOfRange)
	}
	if !l.nodes[idx].setCoupling(d, k) {
		return latticeErrorf("SetCoupling", "direction %d: %w", d, ErrUnknownDirection)
	}

	return nil
}

// SetSpin stores the debug spin of idx.
// Errors: ErrOutOfRange.
func (l *Lattice) SetSpin(idx int, up bool) error {
	if !l.Contains(idx) {
		return latticeErrorf("SetSpin", "index %d: %w", idx, ErrOutOfRange)
	}
	l.nodes[idx].Spin = up

	return nil
}

// Validate checks every node against the geometry: index, the four
// neighbors and the sublattice tag must match what New computed.
//
// Errors: ErrCorrupt naming the first offending site.
// Complexity: O(L²·H).
func (l *Lattice) Validate() error {
	if l.side <= 0 || l.height <= 0 || len(l.nodes) != l.side*l.side*l.height {
		return latticeErrorf("Validate", "%d nodes for L=%d H=%d: %w", len(l.nodes), l.side, l.height, ErrCorrupt)
	}
	for idx := range l.nodes {
		n := &l.nodes[idx]
		h, i, j := l.Coordinate(idx)
		want := [...]int{
			l.Index(h, i, (j+1)%l.side),
			l.Index(h, (i+1)%l.side, j),
			l.Index(h, (i+1)%l.side, (j+1)%l.side),
			l.Index((h+1)%l.height, i, j),
		}
		for d, w := range want {
			got := n.Neighbor(Direction(d))
			if got != w || !l.Contains(got) {
				return latticeErrorf("Validate", "site %d %s neighbor %d, want %d: %w",
					idx, Direction(d), got, w, ErrCorrupt)
			}
		}
		if n.Index != idx || n.Sublattice != SublatticeOf(idx, l.side) {
			return latticeErrorf("Validate", "site %d index/tag mismatch: %w", idx, ErrCorrupt)
		}
	}

	return nil
}

// WriteTo dumps one line per node, used by the debug output of the CLI.
// It implements io.WriterTo.
func (l *Lattice) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, n := range l.nodes {
		c, err := fmt.Fprintf(bw,
			"node %d [%s] right=%d(%g) bottom=%d(%g) bottom_right=%d(%g) layer_up=%d(%g) spin=%t\n",
			n.Index, n.Sublattice,
			n.Right, n.JRight, n.Bottom, n.JBottom,
			n.BottomRight, n.JBottomRight, n.LayerUp, n.JLayerUp, n.Spin)
		total += int64(c)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}
