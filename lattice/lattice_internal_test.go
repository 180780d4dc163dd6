package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate_DetectsCorruption tampers with the arena directly; no public
// operation can produce these states.
func TestValidate_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name   string
		tamper func(l *Lattice)
	}{
		{"NeighborOutOfRange", func(l *Lattice) { l.nodes[3].Right = len(l.nodes) }},
		{"NegativeNeighbor", func(l *Lattice) { l.nodes[0].LayerUp = -1 }},
		{"WrongNeighbor", func(l *Lattice) { l.nodes[5].Bottom = 6 }},
		{"WrongSublattice", func(l *Lattice) { l.nodes[1].Sublattice = SublatticeA }},
		{"WrongIndex", func(l *Lattice) { l.nodes[2].Index = 7 }},
		{"TruncatedArena", func(l *Lattice) { l.nodes = l.nodes[:4] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(3, 2)
			require.NoError(t, err)
			tc.tamper(l)
			require.ErrorIs(t, l.Validate(), ErrCorrupt)
		})
	}
}
