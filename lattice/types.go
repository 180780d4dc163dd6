// SPDX-License-Identifier: MIT

package lattice

// Sublattice is one of the three interleaved site groups of the triangular
// lattice. The analysis names them blue, black and red.
type Sublattice uint8

const (
	// SublatticeA holds sites with ((index/L)+index) mod 3 == 0 (blue).
	SublatticeA Sublattice = iota
	// SublatticeB holds sites with ((index/L)+index) mod 3 == 1 (black).
	SublatticeB
	// SublatticeC holds sites with ((index/L)+index) mod 3 == 2 (red).
	SublatticeC
)

// NumSublattices is the number of colors in the three-coloring.
const NumSublattices = 3

// String returns the color name used in analysis output.
func (s Sublattice) String() string {
	switch s {
	case SublatticeA:
		return "blue"
	case SublatticeB:
		return "black"
	case SublatticeC:
		return "red"
	default:
		return "unknown"
	}
}

// SublatticeOf returns the sublattice of index on a lattice of the given side.
// It is a function of the index alone; side must be positive.
func SublatticeOf(index, side int) Sublattice {
	return Sublattice(((index / side) + index) % NumSublattices)
}

// Direction names one of the four outgoing bonds of a Node.
type Direction uint8

const (
	// Right is the bond to (h, i, (j+1) mod L).
	Right Direction = iota
	// Bottom is the bond to (h, (i+1) mod L, j).
	Bottom
	// BottomRight is the bond to (h, (i+1) mod L, (j+1) mod L).
	BottomRight
	// LayerUp is the bond to ((h+1) mod H, i, j).
	LayerUp
)

// InPlane lists the three in-plane bond directions in emission order.
var InPlane = [...]Direction{Right, Bottom, BottomRight}

// String returns a short name for logging.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case BottomRight:
		return "bottom_right"
	case LayerUp:
		return "layer_up"
	default:
		return "unknown"
	}
}

// Node is one site of the lattice. Neighbors are plain indices into the
// owning Lattice; coupling fields hold the strength of the matching bond.
type Node struct {
	Index       int
	Right       int
	Bottom      int
	BottomRight int
	LayerUp     int
	Sublattice  Sublattice

	JRight       float64
	JBottom      float64
	JBottomRight float64
	JLayerUp     float64

	// Spin is only used for debug dumps and initial configurations.
	Spin bool
}

// Neighbor returns the index reached from n along d, or -1 for an unknown d.
func (n Node) Neighbor(d Direction) int {
	switch d {
	case Right:
		return n.Right
	case Bottom:
		return n.Bottom
	case BottomRight:
		return n.BottomRight
	case LayerUp:
		return n.LayerUp
	default:
		return -1
	}
}

// Coupling returns the strength of the bond leaving n along d (0 for an unknown d).
func (n Node) Coupling(d Direction) float64 {
	switch d {
	case Right:
		return n.JRight
	case Bottom:
		return n.JBottom
	case BottomRight:
		return n.JBottomRight
	case LayerUp:
		return n.JLayerUp
	default:
		return 0
	}
}

func (n *Node) setCoupling(d Direction, k float64) bool {
	switch d {
	case Right:
		n.JRight = k
	case Bottom:
		n.JBottom = k
	case BottomRight:
		n.JBottomRight = k
	case LayerUp:
		n.JLayerUp = k
	default:
		return false
	}

	return true
}
