// Package lattice models an L×L triangular lattice stacked into H replica
// layers, the geometry on which the transverse-field Ising model is mapped
// to a classical problem.
//
// What:
//
//   - Lattice owns a contiguous arena of L²·H Nodes, indexed by
//     index(h,i,j) = h·L² + i·L + j.
//   - Every Node stores four neighbor indices (Right, Bottom, BottomRight in
//     the plane, LayerUp across replicas), all periodic, plus one coupling
//     strength per outgoing edge.
//   - Every Node carries a Sublattice tag ((index/L)+index) mod 3, the
//     three-coloring used by the order-parameter analysis.
//
// Why L must be a multiple of 3:
//
//   - The three-coloring must tile the torus without a seam; otherwise the
//     sublattice of a site and of its periodic image disagree.
//
// Complexity:
//
//   - New:      O(L²·H) time and memory.
//   - Validate: O(L²·H).
//   - Accessors are O(1).
//
// Errors:
//
//   - ErrInvalidSide:   L <= 0 or L mod 3 != 0.
//   - ErrInvalidHeight: H <= 0.
//   - ErrOutOfRange:    a site index outside [0, L²·H).
//   - ErrCorrupt:       a stored neighbor or tag disagrees with the geometry.
//
// Topology is immutable after New; couplings and spins may be rewritten.
// A Lattice is not safe for concurrent mutation, but any number of
// goroutines may read it once coupling assignment has finished.
package lattice
