// Package qubo turns a coupled lattice.Lattice into the quadratic
// pseudo-Boolean polynomial equivalent to the Trotterized Hamiltonian
//
//	H_eff = Σ K·s_i·s_j (in-plane pairs) − Σ K'·s_i·s_i' (consecutive replicas)
//
// under the substitution s = 2x − 1, x ∈ {0,1}.
//
// What:
//
//   - Front terms: every in-plane bond (i,j) with coupling k contributes
//     +4k·x_i·x_j − 2k·x_i − 2k·x_j + k.
//   - Back terms (H > 1 only): every bond along the layer chain of a base
//     site contributes the same expansion with k negated.
//   - Cycle suppression (WithoutCycle) drops periodic-boundary bonds: a right
//     bond pointing to a smaller index, a bottom bond not landing on idx+L, a
//     bottom-right bond not landing on idx+L+1, and the bond that would close
//     each layer chain.
//   - Consolidation sums equal monomials (variables sorted) into a single
//     coefficient; variable-free monomials fold into one constant which is
//     emitted last and only when non-zero.
//
// Determinism:
//
//   - Polynomial keeps its terms in an ordered map (lexicographic on the
//     sorted variable list), so Terms() is the same on every run.
//   - Build may generate monomials on several goroutines (WithWorkers), but
//     partitions are merged sequentially in site order: the polynomial is
//     bit-identical for every worker count.
//
// Complexity:
//
//   - Build: O(N log N) time, O(N) memory with N = L²·H sites.
//   - Evaluate: O(T) with T stored terms.
//
// Errors:
//
//   - ErrNilLattice: Build/IsingEnergy without a lattice.
//   - ErrBadVariable: a negative variable in Add.
//   - ErrAssignmentSize: Evaluate/IsingEnergy with too few values.
//   - lattice.ErrCorrupt (wrapped): the lattice failed validation; fatal.
package qubo
