// Package problem reads and writes the files exchanged with the external
// annealer and with later analysis runs.
//
// Files:
//
//   - Problem file: {"fujitsuDA3": {...}, "binary_polynomial": {"terms": [...]}}.
//     Terms are written as {"coefficient": c, "polynomial": [i, j]}; the
//     constant term has no "polynomial". Reading also accepts the short
//     {"c": ..., "p": [...]} form and a constant spelled [] or [-1].
//   - Solution file: {"qubo_solution": {"solutions": [...], ...}, "status": ...}
//     where every solution maps a decimal site index to its bit.
//   - Metadata file: {Strength, Layer_strength, Side_length, Height, Gamma,
//     Time_limit_sec}, written next to the problem file.
//
// Run names follow Gamma{Γ}/Strength{J}_Lattice{L}_{L}_{H}_Time{T}.json;
// ParseRunName recovers the parameters from such a path.
//
// Every write goes through WriteFileAtomic (temp file + rename) so a failed
// run never leaves a truncated file behind.
package problem
