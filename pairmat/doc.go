// Package pairmat implements the two sorted, zero-padded pairwise-interaction
// descriptors: the Coulomb matrix for finite systems and its sine-based
// periodic analogue.
//
// What:
//
//   - Coulomb: C_ij = Z_i·Z_j/|r_i − r_j| off the diagonal and 0.5·Z_i^2.4 on
//     it — an inverse-distance-weighted charge product with a power-law
//     self-term.
//   - Sine: the same charge product divided by a lattice-periodic distance
//     measure φ built from the squared sine of the fractional displacement,
//     well defined under periodic boundary conditions.
//   - Both sort rows and columns jointly by descending row Euclidean norm
//     (making the output permutation-invariant over input particle order)
//     and zero-pad to a fixed maximum particle count, so every system maps
//     to the same MaxAtoms² feature width.
//
// Why:
//
//   - Structurally simpler companions to the MBTR descriptor: one closed-form
//     value per particle pair, sort, pad, optionally flatten.
//
// Complexity:
//
//   - O(n²) pair values + O(n log n) sort + O(MaxAtoms²) output.
//
// Errors:
//
//   - ErrMaxAtoms: non-positive maximum particle count.
//   - ErrTooManyAtoms: a system exceeding the configured maximum.
//   - atoms.ErrSingularCell passes through from the sine descriptor on a
//     degenerate cell.
package pairmat
