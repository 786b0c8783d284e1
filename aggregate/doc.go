// Package aggregate enumerates particle tuples of a system and collects, per
// canonical element-index combination, the raw geometry values and matching
// weights that the broadening stage turns into densities.
//
// What:
//
//   - K1: one sample per particle in the original cell; geometry is the
//     atomic number itself, weight is 1.
//   - K2: every unordered particle pair with at least one endpoint in the
//     original cell; geometry is the inverse distance 1/d, weight is the
//     weighting function at d. Keys are element-index pairs (i, j), i ≤ j.
//   - K3: every particle triple with a distinct angle vertex; geometry is the
//     cosine of the angle at the vertex, weight is the weighting function at
//     the round-trip length d_ab + d_bc + d_ca. Keys are (i, j, k) with the
//     vertex element j in the middle and the outer pair ordered i ≤ k.
//
// The original-cell bound matters for periodically extended systems: tuples
// made purely of image particles are duplicates of tuples already counted
// from the original cell and are skipped.
//
// Why:
//
//   - The combination map is the one contract between raw geometry and the
//     tensor layout: parallel (values, weights) lists per canonical key, so
//     downstream stages never revisit particle coordinates.
//
// Complexity:
//
//   - K1: O(n). K2: O(n²). K3: O(n³) over the (extended) particle count.
//     Memory is proportional to the number of retained samples.
//
// Errors:
//
//   - ErrUnmappedNumber: a particle's atomic number is missing from the
//     element index map.
//   - ErrCellBound: the original-cell particle count exceeds the system size.
package aggregate
