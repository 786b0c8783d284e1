// Package atoms provides the immutable structure container consumed by every
// descriptor in manybody: particle Cartesian positions, atomic numbers, a 3×3
// cell-vector matrix and a periodicity flag, plus the derived geometry the
// descriptors query (scaled positions, cell inverse, cell volume, pairwise
// displacement tensor, inverse-distance matrix).
//
// What:
//
//   - System is a validated snapshot built once via NewSystem; descriptors
//     hold only a transient read reference during a single Describe call.
//   - Vec3 and Cell are small fixed-size value types with the handful of
//     3-vector and 3×3 operations the descriptors need. No general linear
//     algebra is (or needs to be) exposed.
//
// Why:
//
//   - Descriptor pipelines re-derive geometry per call; an immutable input
//     makes concurrent Describe calls on the same System safe by construction.
//   - Fixed-size arrays keep the hot pairwise loops allocation-free.
//
// Complexity:
//
//   - Distance/Displacement: O(1). DisplacementTensor, InverseDistanceMatrix:
//     O(n²) time and memory, computed fresh on each call (no hidden caches).
//   - Cell inverse & volume: closed-form 3×3 expressions, O(1).
//
// Errors:
//
//   - ErrNoAtoms: the system holds zero particles.
//   - ErrShapeMismatch: positions and atomic numbers differ in length.
//   - ErrSingularCell: a scaled-position or cell-inverse query on a cell with
//     zero determinant.
package atoms
