// Package mbtr implements the Many-Body Tensor Representation descriptor:
// per-order geometry aggregation, Gaussian broadening and tensor assembly,
// concatenated into one deterministically ordered feature vector.
//
// What:
//
//   - Orders k=1 (element counts over atomic numbers), k=2 (inverse
//     distances) and k=3 (angle cosines), each broadened onto its own grid.
//   - Periodic systems are expanded with only those lattice images whose
//     weight to the original cell clears the configured cutoff; the image
//     search is bounded per axis by the monotonic decay of the weighting.
//   - Output is either one flattened float32 row (width NumFeatures()) or a
//     dense per-order Tensor list.
//
// Why:
//
//   - Validate once, describe many: New resolves and checks the whole
//     configuration (orders, grids, weightings, element table) up front, so
//     Describe is a pure function of the Descriptor and the input system and
//     is safe for concurrent use.
//   - A fixed combination-enumeration contract (ascending lexicographic over
//     canonical element-index tuples) keeps feature positions stable across
//     systems, which downstream models rely on.
//
// Layout contract, per order with nElem declared elements and n grid points:
//
//	k=1: combination (i),        block rank i,                    nElem·n features
//	k=2: combinations (i ≤ j),   ranked lexicographically,        nElem(nElem+1)/2·n
//	k=3: combinations (i, j, k)  with outer pair i ≤ k and free
//	     middle (angle vertex),  ranked lexicographically,        nElem²(nElem+1)/2·n
//
// Absent combinations leave zero blocks; ranks are absolute, never shifted
// by missing data.
//
// Errors:
//
//   - ErrNoElements, ErrOrder, ErrPeriodicWeighting — configuration errors,
//     raised by New before any system is touched (grid and weighting field
//     errors are wrapped from the grid and weight packages).
//   - ErrUnknownElement — Describe found an undeclared atomic number; the
//     error names the number.
//   - ErrExpansionBound — the periodic image search exceeded MaxCopiesPerAxis.
//   - ErrNonDecayingWeight — periodic expansion asked of a non-decaying
//     weighting.
//
// Volume normalization on a zero-volume system yields non-finite values by
// design; callers must not request it for finite systems.
package mbtr
