// Package weight defines the weighting functions that attenuate geometry
// contributions by distance, as a tagged union instead of string-keyed maps.
//
// What:
//
//   - Kind selects the weighting family: Unity (constant 1) or Exponential
//     (exp(−Scale·x) with a Cutoff below which contributions are discarded).
//   - Spec carries only the fields its Kind needs and validates them.
//
// Why:
//
//   - Periodic lattice sums diverge without decay; a decaying weighting with
//     an explicit cutoff bounds both the periodic-image search and the number
//     of aggregated combinations.
//   - Exponential weighting is monotonically decreasing, which is the
//     termination precondition of the periodic-image search.
//
// Errors:
//
//   - ErrKind: unknown weighting kind.
//   - ErrScale: exponential scale is not strictly positive.
//   - ErrCutoff: exponential cutoff is outside (0, 1).
package weight
