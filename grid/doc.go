// Package grid defines the discretization grids onto which broadened
// descriptor values are sampled, with analytic per-order defaults.
//
// What:
//
//   - Spec is a {Min, Max, Sigma, N} value describing one axis: the value
//     range, the Gaussian broadening width, and the number of sample points.
//   - DefaultK1/DefaultK2/DefaultK3 derive the reference grids: the declared
//     atomic-number range for k=1, the inverse-distance domain [0, 1/0.7] for
//     k=2 and the cosine domain [−1, 1] for k=3, each inflated by a decay
//     margin of √2·3 standard deviations so broadening tails are not clipped
//     at the grid edges.
//
// Why:
//
//   - The default formulas trade grid resolution against feature-vector size
//     and are reproduced exactly so that outputs match the reference
//     implementation bit for bit.
//
// Errors:
//
//   - ErrRange: Min is not strictly below Max.
//   - ErrSigma: Sigma is not strictly positive.
//   - ErrPoints: fewer than two sample points.
package grid
