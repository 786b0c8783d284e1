// Package broaden converts discrete (value, weight) observations into a
// smooth density on a fixed grid by summing Gaussian cumulative distribution
// functions and taking the discrete derivative.
//
// What:
//
//   - Sum evaluates, at each of the n+1 bin boundaries (the grid points
//     shifted by ±dx/2), the weighted sum of Gaussian CDFs centered on the
//     observations, then differences consecutive boundary values to obtain
//     one density value per bin.
//
// Why:
//
//   - The CDF route integrates exactly over each bin regardless of grid
//     coarseness; sampling the Gaussian density directly would lose weight on
//     coarse grids. With normalization enabled, a single observation of
//     weight w integrates (sum × dx) back to w.
//
// Complexity:
//
//   - O(len(values) · grid.N) time, O(grid.N) memory.
//
// Errors:
//
//   - ErrLengthMismatch: values and weights differ in length.
//   - Grid validation errors pass through from grid.Spec.Validate.
package broaden
