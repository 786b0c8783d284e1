package broaden

import (
	"errors"
	"math"

	"github.com/katalvlaran/manybody/grid"
)

// ErrLengthMismatch indicates values and weights of differing lengths.
var ErrLengthMismatch = errors.New("broaden: values and weights must have the same length")

// Sum broadens the (values, weights) observations into a density of g.N bin
// values via the analytic CDF trick.
//
// For each of the n+1 bin boundaries x_b = linspace(min−dx/2, max+dx/2, n+1)
// it accumulates Σ_i w_i/2 · (1 + erf((x_b − v_i)/(σ√2))), then returns the
// difference of consecutive boundary sums divided by dx. When normalized is
// false the result is additionally divided by the unit-Gaussian peak
// 1/(σ√(2π)), undoing the implicit area normalization.
func Sum(values, weights []float64, g grid.Spec, normalized bool) ([]float64, error) {
	if len(values) != len(weights) {
		return nil, ErrLengthMismatch
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	dx := g.Step()
	denom := g.Sigma * math.Sqrt2

	// Cumulative sums on the n+1 shifted boundaries.
	cdf := make([]float64, g.N+1)
	for b := range cdf {
		x := g.Min - dx/2 + float64(b)*dx
		var sum float64
		for i, v := range values {
			sum += weights[i] * 0.5 * (1 + math.Erf((x-v)/denom))
		}
		cdf[b] = sum
	}

	out := make([]float64, g.N)
	for i := range out {
		out[i] = (cdf[i+1] - cdf[i]) / dx
	}

	if !normalized {
		peak := 1 / (g.Sigma * math.Sqrt(2*math.Pi))
		for i := range out {
			out[i] /= peak
		}
	}
	return out, nil
}
