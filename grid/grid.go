package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid validation.
var (
	// ErrRange indicates Min >= Max.
	ErrRange = errors.New("grid: min must be strictly smaller than max")
	// ErrSigma indicates a non-positive broadening width.
	ErrSigma = errors.New("grid: sigma must be strictly positive")
	// ErrPoints indicates fewer than two sample points.
	ErrPoints = errors.New("grid: n must be at least 2")
)

// decayMargin is the extra range, in units of sigma, added beyond the nominal
// value domain so the broadening envelope does not hard-clip at grid edges.
const decayMargin = math.Sqrt2 * 3

// Spec describes one discretization axis: the value range [Min, Max], the
// Gaussian broadening width Sigma and the number of sample points N.
type Spec struct {
	Min   float64
	Max   float64
	Sigma float64
	N     int
}

// Validate reports whether the spec is usable for broadening.
func (s Spec) Validate() error {
	if !(s.Min < s.Max) {
		return ErrRange
	}
	if !(s.Sigma > 0) {
		return ErrSigma
	}
	if s.N < 2 {
		return ErrPoints
	}
	return nil
}

// Step returns the grid spacing dx = (Max−Min)/(N−1).
func (s Spec) Step() float64 {
	return (s.Max - s.Min) / float64(s.N-1)
}

// Axis returns the N evenly spaced sample points from Min to Max inclusive.
func (s Spec) Axis() []float64 {
	out := make([]float64, s.N)
	dx := s.Step()
	for i := range out {
		out[i] = s.Min + float64(i)*dx
	}
	out[s.N-1] = s.Max
	return out
}

// defaultSpec expands [lo, hi] by the decay margin and derives the point
// count from the reference resolution formula.
func defaultSpec(lo, hi, sigma float64) Spec {
	min := lo - decayMargin*sigma
	max := hi + decayMargin*sigma
	return Spec{
		Min:   min,
		Max:   max,
		Sigma: sigma,
		N:     int(math.Ceil((max-min)/sigma/4)) + 1,
	}
}

// DefaultK1 returns the reference grid for the 1-body term: sigma 0.1 over
// the declared atomic-number range [minNumber, maxNumber].
func DefaultK1(minNumber, maxNumber int) Spec {
	return defaultSpec(float64(minNumber), float64(maxNumber), 1e-1)
}

// DefaultK2 returns the reference grid for the 2-body term: sigma 2⁻⁷ over
// the inverse-distance domain [0, 1/0.7].
func DefaultK2() Spec {
	return defaultSpec(0, 1/0.7, math.Exp2(-7))
}

// DefaultK3 returns the reference grid for the 3-body term: sigma 2⁻³·⁵ over
// the cosine domain [−1, 1].
func DefaultK3() Spec {
	return defaultSpec(-1, 1, math.Exp2(-3.5))
}
