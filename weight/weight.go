package weight

import (
	"errors"
	"math"
)

// Sentinel errors for weighting validation.
var (
	// ErrKind indicates an unknown weighting kind.
	ErrKind = errors.New("weight: unknown weighting kind")
	// ErrScale indicates a non-positive exponential scale.
	ErrScale = errors.New("weight: exponential scale must be strictly positive")
	// ErrCutoff indicates an exponential cutoff outside (0, 1).
	ErrCutoff = errors.New("weight: exponential cutoff must lie in (0, 1)")
)

// Kind selects the weighting family.
type Kind int

const (
	// UnityKind weights every contribution with a constant 1.
	UnityKind Kind = iota
	// ExponentialKind weights a contribution at x with exp(−Scale·x) and
	// discards contributions whose weight falls below Cutoff.
	ExponentialKind
)

// String returns the tag name of the kind.
func (k Kind) String() string {
	switch k {
	case UnityKind:
		return "unity"
	case ExponentialKind:
		return "exponential"
	default:
		return "unknown"
	}
}

// Spec is a weighting-function specification. Scale and Cutoff are only
// meaningful for ExponentialKind.
type Spec struct {
	Kind   Kind
	Scale  float64
	Cutoff float64
}

// Unity returns the constant-1 weighting.
func Unity() Spec {
	return Spec{Kind: UnityKind}
}

// Exponential returns the exp(−scale·x) weighting with the given cutoff.
func Exponential(scale, cutoff float64) Spec {
	return Spec{Kind: ExponentialKind, Scale: scale, Cutoff: cutoff}
}

// Validate checks the fields the Kind requires.
func (s Spec) Validate() error {
	switch s.Kind {
	case UnityKind:
		return nil
	case ExponentialKind:
		if !(s.Scale > 0) {
			return ErrScale
		}
		if !(s.Cutoff > 0 && s.Cutoff < 1) {
			return ErrCutoff
		}
		return nil
	default:
		return ErrKind
	}
}

// Eval returns the weight at x: 1 for unity, exp(−Scale·x) for exponential.
func (s Spec) Eval(x float64) float64 {
	if s.Kind == ExponentialKind {
		return math.Exp(-s.Scale * x)
	}
	return 1
}

// Decaying reports whether the weighting decreases monotonically with x,
// the precondition for bounding a periodic-image search.
func (s Spec) Decaying() bool {
	return s.Kind == ExponentialKind
}

// Below reports whether the weight w falls under the discard cutoff. Always
// false for unity, which has no cutoff.
func (s Spec) Below(w float64) bool {
	return s.Kind == ExponentialKind && w < s.Cutoff
}
