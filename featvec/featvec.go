package featvec

import (
	"errors"
	"fmt"

	"github.com/viant/vec/search"
)

// Sentinel errors for feature-vector operations.
var (
	// ErrDimensionMismatch indicates vectors of differing widths.
	ErrDimensionMismatch = errors.New("featvec: feature vectors must have the same width")
	// ErrEmptyVector indicates an empty feature vector.
	ErrEmptyVector = errors.New("featvec: feature vector must not be empty")
	// ErrZeroVector indicates an attempt to normalize an all-zero vector.
	ErrZeroVector = errors.New("featvec: cannot normalize a zero-magnitude vector")
)

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

// Normalize scales v to unit Euclidean norm in place. Returns ErrEmptyVector
// for an empty input and ErrZeroVector when the norm is zero.
func Normalize(v []float32) error {
	if len(v) == 0 {
		return ErrEmptyVector
	}
	m := search.Float32s(v).Magnitude()
	if m == 0 {
		return ErrZeroVector
	}
	inv := 1 / m
	for i := range v {
		v[i] *= inv
	}
	return nil
}

// Cosine returns the cosine distance (1 − cosine similarity) between two
// descriptors of equal width.
func Cosine(a, b []float32) (float32, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return search.Float32s(a).CosineDistance(b), nil
}

// Euclidean returns the Euclidean (L2) distance between two descriptors of
// equal width.
func Euclidean(a, b []float32) (float32, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return search.Float32s(a).EuclideanDistance(b), nil
}

func checkPair(a, b []float32) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyVector
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	return nil
}
