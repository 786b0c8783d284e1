// Package mbtr defines the configuration surface, output types and sentinel
// errors of the many-body tensor descriptor.
package mbtr

import (
	"errors"

	"github.com/katalvlaran/manybody/grid"
	"github.com/katalvlaran/manybody/weight"
)

// Sentinel errors for configuration and description.
var (
	// ErrNoElements indicates an empty declared atomic-number set.
	ErrNoElements = errors.New("mbtr: at least one atomic number must be declared")
	// ErrOrder indicates a requested order outside {1, 2, 3} or an empty set.
	ErrOrder = errors.New("mbtr: requested orders must form a non-empty subset of {1, 2, 3}")
	// ErrPeriodicWeighting indicates a periodic configuration whose order
	// above 1 lacks a decaying weighting; the lattice sum would diverge.
	ErrPeriodicWeighting = errors.New("mbtr: periodic systems need a decaying weighting for every order above 1")
	// ErrUnknownElement indicates a structure atomic number that was not
	// declared at construction. The wrapped error names the number.
	ErrUnknownElement = errors.New("mbtr: structure contains an undeclared atomic number")
	// ErrNonDecayingWeight indicates a periodic expansion attempted with a
	// weighting that does not decrease monotonically.
	ErrNonDecayingWeight = errors.New("mbtr: periodic expansion requires a monotonically decaying weighting")
	// ErrExpansionBound indicates the periodic image search exceeded
	// MaxCopiesPerAxis without the weighting falling under its cutoff.
	ErrExpansionBound = errors.New("mbtr: periodic image search exceeded the per-axis copy bound")
	// ErrNilSystem indicates a nil input system.
	ErrNilSystem = errors.New("mbtr: system must not be nil")
	// ErrTensorIndex indicates an out-of-range or wrong-arity tensor access.
	ErrTensorIndex = errors.New("mbtr: tensor index out of range")
)

// Options configures a Descriptor. The zero value is not usable; start from
// DefaultOptions and adjust.
type Options struct {
	// AtomicNumbers declares every element the descriptor will ever see,
	// across all systems. Order-insensitive; duplicates are ignored.
	AtomicNumbers []int
	// K lists the requested interaction orders, a subset of {1, 2, 3}.
	K []int
	// Periodic marks the input systems as periodically repeating. Periodic
	// configurations require a decaying Weighting for every order above 1.
	Periodic bool
	// Grid optionally overrides the discretization grid per order. Missing
	// orders fall back to the analytic defaults (see package grid).
	Grid map[int]grid.Spec
	// Weighting optionally sets the weighting function per order above 1.
	// Missing orders fall back to unity (finite systems only).
	Weighting map[int]weight.Spec
	// NormalizeByVolume divides the final output by the cell volume.
	NormalizeByVolume bool
	// NormalizeGaussians keeps each broadening Gaussian at unit area. When
	// false, densities are rescaled so a unit-weight Gaussian peaks at 1.
	NormalizeGaussians bool
	// Flatten selects the single-row float32 output; otherwise Describe
	// returns one dense Tensor per order.
	Flatten bool
}

// DefaultOptions returns the reference configuration for the given element
// set and orders: finite system, default grids, unity weighting, normalized
// Gaussians, flattened output.
func DefaultOptions(atomicNumbers []int, k ...int) Options {
	return Options{
		AtomicNumbers:      atomicNumbers,
		K:                  k,
		NormalizeGaussians: true,
		Flatten:            true,
	}
}

// Tensor is a dense per-order output: a row-major float32 buffer whose last
// axis is the grid and whose leading axes are element indices (one per body).
type Tensor struct {
	// K is the interaction order this tensor belongs to.
	K int
	// Shape holds K element axes of size nElem followed by the grid size.
	Shape []int
	// Data is the row-major buffer of len = product(Shape).
	Data []float32
}

// At returns the value at the given multi-index. Returns ErrTensorIndex when
// the arity does not match Shape or any index is out of range.
func (t *Tensor) At(idx ...int) (float32, error) {
	if len(idx) != len(t.Shape) {
		return 0, ErrTensorIndex
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= t.Shape[d] {
			return 0, ErrTensorIndex
		}
		off = off*t.Shape[d] + i
	}
	return t.Data[off], nil
}

// Result is the output of one Describe call: Flat in flattened mode, one
// Tensor per requested order (ascending) in dense mode.
type Result struct {
	Flat    []float32
	Tensors []*Tensor
}
