package mbtr

import (
	"fmt"

	"github.com/katalvlaran/manybody/atoms"
	"github.com/katalvlaran/manybody/weight"
)

// MaxCopiesPerAxis bounds the periodic image search per cell-vector
// direction. A well-formed decaying weighting reaches its cutoff within a
// handful of copies; exceeding this bound signals a pathological
// cutoff/scale combination and fails instead of looping.
const MaxCopiesPerAxis = 64

// Extend returns a finite particle set containing the original cell plus
// every lattice image whose weight to at least one original-cell particle
// clears the weighting cutoff. Distances are doubled for order 3 to account
// for the round trip a 3-body loop implies.
//
// Non-periodic systems are returned unchanged, which makes Extend idempotent:
// the extended system is finite, so re-extending it adds nothing.
//
// The weighting must be monotonically decaying (ErrNonDecayingWeight
// otherwise); the per-axis copy search is capped at MaxCopiesPerAxis
// (ErrExpansionBound beyond it).
func Extend(sys *atoms.System, order int, w weight.Spec) (*atoms.System, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}
	if !sys.Periodic() {
		return sys, nil
	}
	if order != 2 && order != 3 {
		return nil, fmt.Errorf("%w: expansion is defined for k=2 and k=3, got %d", ErrOrder, order)
	}
	if !w.Decaying() {
		return nil, ErrNonDecayingWeight
	}

	cell := sys.Cell()
	lengths := cell.VectorLengths()
	double := order > 2

	// Per axis, the smallest copy count whose weight falls under the cutoff.
	var copies [3]int
	for axis := 0; axis < 3; axis++ {
		c := 0
		for {
			d := float64(c) * lengths[axis]
			if double {
				d *= 2
			}
			if w.Eval(d) < w.Cutoff {
				copies[axis] = c
				break
			}
			c++
			if c > MaxCopiesPerAxis {
				return nil, fmt.Errorf("%w: axis %d", ErrExpansionBound, axis)
			}
		}
	}

	origPos := sys.Positions()
	origNum := sys.Numbers()
	positions := append([]atoms.Vec3(nil), origPos...)
	numbers := append([]int(nil), origNum...)

	for i := -copies[0]; i <= copies[0]; i++ {
		for j := -copies[1]; j <= copies[1]; j++ {
			for k := -copies[2]; k <= copies[2]; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				shift := cell[0].Scale(float64(i)).
					Add(cell[1].Scale(float64(j))).
					Add(cell[2].Scale(float64(k)))
				for a, p := range origPos {
					img := p.Sub(shift)
					if imageReaches(img, origPos, w, double) {
						positions = append(positions, img)
						numbers = append(numbers, origNum[a])
					}
				}
			}
		}
	}

	return atoms.NewSystem(positions, numbers, cell, false)
}

// imageReaches reports whether the image particle at img carries a weight at
// or above the cutoff to at least one original-cell particle.
func imageReaches(img atoms.Vec3, origPos []atoms.Vec3, w weight.Spec, double bool) bool {
	for _, q := range origPos {
		d := img.Sub(q).Norm()
		if double {
			d *= 2
		}
		if w.Eval(d) >= w.Cutoff {
			return true
		}
	}
	return false
}
