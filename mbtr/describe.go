package mbtr

import (
	"fmt"

	"github.com/katalvlaran/manybody/aggregate"
	"github.com/katalvlaran/manybody/atoms"
)

// Describe computes the many-body tensor representation of sys.
//
// Every atomic number present in sys must have been declared at construction
// (ErrUnknownElement names the offender). For each requested order the
// pipeline runs: periodic expansion (orders 2 and 3, periodic systems only)
// → geometry aggregation → Gaussian broadening per combination → tensor
// assembly; the per-order results are concatenated in ascending order and
// optionally divided by the cell volume.
//
// Describe is pure: it mutates neither the Descriptor nor sys, and may be
// called concurrently on the same Descriptor.
func (d *Descriptor) Describe(sys *atoms.System) (*Result, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}
	if err := d.checkElements(sys); err != nil {
		return nil, err
	}

	res := &Result{}
	if d.flatten {
		res.Flat = make([]float32, 0, d.NumFeatures())
	}

	for _, k := range d.orders {
		tensor, flat, err := d.describeOrder(sys, k)
		if err != nil {
			return nil, err
		}
		if d.flatten {
			res.Flat = append(res.Flat, flat...)
		} else {
			res.Tensors = append(res.Tensors, tensor)
		}
	}

	if d.normalizeByVolume {
		// Zero volume yields non-finite output here; documented sharp edge.
		res.scale(1 / sys.Volume())
	}
	return res, nil
}

// describeOrder runs the order-k pipeline stage on sys.
func (d *Descriptor) describeOrder(sys *atoms.System, k int) (*Tensor, []float32, error) {
	switch k {
	case 1:
		geoms, err := aggregate.K1(sys, d.index)
		if err != nil {
			return nil, nil, err
		}
		return d.assembleK1(geoms)

	case 2:
		work, err := d.workingSystem(sys, 2)
		if err != nil {
			return nil, nil, err
		}
		geoms, err := aggregate.K2(work, d.index, sys.Len(), d.weights[2])
		if err != nil {
			return nil, nil, err
		}
		return d.assembleK2(geoms)

	default:
		work, err := d.workingSystem(sys, 3)
		if err != nil {
			return nil, nil, err
		}
		geoms, err := aggregate.K3(work, d.index, sys.Len(), d.weights[3])
		if err != nil {
			return nil, nil, err
		}
		return d.assembleK3(geoms)
	}
}

// workingSystem returns sys itself for finite input and the periodically
// extended finite set for periodic input.
func (d *Descriptor) workingSystem(sys *atoms.System, k int) (*atoms.System, error) {
	if !d.periodic || !sys.Periodic() {
		return sys, nil
	}
	return Extend(sys, k, d.weights[k])
}

// checkElements verifies every atomic number in sys was declared.
func (d *Descriptor) checkElements(sys *atoms.System) error {
	for i := 0; i < sys.Len(); i++ {
		z := sys.Number(i)
		if _, ok := d.index[z]; !ok {
			return fmt.Errorf("%w: atomic number %d", ErrUnknownElement, z)
		}
	}
	return nil
}

// scale multiplies every output value in place.
func (r *Result) scale(f float64) {
	for i, v := range r.Flat {
		r.Flat[i] = float32(float64(v) * f)
	}
	for _, t := range r.Tensors {
		for i, v := range t.Data {
			t.Data[i] = float32(float64(v) * f)
		}
	}
}
