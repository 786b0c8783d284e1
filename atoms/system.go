package atoms

// System is an immutable snapshot of an atomic arrangement: Cartesian
// positions, atomic numbers, a cell-vector matrix and a periodicity flag.
// Construct via NewSystem; accessors never expose internal storage.
type System struct {
	positions []Vec3
	numbers   []int
	cell      Cell
	periodic  bool
}

// NewSystem validates and snapshots the given arrangement. Positions and
// numbers are deep-copied, so the caller may reuse its slices freely.
//
// Returns ErrNoAtoms for an empty arrangement and ErrShapeMismatch when
// positions and numbers differ in length.
func NewSystem(positions []Vec3, numbers []int, cell Cell, periodic bool) (*System, error) {
	if len(positions) == 0 {
		return nil, ErrNoAtoms
	}
	if len(positions) != len(numbers) {
		return nil, ErrShapeMismatch
	}
	s := &System{
		positions: make([]Vec3, len(positions)),
		numbers:   make([]int, len(numbers)),
		cell:      cell,
		periodic:  periodic,
	}
	copy(s.positions, positions)
	copy(s.numbers, numbers)
	return s, nil
}

// Len returns the number of particles.
func (s *System) Len() int { return len(s.positions) }

// Position returns the Cartesian position of particle i.
func (s *System) Position(i int) Vec3 { return s.positions[i] }

// Positions returns a copy of all Cartesian positions.
func (s *System) Positions() []Vec3 {
	out := make([]Vec3, len(s.positions))
	copy(out, s.positions)
	return out
}

// Number returns the atomic number of particle i.
func (s *System) Number(i int) int { return s.numbers[i] }

// Numbers returns a copy of all atomic numbers.
func (s *System) Numbers() []int {
	out := make([]int, len(s.numbers))
	copy(out, s.numbers)
	return out
}

// Cell returns the cell-vector matrix.
func (s *System) Cell() Cell { return s.cell }

// Periodic reports whether the system repeats along its cell vectors.
func (s *System) Periodic() bool { return s.periodic }

// Volume returns the cell volume. Zero for a finite system with a zero cell.
func (s *System) Volume() float64 { return s.cell.Volume() }

// ScaledPositions returns the fractional coordinates of every particle with
// respect to the cell vectors. Returns ErrSingularCell for a degenerate cell.
func (s *System) ScaledPositions() ([]Vec3, error) {
	inv, err := s.cell.Inverse()
	if err != nil {
		return nil, err
	}
	out := make([]Vec3, len(s.positions))
	for i, p := range s.positions {
		out[i] = inv.MulVec(p)
	}
	return out, nil
}

// Distance returns the Euclidean distance between particles i and j.
func (s *System) Distance(i, j int) float64 {
	return s.positions[j].Sub(s.positions[i]).Norm()
}
