package atoms

// DisplacementTensor returns the full pairwise displacement tensor
// D[i][j] = r_j − r_i. The diagonal is the zero vector.
//
// Complexity: O(n²) time and memory; computed fresh per call.
func (s *System) DisplacementTensor() [][]Vec3 {
	n := len(s.positions)
	out := make([][]Vec3, n)
	for i := 0; i < n; i++ {
		out[i] = make([]Vec3, n)
		for j := 0; j < n; j++ {
			out[i][j] = s.positions[j].Sub(s.positions[i])
		}
	}
	return out
}

// InverseDistanceMatrix returns M[i][j] = 1/|r_j − r_i| with zeros on the
// diagonal. Coincident off-diagonal particles yield +Inf, mirroring the
// behavior descriptors expect for degenerate input.
//
// Complexity: O(n²) time and memory; computed fresh per call.
func (s *System) InverseDistanceMatrix() [][]float64 {
	n := len(s.positions)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out[i][j] = 1.0 / s.Distance(i, j)
		}
	}
	return out
}
