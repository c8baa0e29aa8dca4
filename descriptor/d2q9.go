package descriptor

// D2Q9 lattice vectors, in Palabos' own ordering: index 0 is the rest
// particle, and for 1<=i<=4, C[i+4] = -C[i] (opposite(i) = i+4).
var d2q9C = [][]int{
	{0, 0},
	{-1, 1}, {-1, 0}, {-1, -1}, {0, -1},
	{1, -1}, {1, 0}, {1, 1}, {0, 1},
}

var d2q9T = []float64{
	4.0 / 9.0,
	1.0 / 36.0, 1.0 / 9.0, 1.0 / 36.0, 1.0 / 9.0,
	1.0 / 36.0, 1.0 / 9.0, 1.0 / 36.0, 1.0 / 9.0,
}

// NewD2Q9 returns the standard unforced D2Q9 descriptor (no external field).
func NewD2Q9() *Descriptor {
	d := &Descriptor{
		Name:   "D2Q9",
		D:      2,
		Q:      9,
		C:      d2q9C,
		T:      d2q9T,
		Cs2:    1.0 / 3.0,
		InvCs2: 3.0,
	}
	d.validate()
	return d
}

// NewD2Q9Forced returns D2Q9 with an external field layout carrying a
// 2-component force (used by Guo-force BGK, spec.md §4.3) and, packed
// right after it, a 1-component density cache and 2-component momentum
// cache (used by the Shan-Chen coupler, spec.md §4.7).
func NewD2Q9Forced() *Descriptor {
	d := NewD2Q9()
	d.Name = "D2Q9_Forced"
	d.External = ExternalLayout{
		ForceOffset:    0,
		ForceSize:      2,
		DensityOffset:  2,
		DensitySize:    1,
		MomentumOffset: 3,
		MomentumSize:   2,
		Total:          5,
	}
	return d
}

// NewD2Q9MRT returns D2Q9 augmented with the moment-space transform used
// by MRT collision (spec.md §4.3 "MRT collision"). The moment basis
// follows the classical d'Humieres/Lallemand-Luo shape (density, energy,
// energy-squared, momentum x2, heat-flux x2, stress x2) built directly
// from this package's own C ordering, and InvM is derived by exact
// numerical inversion of M rather than a second hand-transcribed table.
func NewD2Q9MRT() *Descriptor {
	d := NewD2Q9()
	d.Name = "D2Q9_MRT"

	q := d.Q
	m := make([][]float64, 9)
	for r := range m {
		m[r] = make([]float64, q)
	}
	for i := 0; i < q; i++ {
		cx := float64(d.C[i][0])
		cy := float64(d.C[i][1])
		c2 := cx*cx + cy*cy

		m[0][i] = 1                  // rho
		m[1][i] = -4 + 3*c2          // e
		m[2][i] = 4 - 21.0/2*c2 + 9.0/2*c2*c2 // epsilon
		m[3][i] = cx                 // jx
		m[4][i] = cx * (3*c2 - 5)    // qx
		m[5][i] = cy                 // jy
		m[6][i] = cy * (3*c2 - 5)    // qy
		m[7][i] = cx*cx - cy*cy      // pxx
		m[8][i] = cx * cy            // pxy
	}

	invM := invert(m)

	// Base relaxation-time vector: conserved moments (rho, jx, jy) are
	// never relaxed (S=0); the rest default to 1 and are overwritten by
	// the shear/bulk omega at collision time (spec.md §4.3).
	s := make([]float64, 9)
	for i := range s {
		s[i] = 1.0
	}
	s[0], s[3], s[5] = 0, 0, 0

	d.MRT = &MRT{
		M:            m,
		InvM:         invM,
		S:            s,
		ShearIndices: []int{7, 8},
		BulkIndex:    1,
	}
	return d
}
