package descriptor

var d3q19C = [][]int{
	{0, 0, 0},
	{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {-1, -1, 0}, {-1, 1, 0}, {-1, 0, -1}, {-1, 0, 1}, {0, -1, -1}, {0, -1, 1},
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}, {1, -1, 0}, {1, 0, 1}, {1, 0, -1}, {0, 1, 1}, {0, 1, -1},
}

var d3q19T = []float64{
	1.0 / 3.0,
	1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
	1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
}

// NewD3Q19 returns the standard unforced D3Q19 descriptor.
func NewD3Q19() *Descriptor {
	d := &Descriptor{
		Name:   "D3Q19",
		D:      3,
		Q:      19,
		C:      d3q19C,
		T:      d3q19T,
		Cs2:    1.0 / 3.0,
		InvCs2: 3.0,
	}
	d.validate()
	return d
}

// NewD3Q19Forced returns D3Q19 with a 3-component force, 1-component
// density cache and 3-component momentum cache external layout.
func NewD3Q19Forced() *Descriptor {
	d := NewD3Q19()
	d.Name = "D3Q19_Forced"
	d.External = ExternalLayout{
		ForceOffset:    0,
		ForceSize:      3,
		DensityOffset:  3,
		DensitySize:    1,
		MomentumOffset: 4,
		MomentumSize:   3,
		Total:          7,
	}
	return d
}
