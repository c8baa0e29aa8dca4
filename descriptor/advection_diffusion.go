package descriptor

// D2Q5 and D3Q7 are the velocity sets conventionally paired with BGK
// advection-diffusion dynamics (spec.md §2's C1 row names D2Q5/D3Q7 as
// legal descriptors; §1's Non-goals disclaim mandating any velocity set,
// so these ship as descriptors only — no MRT variant, matching the fact
// that only BGK-AD is wired against them in this repo, see SPEC_FULL.md).

var d2q5C = [][]int{{0, 0}, {-1, 0}, {0, -1}, {1, 0}, {0, 1}}
var d2q5T = []float64{1.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0}

// NewD2Q5 returns the D2Q5 descriptor used by 2D advection-diffusion BGK.
func NewD2Q5() *Descriptor {
	d := &Descriptor{Name: "D2Q5", D: 2, Q: 5, C: d2q5C, T: d2q5T, Cs2: 1.0 / 3.0, InvCs2: 3.0}
	d.validate()
	return d
}

var d3q7C = [][]int{
	{0, 0, 0},
	{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
}
var d3q7T = []float64{1.0 / 4.0, 1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0}

// NewD3Q7 returns the D3Q7 descriptor used by 3D advection-diffusion BGK.
func NewD3Q7() *Descriptor {
	d := &Descriptor{Name: "D3Q7", D: 3, Q: 7, C: d3q7C, T: d3q7T, Cs2: 1.0 / 3.0, InvCs2: 3.0}
	d.validate()
	return d
}
