// Package descriptor holds the compile-time schema of a velocity set: the
// direction count, lattice vectors, weights and external-field layout a
// Dynamics or BlockLattice is built against (spec.md C1).
//
// Go has no template parameter to carry this at compile time the way the
// source does with <T, Descriptor>; instead every Dynamics and BlockLattice
// captures a *Descriptor by value at construction (monomorphisation by
// value capture, see SPEC_FULL.md's Design Notes). Indexing into C/T/M/InvM
// is never bounds-checked in the hot loops of the dynamics/block packages;
// callers must only ever loop 0..Q.
package descriptor

import "fmt"

// ExternalLayout describes the per-cell external scalar slots a descriptor
// exposes, in slot order. Offsets are indices into Cell.External.
type ExternalLayout struct {
	ForceOffset    int
	ForceSize      int
	DensityOffset  int
	DensitySize    int
	MomentumOffset int
	MomentumSize   int
	Total          int
}

// MRT carries the moment-space transform for an MRT descriptor: M, InvM,
// the base relaxation vector S, and which rows of S correspond to shear vs.
// bulk viscosity (spec.md §3, "An MRT descriptor additionally carries...").
type MRT struct {
	M            [][]float64
	InvM         [][]float64
	S            []float64
	ShearIndices []int
	BulkIndex    int
}

// Descriptor is pure data plus a handful of inline helpers. All fields are
// meant to be treated as immutable after construction.
type Descriptor struct {
	Name     string
	D        int // dimension: 2 or 3
	Q        int // direction count
	C        [][]int // lattice vectors, C[i][0..D-1]
	T        []float64 // weights, sum to 1
	Cs2      float64
	InvCs2   float64
	External ExternalLayout
	MRT      *MRT // nil for non-MRT descriptors
}

// SkordosFactor is an algebraic scaling constant, 1 for every standard
// lattice this core ships (spec.md GLOSSARY).
const SkordosFactor = 1.0

// Opposite returns the index of the direction opposite to i, using the
// convention C[0] is the zero vector and C[i+Q/2] = -C[i] for 1<=i<=Q/2.
func (d *Descriptor) Opposite(i int) int {
	if i == 0 {
		return 0
	}
	half := d.Q / 2
	if i <= half {
		return i + half
	}
	return i - half
}

// RhoBar returns the rescaled density rho-1.
func (d *Descriptor) RhoBar(rho float64) float64 { return rho - 1 }

// FullRho returns the physical density rho from rho-bar.
func (d *Descriptor) FullRho(rhoBar float64) float64 { return rhoBar + 1 }

// InvRho returns 1/rho computed from rho-bar.
func (d *Descriptor) InvRho(rhoBar float64) float64 { return 1.0 / (rhoBar + 1) }

// HasForce reports whether this descriptor's external layout carries a
// force slot at all, i.e. whether Guo-force dynamics can attach to cells
// built from it. Preserves the source's "size>=2 enables force" behaviour
// (see spec.md §9 Open Questions re. ExternalForceAccess2D) but makes the
// condition explicit rather than a magic-number comparison against 2.
func (d *Descriptor) HasForce() bool {
	return d.External.ForceSize >= d.D
}

// CDot computes the dot product of lattice vector C[i] with a D-length
// vector v.
func (d *Descriptor) CDot(i int, v []float64) float64 {
	var s float64
	c := d.C[i]
	for k := 0; k < d.D; k++ {
		s += float64(c[k]) * v[k]
	}
	return s
}

func (d *Descriptor) validate() {
	if d.Q <= 0 || d.D != 2 && d.D != 3 {
		panic(fmt.Sprintf("descriptor %s: invalid Q=%d D=%d", d.Name, d.Q, d.D))
	}
	if len(d.C) != d.Q || len(d.T) != d.Q {
		panic(fmt.Sprintf("descriptor %s: C/T length must equal Q=%d", d.Name, d.Q))
	}
	for _, c := range d.C {
		if len(c) != d.D {
			panic(fmt.Sprintf("descriptor %s: lattice vector dimension mismatch", d.Name))
		}
	}
}
