// Package dynamics implements the polymorphic collision/moment-operator
// family of spec.md §4.3: Bulk (BGK, RLB, MRT, Smagorinsky, Guo-force,
// advection-diffusion BGK), Composite (boundary-condition wrappers),
// BounceBack and NoDynamics. Every concrete type here implements
// cell.Dynamics; dispatch happens through that interface rather than
// reflection or a type switch in the hot loop. The closed "~15 named
// kinds" set is listed by the Kind constants (spec.md §9 Design Notes,
// option (a)); no Dynamics value carries or reports a Kind.
package dynamics

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
)

// Kind names the variants of the closed Dynamics family. The constants
// are not attached to Dynamics values, and no code in this module
// branches on or looks up a Kind.
type Kind int

const (
	KindBGK Kind = iota
	KindRLB
	KindMRT
	KindSmagorinskyBGK
	KindGuoForceBGK
	KindAdvectionDiffusionBGK
	KindComposite
	KindBoundaryComposite
	KindBounceBack
	KindMomentumExchangeBounceBack
	KindNoDynamics
)

// Parameter ids understood by GetParameter/SetParameter. Unknown ids are
// a silent no-op / return 0 per spec.md §7 ("Unknown parameter id").
const (
	ParamOmega = iota
	ParamLambda // MRT bulk-viscosity relaxation rate
)

// Basic implements the default moment computations spec.md §4.3
// describes for BasicBulkDynamics (density = 1 + sum of the stored
// populations, which are kept shifted so that they sum to rho-bar;
// velocity = sum c*f / rho, temperature defaults to 1, heat flux
// defaults to 0) plus the BGK equilibrium formula (spec.md §4.3, "BGK
// collision contract"). Embed it by value in any Bulk dynamics that
// wants these defaults and override only what differs.
type Basic struct {
	Desc  *descriptor.Descriptor
	Omega float64
}

func (b *Basic) Descriptor() *descriptor.Descriptor { return b.Desc }
func (b *Basic) GetOmega() float64                  { return b.Omega }
func (b *Basic) SetOmega(omega float64)              { b.Omega = omega }

func (b *Basic) GetParameter(id int) float64 {
	if id == ParamOmega {
		return b.Omega
	}
	return 0
}

func (b *Basic) SetParameter(id int, value float64) {
	if id == ParamOmega {
		b.Omega = value
	}
}

// ComputeRhoBarJ returns rho-bar and j = sum c_i f_i, the two moments
// every collision formula is built from.
func (b *Basic) ComputeRhoBarJ(c *cell.Cell) (rhoBar float64, j []float64) {
	d := b.Desc
	rho := 0.0
	j = make([]float64, d.D)
	for i := 0; i < d.Q; i++ {
		f := c.F[i]
		rho += f
		for k := 0; k < d.D; k++ {
			j[k] += float64(d.C[i][k]) * f
		}
	}
	return rho, j
}

func (b *Basic) ComputeDensity(c *cell.Cell) float64 {
	rhoBar, _ := b.ComputeRhoBarJ(c)
	return b.Desc.FullRho(rhoBar)
}

func (b *Basic) ComputeVelocity(c *cell.Cell) []float64 {
	rhoBar, j := b.ComputeRhoBarJ(c)
	invRho := b.Desc.InvRho(rhoBar)
	u := make([]float64, b.Desc.D)
	for k := range u {
		u[k] = j[k] * invRho
	}
	return u
}

func (b *Basic) ComputeTemperature(c *cell.Cell) float64 { return 1 }
func (b *Basic) ComputeHeatFlux(c *cell.Cell) []float64  { return make([]float64, b.Desc.D) }

// Equilibrium implements the BGK equilibrium contract verbatim (spec.md
// §4.3): t_i*(rhoBar + invCs2*(c_i.j) + invCs2^2/2*invRho*((c_i.j)^2 -
// jSqr/invCs2)).
func (b *Basic) Equilibrium(rhoBar float64, j []float64, jSqr float64) []float64 {
	return equilibrium(b.Desc, rhoBar, j, jSqr)
}

func equilibrium(d *descriptor.Descriptor, rhoBar float64, j []float64, jSqr float64) []float64 {
	invRho := d.InvRho(rhoBar)
	invCs2 := d.InvCs2
	feq := make([]float64, d.Q)
	for i := 0; i < d.Q; i++ {
		cj := d.CDot(i, j)
		feq[i] = d.T[i] * (rhoBar + invCs2*cj + (invCs2*invCs2/2)*invRho*(cj*cj-jSqr/invCs2))
	}
	return feq
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// symmetricTensorSize returns the number of independent components of a
// symmetric D x D tensor (3 for D=2: xx,xy,yy; 6 for D=3: xx,xy,xz,yy,yz,zz).
func symmetricTensorSize(d int) int { return d * (d + 1) / 2 }

// piNeq computes the off-equilibrium momentum-flux tensor
// Pi_neq = sum_i c_i c_i (f_i - f_i^eq), in row-major upper-triangular
// order, generically for any descriptor (used by RLB/MRT/regularized
// boundary completion). This is the Chapman-Enskog second moment the
// spec's "Regularized RLB collision" and "RegularizedVelocity/Density"
// composites are built from (spec.md §4.3).
func piNeq(d *descriptor.Descriptor, f, feq []float64) []float64 {
	out := make([]float64, symmetricTensorSize(d.D))
	for i := 0; i < d.Q; i++ {
		fneq := f[i] - feq[i]
		idx := 0
		for a := 0; a < d.D; a++ {
			for bb := a; bb < d.D; bb++ {
				out[idx] += float64(d.C[i][a]) * float64(d.C[i][bb]) * fneq
				idx++
			}
		}
	}
	return out
}

// piNeqAt returns component (a,b) of the symmetric tensor packed by piNeq.
func piNeqAt(d int, pi []float64, a, b int) float64 {
	if a > b {
		a, b = b, a
	}
	idx := 0
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			if i == a && j == b {
				return pi[idx]
			}
			idx++
		}
	}
	return 0
}

// offEquilibrium implements offEq(i,Pi) = t_i * invCs2^2/2 * (c_i c_i -
// cs2*I) : Pi (spec.md §4.3, "Regularized RLB collision"), exploiting
// offEq(i) = offEq(i+Q/2) via the squared c_i c_i term.
func offEquilibrium(d *descriptor.Descriptor, i int, pi []float64) float64 {
	var contraction float64
	for a := 0; a < d.D; a++ {
		for b := 0; b < d.D; b++ {
			ccab := float64(d.C[i][a]) * float64(d.C[i][b])
			cs2I := 0.0
			if a == b {
				cs2I = d.Cs2
			}
			contraction += (ccab - cs2I) * piNeqAt(d.D, pi, a, b)
		}
	}
	return d.T[i] * (d.InvCs2 * d.InvCs2 / 2) * contraction
}

func cloneFloats(f []float64) []float64 { return append([]float64(nil), f...) }
