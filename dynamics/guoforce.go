package dynamics

import (
	"fmt"

	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// GuoForceBGK is BGK with Guo's exact-difference forcing term (spec.md
// §4.3, "GuoForceBGK"): requires a descriptor with an External force slot
// (spec.md C1, HasForce). The hydrodynamic velocity used in both the
// equilibrium and reported ComputeVelocity is shifted by half a time
// step's worth of forcing, u = (j + F/2) * invRho, per Guo et al. 2002.
type GuoForceBGK struct {
	Basic
}

// NewGuoForceBGK requires d.HasForce() (panics otherwise, spec.md §7).
func NewGuoForceBGK(d *descriptor.Descriptor, omega float64) *GuoForceBGK {
	if !d.HasForce() {
		panic(fmt.Sprintf("dynamics: descriptor %s has no external force slot", d.Name))
	}
	return &GuoForceBGK{Basic{Desc: d, Omega: omega}}
}

func (g *GuoForceBGK) force(c *cell.Cell) []float64 {
	return c.External[:g.Desc.D]
}

// ComputeVelocity overrides Basic's: reports the force-shifted velocity,
// not the raw momentum j/rho (spec.md §4.3, "ExternalForceAccess2D").
func (g *GuoForceBGK) ComputeVelocity(c *cell.Cell) []float64 {
	rhoBar, j := g.ComputeRhoBarJ(c)
	invRho := g.Desc.InvRho(rhoBar)
	f := g.force(c)
	u := make([]float64, g.Desc.D)
	for k := range u {
		u[k] = (j[k] + 0.5*f[k]) * invRho
	}
	return u
}

func (g *GuoForceBGK) Collide(c *cell.Cell, statistics *stats.Statistics) {
	d := g.Desc
	rhoBar, j := g.ComputeRhoBarJ(c)
	invRho := d.InvRho(rhoBar)
	force := g.force(c)

	uShift := make([]float64, d.D)
	jShift := make([]float64, d.D)
	for k := range uShift {
		uShift[k] = (j[k] + 0.5*force[k]) * invRho
		jShift[k] = uShift[k] * d.FullRho(rhoBar)
	}
	jSqr := dot(jShift, jShift)
	feq := g.Equilibrium(rhoBar, jShift, jSqr)

	forceTerm := make([]float64, d.Q)
	for i := 0; i < d.Q; i++ {
		cDotU := d.CDot(i, uShift)
		var cDotF, uDotF float64
		for k := 0; k < d.D; k++ {
			cDotF += float64(d.C[i][k]) * force[k]
			uDotF += uShift[k] * force[k]
		}
		forceTerm[i] = (1 - 0.5*g.Omega) * d.T[i] * d.InvCs2 * (cDotF + d.InvCs2*cDotU*cDotF - uDotF)
	}

	for i := range c.F {
		c.F[i] = (1-g.Omega)*c.F[i] + g.Omega*feq[i] + forceTerm[i]
	}
	gather(c, statistics, d.FullRho(rhoBar), jSqr*invRho*invRho)
}

func (g *GuoForceBGK) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	rhoBar, j := g.ComputeRhoBarJ(c)
	feq := g.Equilibrium(rhoBar, j, dot(j, j))
	return rhoBar, j, piNeq(g.Desc, c.F, feq)
}

func (g *GuoForceBGK) Regularize(c *cell.Cell) {
	rhoBar, j, pi := g.ComputeRhoBarJPiNeq(c)
	recompose(g.Desc, c, rhoBar, j, pi, 1.0)
}

func (g *GuoForceBGK) Decompose(c *cell.Cell, order int) []float64 {
	if order == 0 {
		rhoBar, j := g.ComputeRhoBarJ(c)
		return append([]float64{rhoBar}, j...)
	}
	rhoBar, j, pi := g.ComputeRhoBarJPiNeq(c)
	out := append([]float64{rhoBar}, j...)
	return append(out, pi...)
}

func (g *GuoForceBGK) Recompose(c *cell.Cell, decomposed []float64, order int) {
	d := g.Desc
	rhoBar := decomposed[0]
	j := decomposed[1 : 1+d.D]
	if order == 0 {
		copy(c.F, g.Equilibrium(rhoBar, j, dot(j, j)))
		return
	}
	recompose(d, c, rhoBar, j, decomposed[1+d.D:], 1.0)
}

func (g *GuoForceBGK) Rescale(xDx, dt float64) {}

func (g *GuoForceBGK) Clone() cell.Dynamics {
	cp := *g
	return &cp
}
