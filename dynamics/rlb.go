package dynamics

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// RLB is the regularized collision operator (spec.md §4.3, "Regularized
// RLB collision"): rebuild every population from rho-bar, j and Pi-neq
// rather than relaxing f_i directly, which filters out high-order
// non-hydrodynamic (ghost) modes before collision.
type RLB struct {
	Basic
}

func NewRLB(d *descriptor.Descriptor, omega float64) *RLB {
	return &RLB{Basic{Desc: d, Omega: omega}}
}

func (r *RLB) Collide(c *cell.Cell, statistics *stats.Statistics) {
	rhoBar, j, pi := r.ComputeRhoBarJPiNeq(c)
	recompose(r.Desc, c, rhoBar, j, pi, 1-r.Omega)
	jSqr := dot(j, j)
	gather(c, statistics, r.Desc.FullRho(rhoBar), jSqr*r.Desc.InvRho(rhoBar)*r.Desc.InvRho(rhoBar))
}

func (r *RLB) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	rhoBar, j := r.ComputeRhoBarJ(c)
	feq := r.Equilibrium(rhoBar, j, dot(j, j))
	return rhoBar, j, piNeq(r.Desc, c.F, feq)
}

func (r *RLB) Regularize(c *cell.Cell) {
	rhoBar, j, pi := r.ComputeRhoBarJPiNeq(c)
	recompose(r.Desc, c, rhoBar, j, pi, 1.0)
}

func (r *RLB) Decompose(c *cell.Cell, order int) []float64 {
	if order == 0 {
		rhoBar, j := r.ComputeRhoBarJ(c)
		return append([]float64{rhoBar}, j...)
	}
	rhoBar, j, pi := r.ComputeRhoBarJPiNeq(c)
	out := append([]float64{rhoBar}, j...)
	return append(out, pi...)
}

func (r *RLB) Recompose(c *cell.Cell, decomposed []float64, order int) {
	d := r.Desc
	rhoBar := decomposed[0]
	j := decomposed[1 : 1+d.D]
	if order == 0 {
		copy(c.F, r.Equilibrium(rhoBar, j, dot(j, j)))
		return
	}
	recompose(d, c, rhoBar, j, decomposed[1+d.D:], 1.0)
}

func (r *RLB) Rescale(xDx, dt float64) {}

func (r *RLB) Clone() cell.Dynamics {
	cp := *r
	return &cp
}
