package dynamics

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// BGK is single-relaxation-time collision (spec.md §4.3, "BGK collision
// contract"). It is the reference Bulk dynamics every other variant in
// this package is described relative to.
type BGK struct {
	Basic
}

func NewBGK(d *descriptor.Descriptor, omega float64) *BGK {
	return &BGK{Basic{Desc: d, Omega: omega}}
}

func (b *BGK) Collide(c *cell.Cell, statistics *stats.Statistics) {
	rhoBar, j := b.ComputeRhoBarJ(c)
	jSqr := dot(j, j)
	feq := b.Equilibrium(rhoBar, j, jSqr)
	for i := range c.F {
		c.F[i] = (1-b.Omega)*c.F[i] + b.Omega*feq[i]
	}
	gather(c, statistics, b.Desc.FullRho(rhoBar), jSqr*b.Desc.InvRho(rhoBar)*b.Desc.InvRho(rhoBar))
}

func gather(c *cell.Cell, statistics *stats.Statistics, rho, uSqr float64) {
	if statistics == nil || !c.TakesStatistics() {
		return
	}
	statistics.GatherSum(stats.AvgRho, rho)
	statistics.GatherSum(stats.AvgUSqr, uSqr)
	statistics.GatherMax(stats.MaxUSqr, uSqr)
	statistics.IncrementCellCount()
}

func (b *BGK) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	rhoBar, j := b.ComputeRhoBarJ(c)
	feq := b.Equilibrium(rhoBar, j, dot(j, j))
	return rhoBar, j, piNeq(b.Desc, c.F, feq)
}

func (b *BGK) Regularize(c *cell.Cell) {
	rhoBar, j, pi := b.ComputeRhoBarJPiNeq(c)
	recompose(b.Desc, c, rhoBar, j, pi, 1.0)
}

// Decompose returns [rhoBar, j...] for order 0, or [rhoBar, j..., piNeq...]
// for order 1 (spec.md §8 property 7).
func (b *BGK) Decompose(c *cell.Cell, order int) []float64 {
	if order == 0 {
		rhoBar, j := b.ComputeRhoBarJ(c)
		return append([]float64{rhoBar}, j...)
	}
	rhoBar, j, pi := b.ComputeRhoBarJPiNeq(c)
	out := append([]float64{rhoBar}, j...)
	return append(out, pi...)
}

func (b *BGK) Recompose(c *cell.Cell, decomposed []float64, order int) {
	d := b.Desc
	rhoBar := decomposed[0]
	j := decomposed[1 : 1+d.D]
	if order == 0 {
		feq := b.Equilibrium(rhoBar, j, dot(j, j))
		copy(c.F, feq)
		return
	}
	pi := decomposed[1+d.D:]
	recompose(d, c, rhoBar, j, pi, 1.0)
}

// recompose rebuilds every population as f_i^eq + factor*offEq(i, PiNeq),
// the shared reconstruction used by RLB collision (factor = 1-omega),
// plain decompose/recompose round-tripping (factor = 1), and boundary
// dynamics' completePopulations (spec.md §4.3).
func recompose(d *descriptor.Descriptor, c *cell.Cell, rhoBar float64, j, pi []float64, factor float64) {
	feq := equilibrium(d, rhoBar, j, dot(j, j))
	for i := 0; i < d.Q; i++ {
		c.F[i] = feq[i] + factor*offEquilibrium(d, i, pi)
	}
}

func (b *BGK) Rescale(xDx, dt float64) {}

func (b *BGK) Clone() cell.Dynamics {
	cp := *b
	return &cp
}
