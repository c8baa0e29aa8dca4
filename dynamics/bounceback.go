package dynamics

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// BounceBack reflects every population back along its opposite direction on
// collision (spec.md §4.3, "BounceBack"): f_i <-> f_opposite(i). It carries
// no Omega and reports zero density/velocity by convention, since solid
// nodes do not participate in the hydrodynamic moments.
type BounceBack struct {
	Desc *descriptor.Descriptor
}

func NewBounceBack(d *descriptor.Descriptor) *BounceBack {
	return &BounceBack{Desc: d}
}

func (bb *BounceBack) Descriptor() *descriptor.Descriptor { return bb.Desc }

func (bb *BounceBack) Collide(c *cell.Cell, statistics *stats.Statistics) {
	d := bb.Desc
	out := make([]float64, d.Q)
	for i := 0; i < d.Q; i++ {
		out[d.Opposite(i)] = c.F[i]
	}
	copy(c.F, out)
}

func (bb *BounceBack) Equilibrium(rhoBar float64, j []float64, jSqr float64) []float64 {
	return equilibrium(bb.Desc, rhoBar, j, jSqr)
}

func (bb *BounceBack) ComputeDensity(c *cell.Cell) float64 { return 0 }
func (bb *BounceBack) ComputeVelocity(c *cell.Cell) []float64 {
	return make([]float64, bb.Desc.D)
}
func (bb *BounceBack) ComputeRhoBarJ(c *cell.Cell) (float64, []float64) {
	return 0, make([]float64, bb.Desc.D)
}
func (bb *BounceBack) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	return 0, make([]float64, bb.Desc.D), make([]float64, symmetricTensorSize(bb.Desc.D))
}
func (bb *BounceBack) ComputeTemperature(c *cell.Cell) float64 { return 1 }
func (bb *BounceBack) ComputeHeatFlux(c *cell.Cell) []float64  { return make([]float64, bb.Desc.D) }

func (bb *BounceBack) GetOmega() float64              { return 0 }
func (bb *BounceBack) SetOmega(omega float64)         {}
func (bb *BounceBack) GetParameter(id int) float64    { return 0 }
func (bb *BounceBack) SetParameter(id int, v float64) {}

func (bb *BounceBack) Regularize(c *cell.Cell) {}

func (bb *BounceBack) Decompose(c *cell.Cell, order int) []float64 {
	return cloneFloats(c.F)
}

func (bb *BounceBack) Recompose(c *cell.Cell, decomposed []float64, order int) {
	copy(c.F, decomposed)
}

func (bb *BounceBack) Rescale(xDx, dt float64) {}

func (bb *BounceBack) Clone() cell.Dynamics {
	cp := *bb
	return &cp
}

// MomentumExchangeBounceBack is BounceBack augmented with the momentum-
// exchange accumulation used to compute drag/lift on an immersed boundary
// (spec.md §4.3, "MomentumExchangeBounceBack"): on every collision it adds
// 2*c_i*f_i (pre-bounce) to a running force accumulator before reflecting,
// the standard momentum-exchange method for wall force measurement.
type MomentumExchangeBounceBack struct {
	BounceBack
	Force []float64
}

func NewMomentumExchangeBounceBack(d *descriptor.Descriptor) *MomentumExchangeBounceBack {
	return &MomentumExchangeBounceBack{BounceBack: BounceBack{Desc: d}, Force: make([]float64, d.D)}
}

func (m *MomentumExchangeBounceBack) Collide(c *cell.Cell, statistics *stats.Statistics) {
	d := m.Desc
	for i := 0; i < d.Q; i++ {
		f := 2 * c.F[i]
		for k := 0; k < d.D; k++ {
			m.Force[k] += f * float64(d.C[i][k])
		}
	}
	m.BounceBack.Collide(c, statistics)
}

// ResetForce zeroes the accumulator; callers invoke this once per
// time step before sweeping the immersed boundary's bounce-back cells.
func (m *MomentumExchangeBounceBack) ResetForce() {
	for k := range m.Force {
		m.Force[k] = 0
	}
}

func (m *MomentumExchangeBounceBack) Clone() cell.Dynamics {
	cp := *m
	cp.Force = cloneFloats(m.Force)
	return &cp
}
