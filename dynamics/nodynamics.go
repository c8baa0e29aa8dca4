package dynamics

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// NoDynamics marks a cell that participates in neither collision nor
// streaming moment bookkeeping (spec.md §4.3, "NoDynamics"): used for
// cells outside the simulated domain that must still hold a valid
// *cell.Cell (e.g. padding in the envelope of a block). Collide is a
// no-op; density and temperature report 1 (rho-bar 0), and velocity,
// momentum, Pi_neq and heat flux report zero.
type NoDynamics struct {
	Desc *descriptor.Descriptor
}

func NewNoDynamics(d *descriptor.Descriptor) *NoDynamics { return &NoDynamics{Desc: d} }

func (n *NoDynamics) Descriptor() *descriptor.Descriptor { return n.Desc }
func (n *NoDynamics) Collide(c *cell.Cell, statistics *stats.Statistics) {}
func (n *NoDynamics) Equilibrium(rhoBar float64, j []float64, jSqr float64) []float64 {
	return make([]float64, n.Desc.Q)
}
func (n *NoDynamics) ComputeDensity(c *cell.Cell) float64     { return 1 }
func (n *NoDynamics) ComputeVelocity(c *cell.Cell) []float64  { return make([]float64, n.Desc.D) }
func (n *NoDynamics) ComputeRhoBarJ(c *cell.Cell) (float64, []float64) {
	return 0, make([]float64, n.Desc.D)
}
func (n *NoDynamics) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	return 0, make([]float64, n.Desc.D), make([]float64, symmetricTensorSize(n.Desc.D))
}
func (n *NoDynamics) ComputeTemperature(c *cell.Cell) float64 { return 1 }
func (n *NoDynamics) ComputeHeatFlux(c *cell.Cell) []float64  { return make([]float64, n.Desc.D) }

func (n *NoDynamics) GetOmega() float64              { return 0 }
func (n *NoDynamics) SetOmega(omega float64)         {}
func (n *NoDynamics) GetParameter(id int) float64    { return 0 }
func (n *NoDynamics) SetParameter(id int, v float64) {}

func (n *NoDynamics) Regularize(c *cell.Cell)                                 {}
func (n *NoDynamics) Decompose(c *cell.Cell, order int) []float64             { return cloneFloats(c.F) }
func (n *NoDynamics) Recompose(c *cell.Cell, decomposed []float64, order int) { copy(c.F, decomposed) }
func (n *NoDynamics) Rescale(xDx, dt float64)                                 {}

func (n *NoDynamics) Clone() cell.Dynamics {
	cp := *n
	return &cp
}
