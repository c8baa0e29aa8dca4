package dynamics

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// Composite wraps a base Dynamics and overrides collision to call
// PrepareCollision(cell) before delegating (spec.md §4.3, "Composite
// dynamics state machine"). Embed it to build a new composite; override
// PrepareFn to customize what happens before delegation, and
// CompletePopulationsFn to customize how moment queries see the cell
// (NewRegularized in boundary_store.go sets it).
type Composite struct {
	Base cell.Dynamics

	// PrepareFn runs just before delegating collision to Base. Nil means
	// no preparation (a transparent wrapper).
	PrepareFn func(c *cell.Cell)

	// CompletePopulationsFn, if non-nil, is invoked on a *clone* of the
	// cell before any moment query is forwarded to Base (spec.md §4.3,
	// "BoundaryComposite variants"). Nil means moment queries go straight
	// to Base without cloning — an ordinary (non-boundary) composite.
	CompletePopulationsFn func(c *cell.Cell)

	// The Override*Fn hooks implement the Store* boundary composites
	// (spec.md §4.3, "StoreVelocity / StoreDensity / StoreDensityAndVelocity
	// / StoreTemperatureAndVelocity"): each stores an imposed datum and
	// returns it instead of delegating the corresponding moment query to
	// Base. A nil hook, or one returning ok=false, falls back to Base.
	OverrideDensityFn     func(c *cell.Cell) (rho float64, ok bool)
	OverrideVelocityFn    func(c *cell.Cell) (u []float64, ok bool)
	OverrideTemperatureFn func(c *cell.Cell) (t float64, ok bool)
}

// NewComposite requires a non-nil base; constructing a Composite with a
// nil base is a precondition violation (spec.md §7, fatal).
func NewComposite(base cell.Dynamics) *Composite {
	if base == nil {
		panic("dynamics: Composite constructed with a nil base dynamics")
	}
	return &Composite{Base: base}
}

func (co *Composite) Descriptor() *descriptor.Descriptor { return co.Base.Descriptor() }

func (co *Composite) Collide(c *cell.Cell, statistics *stats.Statistics) {
	if co.PrepareFn != nil {
		co.PrepareFn(c)
	}
	co.Base.Collide(c, statistics)
}

func (co *Composite) Equilibrium(rhoBar float64, j []float64, jSqr float64) []float64 {
	return co.Base.Equilibrium(rhoBar, j, jSqr)
}

func (co *Composite) Regularize(c *cell.Cell) {
	co.withCompletedClone(c, func(cc *cell.Cell) { co.Base.Regularize(cc); c.AttributeValues(cc) })
}

// withCompletedClone is the mechanism spec.md §4.3 describes for
// boundary-composite moment queries: clone the cell, run
// CompletePopulationsFn on the clone, then run fn against the clone —
// the caller never sees the partial/incomplete populations of the real
// cell.
func (co *Composite) withCompletedClone(c *cell.Cell, fn func(cc *cell.Cell)) {
	if co.CompletePopulationsFn == nil {
		fn(c)
		return
	}
	cc := c.Clone()
	co.CompletePopulationsFn(cc)
	fn(cc)
}

func (co *Composite) ComputeDensity(c *cell.Cell) float64 {
	if co.OverrideDensityFn != nil {
		if rho, ok := co.OverrideDensityFn(c); ok {
			return rho
		}
	}
	var r float64
	co.withCompletedClone(c, func(cc *cell.Cell) { r = co.Base.ComputeDensity(cc) })
	return r
}

func (co *Composite) ComputeVelocity(c *cell.Cell) []float64 {
	if co.OverrideVelocityFn != nil {
		if u, ok := co.OverrideVelocityFn(c); ok {
			return u
		}
	}
	var r []float64
	co.withCompletedClone(c, func(cc *cell.Cell) { r = co.Base.ComputeVelocity(cc) })
	return r
}

func (co *Composite) ComputeRhoBarJ(c *cell.Cell) (float64, []float64) {
	var rb float64
	var j []float64
	co.withCompletedClone(c, func(cc *cell.Cell) { rb, j = co.Base.ComputeRhoBarJ(cc) })
	return rb, j
}

func (co *Composite) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	var rb float64
	var j, pi []float64
	co.withCompletedClone(c, func(cc *cell.Cell) { rb, j, pi = co.Base.ComputeRhoBarJPiNeq(cc) })
	return rb, j, pi
}

func (co *Composite) ComputeTemperature(c *cell.Cell) float64 {
	if co.OverrideTemperatureFn != nil {
		if t, ok := co.OverrideTemperatureFn(c); ok {
			return t
		}
	}
	var r float64
	co.withCompletedClone(c, func(cc *cell.Cell) { r = co.Base.ComputeTemperature(cc) })
	return r
}

func (co *Composite) ComputeHeatFlux(c *cell.Cell) []float64 {
	var r []float64
	co.withCompletedClone(c, func(cc *cell.Cell) { r = co.Base.ComputeHeatFlux(cc) })
	return r
}

func (co *Composite) GetOmega() float64           { return co.Base.GetOmega() }
func (co *Composite) SetOmega(omega float64)      { co.Base.SetOmega(omega) }
func (co *Composite) GetParameter(id int) float64 { return co.Base.GetParameter(id) }
func (co *Composite) SetParameter(id int, v float64) { co.Base.SetParameter(id, v) }

func (co *Composite) Decompose(c *cell.Cell, order int) []float64 {
	var r []float64
	co.withCompletedClone(c, func(cc *cell.Cell) { r = co.Base.Decompose(cc, order) })
	return r
}

func (co *Composite) Recompose(c *cell.Cell, decomposed []float64, order int) {
	co.Base.Recompose(c, decomposed, order)
}

func (co *Composite) Rescale(xDx, dt float64) { co.Base.Rescale(xDx, dt) }

func (co *Composite) Clone() cell.Dynamics {
	cp := *co
	cp.Base = co.Base.Clone()
	return &cp
}
