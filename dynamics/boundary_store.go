package dynamics

import "github.com/palabos-go/lbm/cell"

// This file builds the Store*/Regularized* boundary-composite family on
// top of Composite's override hooks (spec.md §4.3, "BoundaryComposite
// variants"). The orientation-specific analytic formulas (which
// populations are unknown at a given face/edge/corner, and the resulting
// on-wall density/velocity reconstruction) are supplied by the caller as
// closures — the boundary package's per-orientation instantiation table
// is what actually knows those formulas; this package only wires the
// generic machinery they plug into.

// NewStoreVelocity returns a composite that reports an externally imposed
// velocity from ComputeVelocity instead of deriving it from populations,
// while collision and every other moment query still delegate to base
// (spec.md §4.3, "StoreVelocity").
func NewStoreVelocity(base cell.Dynamics, imposedVelocity func(c *cell.Cell) []float64) *Composite {
	co := NewComposite(base)
	co.OverrideVelocityFn = func(c *cell.Cell) ([]float64, bool) { return imposedVelocity(c), true }
	return co
}

// NewStoreDensity is the density analogue of NewStoreVelocity (spec.md
// §4.3, "StoreDensity").
func NewStoreDensity(base cell.Dynamics, imposedDensity func(c *cell.Cell) float64) *Composite {
	co := NewComposite(base)
	co.OverrideDensityFn = func(c *cell.Cell) (float64, bool) { return imposedDensity(c), true }
	return co
}

// NewStoreDensityAndVelocity composes both overrides (spec.md §4.3,
// "StoreDensityAndVelocity").
func NewStoreDensityAndVelocity(base cell.Dynamics, imposedDensity func(c *cell.Cell) float64, imposedVelocity func(c *cell.Cell) []float64) *Composite {
	co := NewComposite(base)
	co.OverrideDensityFn = func(c *cell.Cell) (float64, bool) { return imposedDensity(c), true }
	co.OverrideVelocityFn = func(c *cell.Cell) ([]float64, bool) { return imposedVelocity(c), true }
	return co
}

// NewStoreTemperatureAndVelocity is the thermal analogue used by
// advection-diffusion boundary conditions (spec.md §4.3,
// "StoreTemperatureAndVelocity").
func NewStoreTemperatureAndVelocity(base cell.Dynamics, imposedTemperature func(c *cell.Cell) float64, imposedVelocity func(c *cell.Cell) []float64) *Composite {
	co := NewComposite(base)
	co.OverrideTemperatureFn = func(c *cell.Cell) (float64, bool) { return imposedTemperature(c), true }
	co.OverrideVelocityFn = func(c *cell.Cell) ([]float64, bool) { return imposedVelocity(c), true }
	return co
}

// NewRegularized builds the RegularizedVelocity/RegularizedDensity family
// (spec.md §4.3): before any moment query reaches base, completePops
// rebuilds the full population set of a *clone* from an on-wall rhoBar/j
// pair plus a Pi_neq estimate, then clamps the imposed moment back onto
// the clone with Store*-style overrides so the imposed datum is always
// what queries see, never a value recovered from the (possibly
// overwritten) reconstructed populations.
func NewRegularized(base cell.Dynamics, rhoBar func(c *cell.Cell) float64, j func(c *cell.Cell) []float64, piNeq func(c *cell.Cell) []float64) *Composite {
	co := NewComposite(base)
	desc := base.Descriptor()
	co.CompletePopulationsFn = func(c *cell.Cell) {
		recompose(desc, c, rhoBar(c), j(c), piNeq(c), 1.0)
	}
	return co
}

// NewRegularizedVelocity is NewRegularized specialized to impose velocity
// (density is let free, recovered from the reconstructed populations).
func NewRegularizedVelocity(base cell.Dynamics, imposedVelocity func(c *cell.Cell) []float64, onWallRhoBar func(c *cell.Cell) float64, piNeq func(c *cell.Cell) []float64) *Composite {
	desc := base.Descriptor()
	j := func(c *cell.Cell) []float64 {
		rhoBar := onWallRhoBar(c)
		u := imposedVelocity(c)
		out := make([]float64, len(u))
		rho := desc.FullRho(rhoBar)
		for k, uk := range u {
			out[k] = uk * rho
		}
		return out
	}
	co := NewRegularized(base, onWallRhoBar, j, piNeq)
	co.OverrideVelocityFn = func(c *cell.Cell) ([]float64, bool) { return imposedVelocity(c), true }
	return co
}

// NewRegularizedDensity is NewRegularized specialized to impose density
// (velocity is let free, recovered from the reconstructed populations).
func NewRegularizedDensity(base cell.Dynamics, imposedDensity func(c *cell.Cell) float64, onWallVelocity func(c *cell.Cell) []float64, piNeq func(c *cell.Cell) []float64) *Composite {
	desc := base.Descriptor()
	rhoBar := func(c *cell.Cell) float64 { return desc.RhoBar(imposedDensity(c)) }
	j := func(c *cell.Cell) []float64 {
		u := onWallVelocity(c)
		rho := imposedDensity(c)
		out := make([]float64, len(u))
		for k, uk := range u {
			out[k] = uk * rho
		}
		return out
	}
	co := NewRegularized(base, rhoBar, j, piNeq)
	co.OverrideDensityFn = func(c *cell.Cell) (float64, bool) { return imposedDensity(c), true }
	return co
}

// NewVelocityDirichlet implements VelocityDirichletBoundaryDynamics
// (spec.md §4.3): populations are completed by the regularized
// reconstruction above, but Pi_neq is taken to be zero (a first-order
// closure, as opposed to RegularizedVelocity's extrapolated Pi_neq). This
// is the plain Zou/He-family closure.
func NewVelocityDirichlet(base cell.Dynamics, imposedVelocity func(c *cell.Cell) []float64, onWallRhoBar func(c *cell.Cell) float64) *Composite {
	zero := func(c *cell.Cell) []float64 { return make([]float64, symmetricTensorSize(base.Descriptor().D)) }
	return NewRegularizedVelocity(base, imposedVelocity, onWallRhoBar, zero)
}

// NewDensityDirichlet is the density analogue of NewVelocityDirichlet.
func NewDensityDirichlet(base cell.Dynamics, imposedDensity func(c *cell.Cell) float64, onWallVelocity func(c *cell.Cell) []float64) *Composite {
	zero := func(c *cell.Cell) []float64 { return make([]float64, symmetricTensorSize(base.Descriptor().D)) }
	return NewRegularizedDensity(base, imposedDensity, onWallVelocity, zero)
}
