package dynamics

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// ThermalBulkDynamics solves the advection-diffusion equation on a
// D2Q5/D3Q7 descriptor (spec.md §4.3, "Advection-diffusion BGK"): the
// scalar field (temperature, or any passive scalar) plays the role
// rho-bar plays for the fluid lattice, and the advecting velocity is
// supplied by the caller rather than recovered from populations, since
// advection-diffusion lattices carry no momentum of their own.
//
// The linear (not quadratic) equilibrium t_i*T*(1+invCs2*c_i.u) is the
// standard AD-LBM closure; using the fluid lattice's quadratic BGK
// equilibrium here would violate the diffusion equation's symmetry.
type ThermalBulkDynamics struct {
	Desc       *descriptor.Descriptor
	Omega      float64
	VelocityFn func(c *cell.Cell) []float64
}

func NewThermalBulkDynamics(d *descriptor.Descriptor, omega float64, velocityFn func(c *cell.Cell) []float64) *ThermalBulkDynamics {
	return &ThermalBulkDynamics{Desc: d, Omega: omega, VelocityFn: velocityFn}
}

func (t *ThermalBulkDynamics) Descriptor() *descriptor.Descriptor { return t.Desc }
func (t *ThermalBulkDynamics) GetOmega() float64                  { return t.Omega }
func (t *ThermalBulkDynamics) SetOmega(omega float64)             { t.Omega = omega }
func (t *ThermalBulkDynamics) GetParameter(id int) float64 {
	if id == ParamOmega {
		return t.Omega
	}
	return 0
}
func (t *ThermalBulkDynamics) SetParameter(id int, v float64) {
	if id == ParamOmega {
		t.Omega = v
	}
}

// thermalEquilibrium computes the linear AD-LBM equilibrium for a scalar
// field T advected by velocity u.
func thermalEquilibrium(d *descriptor.Descriptor, temp float64, u []float64) []float64 {
	feq := make([]float64, d.Q)
	for i := 0; i < d.Q; i++ {
		var cu float64
		for k := 0; k < d.D; k++ {
			cu += float64(d.C[i][k]) * u[k]
		}
		feq[i] = d.T[i] * temp * (1 + d.InvCs2*cu)
	}
	return feq
}

func (t *ThermalBulkDynamics) Equilibrium(rhoBar float64, j []float64, jSqr float64) []float64 {
	d := t.Desc
	temp := d.FullRho(rhoBar)
	u := make([]float64, d.D)
	invT := 1.0
	if temp != 0 {
		invT = 1 / temp
	}
	for k := range u {
		u[k] = j[k] * invT
	}
	return thermalEquilibrium(d, temp, u)
}

func (t *ThermalBulkDynamics) ComputeTemperature(c *cell.Cell) float64 {
	var sum float64
	for _, f := range c.F {
		sum += f
	}
	return sum
}

func (t *ThermalBulkDynamics) ComputeHeatFlux(c *cell.Cell) []float64 {
	d := t.Desc
	q := make([]float64, d.D)
	for i := 0; i < d.Q; i++ {
		for k := 0; k < d.D; k++ {
			q[k] += float64(d.C[i][k]) * c.F[i]
		}
	}
	return q
}

func (t *ThermalBulkDynamics) ComputeDensity(c *cell.Cell) float64  { return t.ComputeTemperature(c) }
func (t *ThermalBulkDynamics) ComputeVelocity(c *cell.Cell) []float64 {
	return t.VelocityFn(c)
}

func (t *ThermalBulkDynamics) ComputeRhoBarJ(c *cell.Cell) (float64, []float64) {
	temp := t.ComputeTemperature(c)
	u := t.VelocityFn(c)
	j := make([]float64, t.Desc.D)
	for k, uk := range u {
		j[k] = uk * temp
	}
	return t.Desc.RhoBar(temp), j
}

func (t *ThermalBulkDynamics) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	rhoBar, j := t.ComputeRhoBarJ(c)
	feq := t.Equilibrium(rhoBar, j, dot(j, j))
	return rhoBar, j, piNeq(t.Desc, c.F, feq)
}

func (t *ThermalBulkDynamics) Collide(c *cell.Cell, statistics *stats.Statistics) {
	temp := t.ComputeTemperature(c)
	u := t.VelocityFn(c)
	feq := thermalEquilibrium(t.Desc, temp, u)
	for i := range c.F {
		c.F[i] = (1-t.Omega)*c.F[i] + t.Omega*feq[i]
	}
}

// Regularize rebuilds populations from T, u and the measured Pi_neq:
// every population, cell[0] (the rest population) included, becomes
// feq[i] + offEq(i, Pi_neq), since the rest direction carries a nonzero
// non-equilibrium part on a D2Q5/D3Q7 lattice just like every other
// direction.
func (t *ThermalBulkDynamics) Regularize(c *cell.Cell) {
	d := t.Desc
	temp := t.ComputeTemperature(c)
	u := t.VelocityFn(c)
	feq := thermalEquilibrium(d, temp, u)
	pi := piNeq(d, c.F, feq)
	for i := 0; i < d.Q; i++ {
		c.F[i] = feq[i] + offEquilibrium(d, i, pi)
	}
}

// Decompose returns [T, q...] (order 0) or [T, q..., Pi_neq...] (order
// 1), built from freshly allocated stack-local slices rather than
// references into shared state, so callers can mutate the result freely.
func (t *ThermalBulkDynamics) Decompose(c *cell.Cell, order int) []float64 {
	temp := t.ComputeTemperature(c)
	q := t.ComputeHeatFlux(c)
	out := make([]float64, 0, 1+len(q)+symmetricTensorSize(t.Desc.D))
	out = append(out, temp)
	out = append(out, q...)
	if order == 0 {
		return out
	}
	rhoBar, j, pi := t.ComputeRhoBarJPiNeq(c)
	_ = rhoBar
	_ = j
	out = append(out, pi...)
	return out
}

func (t *ThermalBulkDynamics) Recompose(c *cell.Cell, decomposed []float64, order int) {
	d := t.Desc
	temp := decomposed[0]
	u := t.VelocityFn(c)
	if order == 0 {
		copy(c.F, thermalEquilibrium(d, temp, u))
		return
	}
	pi := decomposed[1+d.D:]
	feq := thermalEquilibrium(d, temp, u)
	for i := 0; i < d.Q; i++ {
		c.F[i] = feq[i] + offEquilibrium(d, i, pi)
	}
}

func (t *ThermalBulkDynamics) Rescale(xDx, dt float64) {}

func (t *ThermalBulkDynamics) Clone() cell.Dynamics {
	cp := *t
	return &cp
}
