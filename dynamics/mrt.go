package dynamics

import (
	"fmt"

	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// MRT collides in moment space with a diagonal relaxation matrix (spec.md
// §4.3, "MRT collision"): transform f -> m = M.f, subtract m^eq, scale
// component-wise by a relaxation vector where the shear-viscosity entries
// are set to Omega and the bulk-viscosity entry to Lambda, transform back
// via InvM, subtract from f.
type MRT struct {
	Basic
	Lambda float64
}

// NewMRT requires d.MRT to be populated (e.g. descriptor.NewD2Q9MRT());
// constructing an MRT dynamics on a descriptor without moment-space data
// is a programmer error (spec.md §7: precondition, fatal).
func NewMRT(d *descriptor.Descriptor, omega, lambda float64) *MRT {
	if d.MRT == nil {
		panic(fmt.Sprintf("dynamics: descriptor %s has no MRT transform", d.Name))
	}
	return &MRT{Basic: Basic{Desc: d, Omega: omega}, Lambda: lambda}
}

func (m *MRT) relaxationVector() []float64 {
	s := append([]float64(nil), m.Desc.MRT.S...)
	for _, idx := range m.Desc.MRT.ShearIndices {
		s[idx] = m.Omega
	}
	s[m.Desc.MRT.BulkIndex] = m.Lambda
	return s
}

func (m *MRT) Collide(c *cell.Cell, statistics *stats.Statistics) {
	d := m.Desc
	mrt := d.MRT
	q := d.Q

	rhoBar, j := m.ComputeRhoBarJ(c)
	jSqr := dot(j, j)
	feq := m.Equilibrium(rhoBar, j, jSqr)

	moments := matVec(mrt.M, c.F)
	momentsEq := matVec(mrt.M, feq)
	s := m.relaxationVector()

	delta := make([]float64, q)
	for i := 0; i < q; i++ {
		delta[i] = s[i] * (moments[i] - momentsEq[i])
	}
	correction := matVec(mrt.InvM, delta)
	for i := 0; i < q; i++ {
		c.F[i] -= correction[i]
	}

	gather(c, statistics, d.FullRho(rhoBar), jSqr*d.InvRho(rhoBar)*d.InvRho(rhoBar))
}

func matVec(mat [][]float64, v []float64) []float64 {
	out := make([]float64, len(mat))
	for i, row := range mat {
		var s float64
		for k, a := range row {
			s += a * v[k]
		}
		out[i] = s
	}
	return out
}

func (m *MRT) ComputeRhoBarJPiNeq(c *cell.Cell) (float64, []float64, []float64) {
	rhoBar, j := m.ComputeRhoBarJ(c)
	feq := m.Equilibrium(rhoBar, j, dot(j, j))
	return rhoBar, j, piNeq(m.Desc, c.F, feq)
}

func (m *MRT) Regularize(c *cell.Cell) {
	rhoBar, j, pi := m.ComputeRhoBarJPiNeq(c)
	recompose(m.Desc, c, rhoBar, j, pi, 1.0)
}

func (m *MRT) Decompose(c *cell.Cell, order int) []float64 {
	if order == 0 {
		rhoBar, j := m.ComputeRhoBarJ(c)
		return append([]float64{rhoBar}, j...)
	}
	rhoBar, j, pi := m.ComputeRhoBarJPiNeq(c)
	out := append([]float64{rhoBar}, j...)
	return append(out, pi...)
}

func (m *MRT) Recompose(c *cell.Cell, decomposed []float64, order int) {
	d := m.Desc
	rhoBar := decomposed[0]
	j := decomposed[1 : 1+d.D]
	if order == 0 {
		copy(c.F, m.Equilibrium(rhoBar, j, dot(j, j)))
		return
	}
	recompose(d, c, rhoBar, j, decomposed[1+d.D:], 1.0)
}

func (m *MRT) Rescale(xDx, dt float64) {}

func (m *MRT) Clone() cell.Dynamics {
	cp := *m
	return &cp
}

func (m *MRT) GetParameter(id int) float64 {
	if id == ParamLambda {
		return m.Lambda
	}
	return m.Basic.GetParameter(id)
}

func (m *MRT) SetParameter(id int, value float64) {
	if id == ParamLambda {
		m.Lambda = value
		return
	}
	m.Basic.SetParameter(id, value)
}
