package boundary

import (
	"testing"

	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/dynamics"
	"github.com/palabos-go/lbm/geom"
	"github.com/stretchr/testify/assert"
)

func newSeededLattice2D(t *testing.T) *block.BlockLattice2D {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.3)
	lat := block.NewBlockLattice2D(d, 8, 8, bg, block.Config{})

	for x := 0; x < lat.NX(); x++ {
		for y := 0; y < lat.NY(); y++ {
			c := lat.Get(x, y)
			rhoBar := d.RhoBar(1.0)
			j := []float64{0.02, 0.0}
			copy(c.F, bg.Equilibrium(rhoBar, j, j[0]*j[0]+j[1]*j[1]))
		}
	}
	return lat
}

func TestAddVelocityBoundaryFace2DImposesExactVelocity(t *testing.T) {
	lat := newSeededLattice2D(t)
	faces, _ := geom.Surface2D(lat.BoundingBox(), 1)
	negXFace := faces[0] // Axis 0, Dir -1

	wanted := []float64{0.05, -0.01}
	AddVelocityBoundaryFace2D(lat, negXFace, Dirichlet, ConstantVelocity2D(wanted))

	for y := negXFace.Box.Y0; y <= negXFace.Box.Y1; y++ {
		u := lat.Get(0, y).ComputeVelocity()
		assert.InDelta(t, wanted[0], u[0], 1e-9)
		assert.InDelta(t, wanted[1], u[1], 1e-9)
	}
}

func TestAddPressureBoundaryFace2DImposesExactDensity(t *testing.T) {
	lat := newSeededLattice2D(t)
	faces, _ := geom.Surface2D(lat.BoundingBox(), 1)
	posXFace := faces[1] // Axis 0, Dir +1

	AddPressureBoundaryFace2D(lat, posXFace, Dirichlet, ConstantDensity2D(1.05))

	for y := posXFace.Box.Y0; y <= posXFace.Box.Y1; y++ {
		rho := lat.Get(lat.NX()-1, y).ComputeDensity()
		assert.InDelta(t, 1.05, rho, 1e-9)
	}
}

func TestNeumannVelocityBoundaryMatchesInteriorNeighbor(t *testing.T) {
	lat := newSeededLattice2D(t)
	faces, _ := geom.Surface2D(lat.BoundingBox(), 1)
	negXFace := faces[0]

	interior := lat.Get(1, 3).ComputeVelocity()
	AddVelocityBoundaryFace2D(lat, negXFace, Neumann, ConstantVelocity2D(nil))

	u := lat.Get(0, 3).ComputeVelocity()
	assert.InDelta(t, interior[0], u[0], 1e-9)
	assert.InDelta(t, interior[1], u[1], 1e-9)
}

func TestFreeSlipZeroesNormalComponent(t *testing.T) {
	lat := newSeededLattice2D(t)
	faces, _ := geom.Surface2D(lat.BoundingBox(), 1)
	negXFace := faces[0] // normal is (-1,0), so axis 0 is normal

	AddVelocityBoundaryFace2D(lat, negXFace, FreeSlip, ConstantVelocity2D(nil))

	u := lat.Get(0, 3).ComputeVelocity()
	assert.InDelta(t, 0.0, u[0], 1e-9, "normal component must be clamped to zero under free-slip")
}

func TestAddVelocityBoundaryCorner2DCoversSingleCell(t *testing.T) {
	lat := newSeededLattice2D(t)
	_, corners := geom.Surface2D(lat.BoundingBox(), 1)
	c := corners[0] // DX=-1, DY=-1 -> cell (0,0)

	wanted := []float64{0.01, 0.02}
	AddVelocityBoundaryCorner2D(lat, c, Dirichlet, ConstantVelocity2D(wanted))

	u := lat.Get(0, 0).ComputeVelocity()
	assert.InDelta(t, wanted[0], u[0], 1e-9)
	assert.InDelta(t, wanted[1], u[1], 1e-9)
}
