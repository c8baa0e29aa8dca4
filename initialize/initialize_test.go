package initialize

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/dynamics"
	"github.com/palabos-go/lbm/geom"
)

func TestIniEquilibrium2DSetsConstantDensityAndVelocity(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.3)
	lat := block.NewBlockLattice2D(d, 4, 4, bg, block.Config{})

	IniEquilibrium2D(lat, lat.BoundingBox(), ConstantDensity2D(1.02), ConstantVelocity2D(mgl32.Vec2{0.03, -0.01}))

	for x := 0; x < lat.NX(); x++ {
		for y := 0; y < lat.NY(); y++ {
			c := lat.Get(x, y)
			assert.InDelta(t, 1.02, c.ComputeDensity(), 1e-9)
			u := c.ComputeVelocity()
			assert.InDelta(t, 0.03, u[0], 1e-9)
			assert.InDelta(t, -0.01, u[1], 1e-9)
		}
	}
}

func TestSetToCoordinate2DWritesRowMajorPositions(t *testing.T) {
	box := geom.Box2D{X0: 0, X1: 1, Y0: 0, Y1: 1}
	out := make([]float64, 4)
	SetToCoordinate2D(box, 0, out)
	assert.Equal(t, []float64{0, 0, 1, 1}, out)

	out2 := make([]float64, 4)
	SetToCoordinate2D(box, 1, out2)
	assert.Equal(t, []float64{0, 1, 0, 1}, out2)
}

func TestSetToFunction2DAppliesPerCell(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.3)
	lat := block.NewBlockLattice2D(d, 3, 3, bg, block.Config{})

	SetToFunction2D(lat, lat.BoundingBox(), func(x, y int, c *cell.Cell) {
		IniEquilibriumCell(d, c, c.Dynamics(), 1.0+0.01*float64(x), []float64{0, 0})
	})

	assert.InDelta(t, 1.0, lat.Get(0, 0).ComputeDensity(), 1e-9)
	assert.InDelta(t, 1.02, lat.Get(2, 1).ComputeDensity(), 1e-9)
}
