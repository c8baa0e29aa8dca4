package multiphase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/dynamics"
)

func seededForcedLattice(t *testing.T, rho float64) *block.BlockLattice2D {
	d := descriptor.NewD2Q9Forced()
	bg := dynamics.NewBGK(d, 1.0)
	lat := block.NewBlockLattice2D(d, 6, 6, bg, block.Config{})
	for x := 0; x < lat.NX(); x++ {
		for y := 0; y < lat.NY(); y++ {
			c := lat.Get(x, y)
			rhoBar := d.RhoBar(rho)
			copy(c.F, bg.Equilibrium(rhoBar, []float64{0, 0}, 0))
		}
	}
	return lat
}

func TestMultiComponentProcessorConservesEachComponentMass(t *testing.T) {
	latA := seededForcedLattice(t, 1.0)
	latB := seededForcedLattice(t, 0.8)
	components := []Component{NewComponent(latA), NewComponent(latB)}
	proc := NewMultiComponentProcessor2D(0.5, components)

	massBefore := func(lat *block.BlockLattice2D) float64 {
		var sum float64
		for x := 0; x < lat.NX(); x++ {
			for y := 0; y < lat.NY(); y++ {
				for _, f := range lat.Get(x, y).F {
					sum += f
				}
			}
		}
		return sum
	}

	beforeA, beforeB := massBefore(latA), massBefore(latB)
	proc.Process(latA.BoundingBox())

	assert.InDelta(t, beforeA, massBefore(latA), 1e-9, "Shan-Chen writes only external momentum, never populations")
	assert.InDelta(t, beforeB, massBefore(latB), 1e-9)
}

func TestSingleComponentProcessorWritesMomentumExternal(t *testing.T) {
	lat := seededForcedLattice(t, 1.0)
	lat.Get(3, 3).F[0] += 0.1 // perturb density to create a nonzero gradient
	proc := NewSingleComponentProcessor2D(-1.0, ExponentialPsi(1.0))

	d := lat.Descriptor()
	proc.Process(lat, lat.BoundingBox())

	m := lat.Get(2, 3).External[d.External.MomentumOffset]
	assert.NotEqual(t, 0.0, m, "coupling near a density perturbation should leave a nonzero momentum correction")
}
