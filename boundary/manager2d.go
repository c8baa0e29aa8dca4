package boundary

import (
	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/dynamics"
	"github.com/palabos-go/lbm/geom"
)

// extrapolatedVelocity2D reads the current velocity of the first interior
// neighbor in the inward direction (-dx,-dy) and freezes it into a
// constant closure, the stand-in this core uses for Palabos' zero-
// gradient extrapolation on Neumann/outflow faces (spec.md C6).
func extrapolatedVelocity2D(lat *block.BlockLattice2D, x, y, dx, dy int) []float64 {
	nx, ny := x-dx, y-dy
	if nx < 0 {
		nx = 0
	}
	if nx >= lat.NX() {
		nx = lat.NX() - 1
	}
	if ny < 0 {
		ny = 0
	}
	if ny >= lat.NY() {
		ny = lat.NY() - 1
	}
	return lat.Get(nx, ny).ComputeVelocity()
}

func extrapolatedRhoBar2D(lat *block.BlockLattice2D, x, y, dx, dy int) float64 {
	nx, ny := x-dx, y-dy
	if nx < 0 {
		nx = 0
	}
	if nx >= lat.NX() {
		nx = lat.NX() - 1
	}
	if ny < 0 {
		ny = 0
	}
	if ny >= lat.NY() {
		ny = lat.NY() - 1
	}
	return lat.Descriptor().RhoBar(lat.Get(nx, ny).ComputeDensity())
}

// velocityDynamics2D picks the Composite family for bcType at one cell,
// given the face/corner's outward normal (dx,dy) and the imposed/target
// velocity at that site (spec.md C6: dirichlet imposes it outright,
// neumann/outflow extrapolate it whole from the interior neighbor,
// freeslip/normalOutflow split normal vs. tangential treatment).
func velocityDynamics2D(lat *block.BlockLattice2D, base cell.Dynamics, x, y, dx, dy int, bcType BcType, imposed []float64) cell.Dynamics {
	rhoBar := extrapolatedRhoBar2D(lat, x, y, dx, dy)
	onWallRhoBar := func(c *cell.Cell) float64 { return rhoBar }

	switch bcType {
	case Dirichlet:
		u := imposed
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	case Neumann, Outflow:
		u := extrapolatedVelocity2D(lat, x, y, dx, dy)
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	case FreeSlip:
		extrap := extrapolatedVelocity2D(lat, x, y, dx, dy)
		normalAxis := 0
		if dy != 0 {
			normalAxis = 1
		}
		u := append([]float64(nil), extrap...)
		u[normalAxis] = 0
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	case NormalOutflow:
		extrap := extrapolatedVelocity2D(lat, x, y, dx, dy)
		normalAxis := 0
		if dy != 0 {
			normalAxis = 1
		}
		u := make([]float64, len(extrap))
		u[normalAxis] = extrap[normalAxis]
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	default:
		u := imposed
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	}
}

// densityDynamics2D is the pressure-boundary analogue of
// velocityDynamics2D: the imposed/extrapolated value is a density, and
// velocity is reconstructed from the interior neighbor.
func densityDynamics2D(lat *block.BlockLattice2D, base cell.Dynamics, x, y, dx, dy int, bcType BcType, imposed float64) cell.Dynamics {
	u := extrapolatedVelocity2D(lat, x, y, dx, dy)
	onWallVelocity := func(c *cell.Cell) []float64 { return u }

	switch bcType {
	case Dirichlet:
		rho := imposed
		return dynamics.NewDensityDirichlet(base, func(c *cell.Cell) float64 { return rho }, onWallVelocity)
	default:
		rho := lat.Get(x, y).ComputeDensity()
		return dynamics.NewDensityDirichlet(base, func(c *cell.Cell) float64 { return rho }, onWallVelocity)
	}
}

// AddVelocityBoundaryFace2D instantiates a velocity boundary over every
// cell of face (spec.md C6, "addVelocityBoundary0N/0P/1N/1P" family),
// sampling velocity at each cell's own coordinates.
func AddVelocityBoundaryFace2D(lat *block.BlockLattice2D, face geom.Face2D, bcType BcType, velocity VelocityField2D) {
	dx, dy := face.Dir, 0
	if face.Axis == 1 {
		dx, dy = 0, face.Dir
	}
	for x := face.Box.X0; x <= face.Box.X1; x++ {
		for y := face.Box.Y0; y <= face.Box.Y1; y++ {
			base := lat.Get(x, y).Dynamics()
			co := velocityDynamics2D(lat, base, x, y, dx, dy, bcType, velocity(x, y))
			lat.AttributeDynamics(geom.Box2D{X0: x, X1: x, Y0: y, Y1: y}, co)
		}
	}
}

// AddVelocityBoundaryCorner2D is the corner analogue (spec.md C6,
// "addExternalVelocityCornerNN/NP/PN/PP" family), outward normal
// (DX,DY).
func AddVelocityBoundaryCorner2D(lat *block.BlockLattice2D, corner geom.Corner2D, bcType BcType, velocity VelocityField2D) {
	for x := corner.Box.X0; x <= corner.Box.X1; x++ {
		for y := corner.Box.Y0; y <= corner.Box.Y1; y++ {
			base := lat.Get(x, y).Dynamics()
			co := velocityDynamics2D(lat, base, x, y, corner.DX, corner.DY, bcType, velocity(x, y))
			lat.AttributeDynamics(geom.Box2D{X0: x, X1: x, Y0: y, Y1: y}, co)
		}
	}
}

// AddPressureBoundaryFace2D is the density/pressure boundary analogue of
// AddVelocityBoundaryFace2D (spec.md C6, "addPressureBoundary0N/0P/1N/1P"
// family).
func AddPressureBoundaryFace2D(lat *block.BlockLattice2D, face geom.Face2D, bcType BcType, density DensityField2D) {
	dx, dy := face.Dir, 0
	if face.Axis == 1 {
		dx, dy = 0, face.Dir
	}
	for x := face.Box.X0; x <= face.Box.X1; x++ {
		for y := face.Box.Y0; y <= face.Box.Y1; y++ {
			base := lat.Get(x, y).Dynamics()
			co := densityDynamics2D(lat, base, x, y, dx, dy, bcType, density(x, y))
			lat.AttributeDynamics(geom.Box2D{X0: x, X1: x, Y0: y, Y1: y}, co)
		}
	}
}

// SetVelocityConditionOnBlockBoundaries instantiates a velocity boundary
// over the entire outer shell of lat (spec.md C6,
// "setVelocityConditionOnBlockBoundaries"), `width` cells deep.
func SetVelocityConditionOnBlockBoundaries(lat *block.BlockLattice2D, width int, bcType BcType, velocity VelocityField2D) {
	faces, corners := geom.Surface2D(lat.BoundingBox(), width)
	for _, f := range faces {
		AddVelocityBoundaryFace2D(lat, f, bcType, velocity)
	}
	for _, c := range corners {
		AddVelocityBoundaryCorner2D(lat, c, bcType, velocity)
	}
}
