package boundary

import (
	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/dynamics"
	"github.com/palabos-go/lbm/geom"
)

func clampIndex(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func extrapolatedVelocity3D(lat *block.BlockLattice3D, x, y, z, dx, dy, dz int) []float64 {
	nx := clampIndex(x-dx, 0, lat.NX()-1)
	ny := clampIndex(y-dy, 0, lat.NY()-1)
	nz := clampIndex(z-dz, 0, lat.NZ()-1)
	return lat.Get(nx, ny, nz).ComputeVelocity()
}

func extrapolatedRhoBar3D(lat *block.BlockLattice3D, x, y, z, dx, dy, dz int) float64 {
	nx := clampIndex(x-dx, 0, lat.NX()-1)
	ny := clampIndex(y-dy, 0, lat.NY()-1)
	nz := clampIndex(z-dz, 0, lat.NZ()-1)
	return lat.Descriptor().RhoBar(lat.Get(nx, ny, nz).ComputeDensity())
}

func velocityDynamics3D(lat *block.BlockLattice3D, base cell.Dynamics, x, y, z, dx, dy, dz int, bcType BcType, imposed []float64) cell.Dynamics {
	rhoBar := extrapolatedRhoBar3D(lat, x, y, z, dx, dy, dz)
	onWallRhoBar := func(c *cell.Cell) float64 { return rhoBar }

	switch bcType {
	case Dirichlet:
		u := imposed
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	case Neumann, Outflow:
		u := extrapolatedVelocity3D(lat, x, y, z, dx, dy, dz)
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	case FreeSlip:
		extrap := extrapolatedVelocity3D(lat, x, y, z, dx, dy, dz)
		normalAxis := 0
		switch {
		case dy != 0:
			normalAxis = 1
		case dz != 0:
			normalAxis = 2
		}
		u := append([]float64(nil), extrap...)
		u[normalAxis] = 0
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	case NormalOutflow:
		extrap := extrapolatedVelocity3D(lat, x, y, z, dx, dy, dz)
		normalAxis := 0
		switch {
		case dy != 0:
			normalAxis = 1
		case dz != 0:
			normalAxis = 2
		}
		u := make([]float64, len(extrap))
		u[normalAxis] = extrap[normalAxis]
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	default:
		u := imposed
		return dynamics.NewVelocityDirichlet(base, func(c *cell.Cell) []float64 { return u }, onWallRhoBar)
	}
}

func densityDynamics3D(lat *block.BlockLattice3D, base cell.Dynamics, x, y, z, dx, dy, dz int, bcType BcType, imposed float64) cell.Dynamics {
	u := extrapolatedVelocity3D(lat, x, y, z, dx, dy, dz)
	onWallVelocity := func(c *cell.Cell) []float64 { return u }

	switch bcType {
	case Dirichlet:
		rho := imposed
		return dynamics.NewDensityDirichlet(base, func(c *cell.Cell) float64 { return rho }, onWallVelocity)
	default:
		rho := lat.Get(x, y, z).ComputeDensity()
		return dynamics.NewDensityDirichlet(base, func(c *cell.Cell) float64 { return rho }, onWallVelocity)
	}
}

// faceNormal3D returns the outward normal of a Face3D as (dx,dy,dz).
func faceNormal3D(f geom.Face3D) (int, int, int) {
	switch f.Axis {
	case 0:
		return f.Dir, 0, 0
	case 1:
		return 0, f.Dir, 0
	default:
		return 0, 0, f.Dir
	}
}

// edgeNormal3D returns a representative outward normal for an Edge3D:
// nonzero on both axes pinned by the edge, zero on FreeAxis.
func edgeNormal3D(e geom.Edge3D) (int, int, int) {
	switch e.FreeAxis {
	case 0:
		return 0, e.Dir1, e.Dir2
	case 1:
		return e.Dir1, 0, e.Dir2
	default:
		return e.Dir1, e.Dir2, 0
	}
}

// AddVelocityBoundaryFace3D instantiates a velocity boundary over every
// cell of face (spec.md C6, "addVelocityBoundary0N/.../2P" family).
func AddVelocityBoundaryFace3D(lat *block.BlockLattice3D, face geom.Face3D, bcType BcType, velocity VelocityField3D) {
	dx, dy, dz := faceNormal3D(face)
	for x := face.Box.X0; x <= face.Box.X1; x++ {
		for y := face.Box.Y0; y <= face.Box.Y1; y++ {
			for z := face.Box.Z0; z <= face.Box.Z1; z++ {
				base := lat.Get(x, y, z).Dynamics()
				co := velocityDynamics3D(lat, base, x, y, z, dx, dy, dz, bcType, velocity(x, y, z))
				lat.AttributeDynamics(geom.Box3D{X0: x, X1: x, Y0: y, Y1: y, Z0: z, Z1: z}, co)
			}
		}
	}
}

// AddExternalVelocityEdge3D is the edge analogue (spec.md C6,
// "addExternalVelocityEdge<axis><dir><dir>" family).
func AddExternalVelocityEdge3D(lat *block.BlockLattice3D, edge geom.Edge3D, bcType BcType, velocity VelocityField3D) {
	dx, dy, dz := edgeNormal3D(edge)
	for x := edge.Box.X0; x <= edge.Box.X1; x++ {
		for y := edge.Box.Y0; y <= edge.Box.Y1; y++ {
			for z := edge.Box.Z0; z <= edge.Box.Z1; z++ {
				base := lat.Get(x, y, z).Dynamics()
				co := velocityDynamics3D(lat, base, x, y, z, dx, dy, dz, bcType, velocity(x, y, z))
				lat.AttributeDynamics(geom.Box3D{X0: x, X1: x, Y0: y, Y1: y, Z0: z, Z1: z}, co)
			}
		}
	}
}

// AddExternalVelocityCorner3D instantiates the single cell at a 3D
// corner (spec.md C6, "addExternalVelocityCornerNNN/.../PPP" family).
func AddExternalVelocityCorner3D(lat *block.BlockLattice3D, corner geom.Corner3D, bcType BcType, velocity VelocityField3D) {
	for x := corner.Box.X0; x <= corner.Box.X1; x++ {
		for y := corner.Box.Y0; y <= corner.Box.Y1; y++ {
			for z := corner.Box.Z0; z <= corner.Box.Z1; z++ {
				base := lat.Get(x, y, z).Dynamics()
				co := velocityDynamics3D(lat, base, x, y, z, corner.DX, corner.DY, corner.DZ, bcType, velocity(x, y, z))
				lat.AttributeDynamics(geom.Box3D{X0: x, X1: x, Y0: y, Y1: y, Z0: z, Z1: z}, co)
			}
		}
	}
}

// AddPressureBoundaryFace3D is the density/pressure boundary analogue of
// AddVelocityBoundaryFace3D.
func AddPressureBoundaryFace3D(lat *block.BlockLattice3D, face geom.Face3D, bcType BcType, density DensityField3D) {
	dx, dy, dz := faceNormal3D(face)
	for x := face.Box.X0; x <= face.Box.X1; x++ {
		for y := face.Box.Y0; y <= face.Box.Y1; y++ {
			for z := face.Box.Z0; z <= face.Box.Z1; z++ {
				base := lat.Get(x, y, z).Dynamics()
				co := densityDynamics3D(lat, base, x, y, z, dx, dy, dz, bcType, density(x, y, z))
				lat.AttributeDynamics(geom.Box3D{X0: x, X1: x, Y0: y, Y1: y, Z0: z, Z1: z}, co)
			}
		}
	}
}

// SetVelocityConditionOnBlockBoundaries3D is the 3D analogue of
// SetVelocityConditionOnBlockBoundaries (spec.md C6).
func SetVelocityConditionOnBlockBoundaries3D(lat *block.BlockLattice3D, width int, bcType BcType, velocity VelocityField3D) {
	faces, edges, corners := geom.Surface3D(lat.BoundingBox(), width)
	for _, f := range faces {
		AddVelocityBoundaryFace3D(lat, f, bcType, velocity)
	}
	for _, e := range edges {
		AddExternalVelocityEdge3D(lat, e, bcType, velocity)
	}
	for _, c := range corners {
		AddExternalVelocityCorner3D(lat, c, bcType, velocity)
	}
}
