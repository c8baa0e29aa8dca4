// Package initialize implements the domain-initialization helpers
// (spec.md C8): IniEquilibrium, constant fields (ConstantVelocity*/
// ConstantDensity*, the source's setToConstant), SetToCoordinate(s) and
// SetToFunction, grounded on cellInitializer.hh's iniCellAtEquilibrium
// and dataFieldInitializer2D.h's setToConstant/setToCoordinate/
// setToFunction family.
package initialize

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/geom"
)

// IniEquilibriumCell sets c's populations to the equilibrium distribution
// at the given density and velocity (cellInitializer.hh,
// "iniCellAtEquilibrium"). jSqr is computed from j = density*velocity.
func IniEquilibriumCell(d *descriptor.Descriptor, c *cell.Cell, dyn cell.Dynamics, density float64, velocity []float64) {
	rhoBar := d.RhoBar(density)
	j := make([]float64, len(velocity))
	jSqr := 0.0
	for k, u := range velocity {
		j[k] = u * density
		jSqr += j[k] * j[k]
	}
	copy(c.F, dyn.Equilibrium(rhoBar, j, jSqr))
}

// VelocityFunc2D/3D supply a per-site velocity the way SetToFunction
// does (dataFieldInitializer2D.h, "setToFunction"/"ConstantVelocity").
type VelocityFunc2D func(x, y int) []float64
type DensityFunc2D func(x, y int) float64
type VelocityFunc3D func(x, y, z int) []float64
type DensityFunc3D func(x, y, z int) float64

// IniEquilibrium2D sets every cell of box to the equilibrium
// distribution using each cell's own dynamics and the per-site
// density/velocity fields (spec.md C8, "IniEquilibrium").
func IniEquilibrium2D(lat *block.BlockLattice2D, box geom.Box2D, density DensityFunc2D, velocity VelocityFunc2D) {
	d := lat.Descriptor()
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			c := lat.Get(x, y)
			IniEquilibriumCell(d, c, c.Dynamics(), density(x, y), velocity(x, y))
		}
	}
}

// IniEquilibrium3D is the 3D analogue of IniEquilibrium2D.
func IniEquilibrium3D(lat *block.BlockLattice3D, box geom.Box3D, density DensityFunc3D, velocity VelocityFunc3D) {
	d := lat.Descriptor()
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			for z := box.Z0; z <= box.Z1; z++ {
				c := lat.Get(x, y, z)
				IniEquilibriumCell(d, c, c.Dynamics(), density(x, y, z), velocity(x, y, z))
			}
		}
	}
}

// ConstantVelocity2D/3D and ConstantDensity2D/3D are SetToConstant's
// field constructors (dataFieldInitializer2D.h, "setToConstant"), taking
// the mgl32 fixed-dimension vector type since an imposed velocity is
// always 2 or 3 components.
func ConstantVelocity2D(v mgl32.Vec2) VelocityFunc2D {
	u := []float64{float64(v[0]), float64(v[1])}
	return func(x, y int) []float64 { return u }
}

func ConstantVelocity3D(v mgl32.Vec3) VelocityFunc3D {
	u := []float64{float64(v[0]), float64(v[1]), float64(v[2])}
	return func(x, y, z int) []float64 { return u }
}

func ConstantDensity2D(rho float64) DensityFunc2D { return func(x, y int) float64 { return rho } }
func ConstantDensity3D(rho float64) DensityFunc3D { return func(x, y, z int) float64 { return rho } }

// SetToCoordinate2D fills a scalar array (one value per cell of box)
// with the cell's own coordinate along axis (dataFieldInitializer2D.h,
// "setToCoordinate"), writing into out indexed the same way box is
// walked (row-major over Y within X, matching BlockLattice2D's own row-
// pointer walk).
func SetToCoordinate2D(box geom.Box2D, axis int, out []float64) {
	i := 0
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			if axis == 0 {
				out[i] = float64(x)
			} else {
				out[i] = float64(y)
			}
			i++
		}
	}
}

// SetToCoordinates2D is the vector-valued analogue of SetToCoordinate2D
// (dataFieldInitializer2D.h, "setToCoordinates"): out[i] is the full
// (x,y) position of the i-th cell of box, in the same row-major walk.
func SetToCoordinates2D(box geom.Box2D, out [][2]float64) {
	i := 0
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			out[i] = [2]float64{float64(x), float64(y)}
			i++
		}
	}
}

// SetToFunction2D applies fn(x,y) to every cell in box via write, the
// generic form the other SetTo* helpers specialize (dataFieldInitializer2D.h,
// "setToFunction").
func SetToFunction2D(lat *block.BlockLattice2D, box geom.Box2D, fn func(x, y int, c *cell.Cell)) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			fn(x, y, lat.Get(x, y))
		}
	}
}

// SetToFunction3D is the 3D analogue of SetToFunction2D.
func SetToFunction3D(lat *block.BlockLattice3D, box geom.Box3D, fn func(x, y, z int, c *cell.Cell)) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			for z := box.Z0; z <= box.Z1; z++ {
				fn(x, y, z, lat.Get(x, y, z))
			}
		}
	}
}
