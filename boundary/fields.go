package boundary

import "github.com/go-gl/mathgl/mgl32"

// VelocityField2D/3D and DensityField2D/3D are the spatial data a
// boundary instantiator closes over (spec.md C6): Palabos accepts either
// a constant or a per-site functional for velocity/density boundaries;
// these function types play the same role in Go, with ConstantVelocity*/
// ConstantDensity* covering the common constant case.
type VelocityField2D func(x, y int) []float64
type DensityField2D func(x, y int) float64
type VelocityField3D func(x, y, z int) []float64
type DensityField3D func(x, y, z int) float64

func ConstantVelocity2D(u []float64) VelocityField2D {
	return func(x, y int) []float64 { return u }
}

func ConstantDensity2D(rho float64) DensityField2D {
	return func(x, y int) float64 { return rho }
}

func ConstantVelocity3D(u []float64) VelocityField3D {
	return func(x, y, z int) []float64 { return u }
}

func ConstantDensity3D(rho float64) DensityField3D {
	return func(x, y, z int) float64 { return rho }
}

// ConstantVelocityVec2/Vec3 accept the fixed-dimension mgl32 vector type
// for imposed velocities, next to the []float64-based ConstantVelocity2D/3D
// above (a velocity boundary is always 2 or 3 components, unlike a cell's Q-
// length population array, so mgl32.Vec2/Vec3 is the natural wire type
// here even though internal hot arrays stay []float64).
func ConstantVelocityVec2(v mgl32.Vec2) VelocityField2D {
	u := []float64{float64(v[0]), float64(v[1])}
	return func(x, y int) []float64 { return u }
}

func ConstantVelocityVec3(v mgl32.Vec3) VelocityField3D {
	u := []float64{float64(v[0]), float64(v[1]), float64(v[2])}
	return func(x, y, z int) []float64 { return u }
}
