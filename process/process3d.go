package process

import (
	"github.com/google/uuid"

	"github.com/palabos-go/lbm/geom"
)

// Generator3D is the 3D analogue of Generator2D.
type Generator3D interface {
	Shift(dx, dy, dz int)
	Multiply(scale int)
	Divide(scale int)
	Extract(sub geom.Box3D) bool
	Domain() geom.Box3D
	AppliesTo() AppliesTo
	ModificationPattern() []bool
}

type Boxed3D struct {
	ID       uuid.UUID
	Box      geom.Box3D
	Envelope bool
}

func NewBoxed3D(box geom.Box3D) *Boxed3D { return &Boxed3D{ID: uuid.New(), Box: box} }

func (b *Boxed3D) Shift(dx, dy, dz int) { b.Box = b.Box.Shift(dx, dy, dz) }
func (b *Boxed3D) Multiply(scale int) {
	b.Box = geom.Box3D{
		b.Box.X0 * scale, b.Box.X1 * scale,
		b.Box.Y0 * scale, b.Box.Y1 * scale,
		b.Box.Z0 * scale, b.Box.Z1 * scale,
	}
}
func (b *Boxed3D) Divide(scale int) {
	b.Box = geom.Box3D{
		b.Box.X0 / scale, b.Box.X1 / scale,
		b.Box.Y0 / scale, b.Box.Y1 / scale,
		b.Box.Z0 / scale, b.Box.Z1 / scale,
	}
}
func (b *Boxed3D) Extract(sub geom.Box3D) bool {
	r, ok := b.Box.Intersect(sub)
	if ok {
		b.Box = r
	}
	return ok
}
func (b *Boxed3D) Domain() geom.Box3D { return b.Box }
func (b *Boxed3D) AppliesTo() AppliesTo {
	if b.Envelope {
		return BulkAndEnvelope
	}
	return Bulk
}
func (b *Boxed3D) ModificationPattern() []bool { return []bool{true} }

type Dotted3D struct {
	ID       uuid.UUID
	Dots     geom.DotList
	Envelope bool
}

func NewDotted3D(dots geom.DotList) *Dotted3D { return &Dotted3D{ID: uuid.New(), Dots: dots} }

func (d *Dotted3D) Shift(dx, dy, dz int) { d.Dots = d.Dots.Shift(dx, dy, dz) }
func (d *Dotted3D) Multiply(scale int) {
	for i := range d.Dots.X {
		d.Dots.X[i] *= scale
		d.Dots.Y[i] *= scale
		d.Dots.Z[i] *= scale
	}
}
func (d *Dotted3D) Divide(scale int) {
	for i := range d.Dots.X {
		d.Dots.X[i] /= scale
		d.Dots.Y[i] /= scale
		d.Dots.Z[i] /= scale
	}
}
func (d *Dotted3D) Extract(sub geom.Box3D) bool {
	var x, y, z []int
	for i := range d.Dots.X {
		if sub.Contains(d.Dots.X[i], d.Dots.Y[i], d.Dots.Z[i]) {
			x = append(x, d.Dots.X[i])
			y = append(y, d.Dots.Y[i])
			z = append(z, d.Dots.Z[i])
		}
	}
	d.Dots = geom.DotList{X: x, Y: y, Z: z}
	return len(x) > 0
}
func (d *Dotted3D) Domain() geom.Box3D {
	if len(d.Dots.X) == 0 {
		return geom.Box3D{}
	}
	b := geom.Box3D{d.Dots.X[0], d.Dots.X[0], d.Dots.Y[0], d.Dots.Y[0], d.Dots.Z[0], d.Dots.Z[0]}
	for i := range d.Dots.X {
		if d.Dots.X[i] < b.X0 {
			b.X0 = d.Dots.X[i]
		}
		if d.Dots.X[i] > b.X1 {
			b.X1 = d.Dots.X[i]
		}
		if d.Dots.Y[i] < b.Y0 {
			b.Y0 = d.Dots.Y[i]
		}
		if d.Dots.Y[i] > b.Y1 {
			b.Y1 = d.Dots.Y[i]
		}
		if d.Dots.Z[i] < b.Z0 {
			b.Z0 = d.Dots.Z[i]
		}
		if d.Dots.Z[i] > b.Z1 {
			b.Z1 = d.Dots.Z[i]
		}
	}
	return b
}
func (d *Dotted3D) AppliesTo() AppliesTo {
	if d.Envelope {
		return BulkAndEnvelope
	}
	return Bulk
}
func (d *Dotted3D) ModificationPattern() []bool { return []bool{true} }
