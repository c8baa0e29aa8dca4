// Package process implements the DataProcessor/Generator family (spec.md
// C5): a decoupling between "what region to run on" (Generator) and "what
// operation to run" (Processor), mirroring the source's
// DataProcessorGenerator2D/3D and BoxedDataProcessorGenerator/
// DottedDataProcessorGenerator split, minus the virtual clone()/generate()
// machinery Go's interfaces make unnecessary.
package process

import (
	"github.com/google/uuid"

	"github.com/palabos-go/lbm/geom"
)

// AppliesTo reports whether a generator's region extends into a block's
// communication envelope (spec.md §4.5, "appliesTo... Defaults to
// bulk-only").
type AppliesTo int

const (
	Bulk AppliesTo = iota
	BulkAndEnvelope
)

// Generator2D describes where and how a Processor2D region transforms as
// a block is resized or partitioned (spec.md C5, "DataProcessorGenerator
// shift/multiply/divide/extract"), without the source's separate
// "generate the processor" step — in Go the generator carries its own
// Box and modification pattern directly.
type Generator2D interface {
	Shift(dx, dy int)
	Multiply(scale int)
	Divide(scale int)
	Extract(sub geom.Box2D) bool
	Domain() geom.Box2D
	AppliesTo() AppliesTo
	// ModificationPattern reports which of the generator's referenced
	// blocks are written when applied (spec.md C5,
	// "getModificationPattern"); for a single-lattice generator this is
	// simply [true].
	ModificationPattern() []bool
}

// Boxed2D is a Generator2D whose region is a contiguous Box2D (spec.md
// C5, "Boxed generator shape").
type Boxed2D struct {
	ID       uuid.UUID
	Box      geom.Box2D
	Envelope bool
}

func NewBoxed2D(box geom.Box2D) *Boxed2D { return &Boxed2D{ID: uuid.New(), Box: box} }

func (b *Boxed2D) Shift(dx, dy int) { b.Box = b.Box.Shift(dx, dy) }
func (b *Boxed2D) Multiply(scale int) {
	b.Box = geom.Box2D{b.Box.X0 * scale, b.Box.X1 * scale, b.Box.Y0 * scale, b.Box.Y1 * scale}
}
func (b *Boxed2D) Divide(scale int) {
	b.Box = geom.Box2D{b.Box.X0 / scale, b.Box.X1 / scale, b.Box.Y0 / scale, b.Box.Y1 / scale}
}
func (b *Boxed2D) Extract(sub geom.Box2D) bool {
	r, ok := b.Box.Intersect(sub)
	if ok {
		b.Box = r
	}
	return ok
}
func (b *Boxed2D) Domain() geom.Box2D { return b.Box }
func (b *Boxed2D) AppliesTo() AppliesTo {
	if b.Envelope {
		return BulkAndEnvelope
	}
	return Bulk
}
func (b *Boxed2D) ModificationPattern() []bool { return []bool{true} }

// Dotted2D is a Generator2D whose region is a scattered DotList (spec.md
// C5, "Dotted generator shape"). Shift/Multiply/Divide apply uniformly
// to every point; Extract keeps only points inside sub.
type Dotted2D struct {
	ID       uuid.UUID
	Dots     geom.DotList
	Envelope bool
}

func NewDotted2D(dots geom.DotList) *Dotted2D { return &Dotted2D{ID: uuid.New(), Dots: dots} }

func (d *Dotted2D) Shift(dx, dy int) { d.Dots = d.Dots.Shift(dx, dy, 0) }
func (d *Dotted2D) Multiply(scale int) {
	for i := range d.Dots.X {
		d.Dots.X[i] *= scale
		d.Dots.Y[i] *= scale
	}
}
func (d *Dotted2D) Divide(scale int) {
	for i := range d.Dots.X {
		d.Dots.X[i] /= scale
		d.Dots.Y[i] /= scale
	}
}
func (d *Dotted2D) Extract(sub geom.Box2D) bool {
	var x, y []int
	for i := range d.Dots.X {
		if sub.Contains(d.Dots.X[i], d.Dots.Y[i]) {
			x = append(x, d.Dots.X[i])
			y = append(y, d.Dots.Y[i])
		}
	}
	d.Dots = geom.DotList{X: x, Y: y}
	return len(x) > 0
}
func (d *Dotted2D) Domain() geom.Box2D {
	if len(d.Dots.X) == 0 {
		return geom.Box2D{}
	}
	b := geom.Box2D{d.Dots.X[0], d.Dots.X[0], d.Dots.Y[0], d.Dots.Y[0]}
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
	}
	return b
}
func (d *Dotted2D) AppliesTo() AppliesTo {
	if d.Envelope {
		return BulkAndEnvelope
	}
	return Bulk
}
func (d *Dotted2D) ModificationPattern() []bool { return []bool{true} }
