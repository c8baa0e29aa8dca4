// Package geom implements the closed-interval bounding-box types and the
// face/edge/corner surface enumerator used to carve a block's boundary
// into orientation-tagged regions (spec.md C9).
package geom

// Box2D is a closed (inclusive) axis-aligned rectangle, X0<=X1, Y0<=Y1.
type Box2D struct {
	X0, X1, Y0, Y1 int
}

func (b Box2D) NX() int { return b.X1 - b.X0 + 1 }
func (b Box2D) NY() int { return b.Y1 - b.Y0 + 1 }

func (b Box2D) Shift(dx, dy int) Box2D {
	return Box2D{b.X0 + dx, b.X1 + dx, b.Y0 + dy, b.Y1 + dy}
}

// Intersect returns the overlap of b and o and whether it is non-empty.
func (b Box2D) Intersect(o Box2D) (Box2D, bool) {
	r := Box2D{max(b.X0, o.X0), min(b.X1, o.X1), max(b.Y0, o.Y0), min(b.Y1, o.Y1)}
	return r, r.X0 <= r.X1 && r.Y0 <= r.Y1
}

func (b Box2D) Contains(x, y int) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Box3D is the 3D analogue of Box2D.
type Box3D struct {
	X0, X1, Y0, Y1, Z0, Z1 int
}

func (b Box3D) NX() int { return b.X1 - b.X0 + 1 }
func (b Box3D) NY() int { return b.Y1 - b.Y0 + 1 }
func (b Box3D) NZ() int { return b.Z1 - b.Z0 + 1 }

func (b Box3D) Shift(dx, dy, dz int) Box3D {
	return Box3D{b.X0 + dx, b.X1 + dx, b.Y0 + dy, b.Y1 + dy, b.Z0 + dz, b.Z1 + dz}
}

func (b Box3D) Intersect(o Box3D) (Box3D, bool) {
	r := Box3D{
		max(b.X0, o.X0), min(b.X1, o.X1),
		max(b.Y0, o.Y0), min(b.Y1, o.Y1),
		max(b.Z0, o.Z0), min(b.Z1, o.Z1),
	}
	return r, r.X0 <= r.X1 && r.Y0 <= r.Y1 && r.Z0 <= r.Z1
}

func (b Box3D) Contains(x, y, z int) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1 && z >= b.Z0 && z <= b.Z1
}

// DotList is a sparse point selection (spec.md C9, "DotList"), used by
// Dotted data processor generators that act on a scattered set of cells
// rather than a contiguous box.
type DotList struct {
	X, Y, Z []int // Z is empty for a 2D dot list
}

func (d DotList) Len() int { return len(d.X) }

func (d DotList) Shift(dx, dy, dz int) DotList {
	out := DotList{X: make([]int, len(d.X)), Y: make([]int, len(d.Y))}
	for i := range d.X {
		out.X[i] = d.X[i] + dx
		out.Y[i] = d.Y[i] + dy
	}
	if len(d.Z) > 0 {
		out.Z = make([]int, len(d.Z))
		for i := range d.Z {
			out.Z[i] = d.Z[i] + dz
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
