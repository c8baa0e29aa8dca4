package geom

// Face2D, Edge3D etc. name a flat (d-1)-dimensional region of a box's
// boundary, tagged by axis and direction the way Palabos' boundary
// instantiator does (addVelocityBoundary0N/0P/1N/1P, ... spec.md C9):
// Axis is 0 (X) or 1 (Y) [or 2 (Z) in 3D]; Dir is -1 (N, the box's
// lower face on that axis) or +1 (P, the upper face).

type Face2D struct {
	Box  Box2D
	Axis int
	Dir  int
}

// Corner2D tags one of the 4 corners of a 2D box by the sign of its X
// and Y position relative to the box (DX/DY in {-1,+1}).
type Corner2D struct {
	Box    Box2D
	DX, DY int
}

// Surface2D enumerates the 4 edges and 4 corners of box's boundary, each
// `width` cells deep (spec.md C9, "4 edges + 4 corners in 2D"). The edges
// exclude the corner regions so every cell on the boundary is covered
// exactly once.
func Surface2D(box Box2D, width int) (faces []Face2D, corners []Corner2D) {
	x0, x1, y0, y1 := box.X0, box.X1, box.Y0, box.Y1
	faces = []Face2D{
		{Box2D{x0, x0 + width - 1, y0 + width, y1 - width}, 0, -1},
		{Box2D{x1 - width + 1, x1, y0 + width, y1 - width}, 0, 1},
		{Box2D{x0 + width, x1 - width, y0, y0 + width - 1}, 1, -1},
		{Box2D{x0 + width, x1 - width, y1 - width + 1, y1}, 1, 1},
	}
	corners = []Corner2D{
		{Box2D{x0, x0 + width - 1, y0, y0 + width - 1}, -1, -1},
		{Box2D{x0, x0 + width - 1, y1 - width + 1, y1}, -1, 1},
		{Box2D{x1 - width + 1, x1, y0, y0 + width - 1}, 1, -1},
		{Box2D{x1 - width + 1, x1, y1 - width + 1, y1}, 1, 1},
	}
	return
}

type Face3D struct {
	Box  Box3D
	Axis int
	Dir  int
}

// Edge3D tags one of the 12 edges of a 3D box: FreeAxis is the axis the
// edge runs along (the only one not pinned to a face), and Dir1/Dir2 are
// the signs along the other two axes in ascending axis order.
type Edge3D struct {
	Box      Box3D
	FreeAxis int
	Dir1     int
	Dir2     int
}

type Corner3D struct {
	Box             Box3D
	DX, DY, DZ int
}

// Surface3D enumerates the 6 faces, 12 edges and 8 corners of box's
// boundary shell, `width` cells deep (spec.md C9, "6 faces + 12 edges + 8
// corners in 3D"), mirroring Palabos' addVelocityBoundary<axis><N|P> /
// addExternalVelocityEdge<axis><dir><dir> / addExternalVelocityCorner<ddd>
// instantiator family.
func Surface3D(box Box3D, width int) (faces []Face3D, edges []Edge3D, corners []Corner3D) {
	x0, x1, y0, y1, z0, z1 := box.X0, box.X1, box.Y0, box.Y1, box.Z0, box.Z1
	in := func(lo, hi int) (int, int) { return lo + width, hi - width }

	yIn0, yIn1 := in(y0, y1)
	zIn0, zIn1 := in(z0, z1)
	xIn0, xIn1 := in(x0, x1)

	faces = []Face3D{
		{Box3D{x0, x0 + width - 1, yIn0, yIn1, zIn0, zIn1}, 0, -1},
		{Box3D{x1 - width + 1, x1, yIn0, yIn1, zIn0, zIn1}, 0, 1},
		{Box3D{xIn0, xIn1, y0, y0 + width - 1, zIn0, zIn1}, 1, -1},
		{Box3D{xIn0, xIn1, y1 - width + 1, y1, zIn0, zIn1}, 1, 1},
		{Box3D{xIn0, xIn1, yIn0, yIn1, z0, z0 + width - 1}, 2, -1},
		{Box3D{xIn0, xIn1, yIn0, yIn1, z1 - width + 1, z1}, 2, 1},
	}

	// Edges parallel to X (free axis 0): pinned on Y and Z.
	for _, dy := range [2]int{-1, 1} {
		yLo, yHi := y0, y0+width-1
		if dy == 1 {
			yLo, yHi = y1-width+1, y1
		}
		for _, dz := range [2]int{-1, 1} {
			zLo, zHi := z0, z0+width-1
			if dz == 1 {
				zLo, zHi = z1-width+1, z1
			}
			edges = append(edges, Edge3D{Box3D{xIn0, xIn1, yLo, yHi, zLo, zHi}, 0, dy, dz})
		}
	}
	// Edges parallel to Y (free axis 1): pinned on X and Z.
	for _, dx := range [2]int{-1, 1} {
		xLo, xHi := x0, x0+width-1
		if dx == 1 {
			xLo, xHi = x1-width+1, x1
		}
		for _, dz := range [2]int{-1, 1} {
			zLo, zHi := z0, z0+width-1
			if dz == 1 {
				zLo, zHi = z1-width+1, z1
			}
			edges = append(edges, Edge3D{Box3D{xLo, xHi, yIn0, yIn1, zLo, zHi}, 1, dx, dz})
		}
	}
	// Edges parallel to Z (free axis 2): pinned on X and Y.
	for _, dx := range [2]int{-1, 1} {
		xLo, xHi := x0, x0+width-1
		if dx == 1 {
			xLo, xHi = x1-width+1, x1
		}
		for _, dy := range [2]int{-1, 1} {
			yLo, yHi := y0, y0+width-1
			if dy == 1 {
				yLo, yHi = y1-width+1, y1
			}
			edges = append(edges, Edge3D{Box3D{xLo, xHi, yLo, yHi, zIn0, zIn1}, 2, dx, dy})
		}
	}

	for _, dx := range [2]int{-1, 1} {
		xLo, xHi := x0, x0+width-1
		if dx == 1 {
			xLo, xHi = x1-width+1, x1
		}
		for _, dy := range [2]int{-1, 1} {
			yLo, yHi := y0, y0+width-1
			if dy == 1 {
				yLo, yHi = y1-width+1, y1
			}
			for _, dz := range [2]int{-1, 1} {
				zLo, zHi := z0, z0+width-1
				if dz == 1 {
					zLo, zHi = z1-width+1, z1
				}
				corners = append(corners, Corner3D{Box3D{xLo, xHi, yLo, yHi, zLo, zHi}, dx, dy, dz})
			}
		}
	}
	return
}
