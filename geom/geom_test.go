package geom

import "testing"

func TestBox2DIntersect(t *testing.T) {
	a := Box2D{0, 10, 0, 10}
	b := Box2D{5, 15, -5, 5}
	r, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected non-empty intersection")
	}
	want := Box2D{5, 10, 0, 5}
	if r != want {
		t.Fatalf("got %+v, want %+v", r, want)
	}
}

func TestBox2DIntersectEmpty(t *testing.T) {
	a := Box2D{0, 5, 0, 5}
	b := Box2D{10, 15, 10, 15}
	if _, ok := a.Intersect(b); ok {
		t.Fatal("expected empty intersection")
	}
}

func TestSurface2DCoversBoundaryExactlyOnce(t *testing.T) {
	box := Box2D{0, 9, 0, 9}
	faces, corners := Surface2D(box, 1)
	covered := map[[2]int]int{}
	for _, f := range faces {
		for x := f.Box.X0; x <= f.Box.X1; x++ {
			for y := f.Box.Y0; y <= f.Box.Y1; y++ {
				covered[[2]int{x, y}]++
			}
		}
	}
	for _, c := range corners {
		for x := c.Box.X0; x <= c.Box.X1; x++ {
			for y := c.Box.Y0; y <= c.Box.Y1; y++ {
				covered[[2]int{x, y}]++
			}
		}
	}
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			onBoundary := x == box.X0 || x == box.X1 || y == box.Y0 || y == box.Y1
			if !onBoundary {
				continue
			}
			if covered[[2]int{x, y}] != 1 {
				t.Fatalf("cell (%d,%d) covered %d times, want exactly 1", x, y, covered[[2]int{x, y}])
			}
		}
	}
}

func TestSurface3DCounts(t *testing.T) {
	box := Box3D{0, 9, 0, 9, 0, 9}
	faces, edges, corners := Surface3D(box, 1)
	if len(faces) != 6 {
		t.Fatalf("got %d faces, want 6", len(faces))
	}
	if len(edges) != 12 {
		t.Fatalf("got %d edges, want 12", len(edges))
	}
	if len(corners) != 8 {
		t.Fatalf("got %d corners, want 8", len(corners))
	}
}

func TestDotListShift(t *testing.T) {
	d := DotList{X: []int{1, 2}, Y: []int{3, 4}}
	s := d.Shift(10, -10, 0)
	if s.X[0] != 11 || s.Y[0] != -7 {
		t.Fatalf("unexpected shift result: %+v", s)
	}
}
