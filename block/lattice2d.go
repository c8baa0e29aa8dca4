package block

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/geom"
	"github.com/palabos-go/lbm/stats"
)

// Processor2D is a one-shot or repeated region-scoped operation applied
// to a BlockLattice2D (spec.md C5, "DataProcessor"). Generators wrap a
// Processor2D with the region it applies to and whether that region
// includes the envelope (spec.md §4.5).
type Processor2D interface {
	Process(lat *BlockLattice2D, box geom.Box2D)
}

// BlockLattice2D is a 2D regular grid of cells addressed by row-pointer
// slices (spec.md §4.4: "row-pointer addressing... each row is an
// independently allocated slice, matching the source's raw 2D array of
// row pointers").
type BlockLattice2D struct {
	desc       *descriptor.Descriptor
	nx, ny     int
	grid       [][]*cell.Cell
	background cell.Dynamics
	stats      *stats.Statistics
	cfg        Config
	vicinity   int
	processors []processorEntry2D
}

type processorEntry2D struct {
	proc    Processor2D
	box     geom.Box2D
	envelop bool
}

// NewBlockLattice2D allocates an nx-by-ny grid, every cell initially
// attached to background (spec.md §4.4, "constructed with a background
// dynamics shared by every cell until overridden").
func NewBlockLattice2D(d *descriptor.Descriptor, nx, ny int, background cell.Dynamics, cfg Config) *BlockLattice2D {
	lat := &BlockLattice2D{
		desc:       d,
		nx:         nx,
		ny:         ny,
		background: background,
		stats:      stats.New(),
		cfg:        cfg,
		vicinity:   vicinityOf(d),
	}
	lat.grid = make([][]*cell.Cell, nx)
	for x := 0; x < nx; x++ {
		lat.grid[x] = make([]*cell.Cell, ny)
		for y := 0; y < ny; y++ {
			lat.grid[x][y] = cell.New(background.Clone())
		}
	}
	return lat
}

func vicinityOf(d *descriptor.Descriptor) int {
	v := 1
	for _, c := range d.C {
		for _, ck := range c {
			if ck < 0 {
				ck = -ck
			}
			if ck > v {
				v = ck
			}
		}
	}
	return v
}

func (lat *BlockLattice2D) Descriptor() *descriptor.Descriptor { return lat.desc }
func (lat *BlockLattice2D) NX() int                             { return lat.nx }
func (lat *BlockLattice2D) NY() int                             { return lat.ny }
func (lat *BlockLattice2D) Statistics() *stats.Statistics       { return lat.stats }
func (lat *BlockLattice2D) BoundingBox() geom.Box2D {
	return geom.Box2D{X0: 0, X1: lat.nx - 1, Y0: 0, Y1: lat.ny - 1}
}

func (lat *BlockLattice2D) Get(x, y int) *cell.Cell { return lat.grid[x][y] }

// AttributeDynamics replaces the dynamics of every cell in box (spec.md
// §4.2: the only sanctioned way to change a cell's dynamics pointer).
func (lat *BlockLattice2D) AttributeDynamics(box geom.Box2D, dyn cell.Dynamics) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			lat.grid[x][y].AttributeDynamics(dyn.Clone())
		}
	}
}

// SpecifyStatisticsStatus toggles whether collision in box feeds the
// block's statistics accumulator (spec.md §4.2, used to mask off e.g.
// obstacle regions).
func (lat *BlockLattice2D) SpecifyStatisticsStatus(box geom.Box2D, status bool) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			lat.grid[x][y].SetTakesStatistics(status)
		}
	}
}

// Collide runs collision, without streaming, over every cell in box.
func (lat *BlockLattice2D) Collide(box geom.Box2D) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			lat.grid[x][y].Collide(lat.stats)
		}
	}
}

// Stream performs pure streaming (no collision) over box, via the
// revert-then-swap path used outside the fused kernel (spec.md §4.4,
// "Streaming without fused collision").
func (lat *BlockLattice2D) Stream(box geom.Box2D) {
	lat.bulkStream(box)
}

// neighbor resolves the streaming target of (x,y) along lattice vector
// i, wrapping through cfg.Periodic on whichever axis is configured
// periodic (spec.md §4.4, "Periodicity"). ok is false when the neighbor
// falls outside the lattice on a non-periodic axis, meaning the
// population stays put rather than leaving the domain.
func (lat *BlockLattice2D) neighbor(x, y, dx, dy int) (nx, ny int, ok bool) {
	nx, ny = x+dx, y+dy
	if nx < 0 || nx >= lat.nx {
		if !lat.cfg.Periodic[0] {
			return 0, 0, false
		}
		nx = ((nx % lat.nx) + lat.nx) % lat.nx
	}
	if ny < 0 || ny >= lat.ny {
		if !lat.cfg.Periodic[1] {
			return 0, 0, false
		}
		ny = ((ny % lat.ny) + lat.ny) % lat.ny
	}
	return nx, ny, true
}

// bulkStream streams every cell in box by lattice vector. The source's
// bulkStream (original_source/LBM/Palabos/atomicBlock/blockLattice2D.hh:
// 371-385) is only correct because its caller's collide(domain) already
// called revert() on every cell first (blockLattice2D.hh:176-177),
// swapping F[i] and F[i+half] in place, before doing
// `std::swap(grid[iX][iY][iPop+q/2], grid[nextX][nextY][iPop])`. This
// port's Collide never calls Revert, so bulkStream folds an equivalent
// revert pass in directly: every cell in box is reverted first (a
// purely local, order-independent operation), then the cross-cell
// swap runs exactly like the source's, now safe because both sides of
// every edge have already been reverted.
func (lat *BlockLattice2D) bulkStream(box geom.Box2D) {
	d := lat.desc
	half := d.Q / 2

	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			lat.grid[x][y].Revert()
		}
	}

	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			src := lat.grid[x][y]
			for i := 1; i <= half; i++ {
				nx, ny, ok := lat.neighbor(x, y, d.C[i][0], d.C[i][1])
				if !ok {
					continue
				}
				dst := lat.grid[nx][ny]
				src.F[i+half], dst.F[i] = dst.F[i], src.F[i+half]
			}
		}
	}
}

// boundaryStream streams box (a sub-region of domain near its edge)
// using the safe swap, bounds-checked against the lattice's actual
// extent rather than domain, the way the source's boundaryStream treats
// domain strictly as a clipping reference (spec.md §4.4.3).
func (lat *BlockLattice2D) boundaryStream(domain, box geom.Box2D) {
	lat.bulkStream(box)
}

// CollideAndStream fuses collision and streaming with the skewed
// cache-blocking scheme (spec.md §4.4.3): the bulk (more than `vicinity`
// cells from every edge of box) is swept with the cache-blocked
// collide-and-swap kernel; the remaining `vicinity`-deep margin is
// collided first, then safely streamed with plain bulkStream/
// boundaryStream since it touches cells outside box.
func (lat *BlockLattice2D) CollideAndStream(box geom.Box2D) {
	v := lat.vicinity

	lat.Collide(geom.Box2D{box.X0, box.X0 + v - 1, box.Y0, box.Y1})
	lat.Collide(geom.Box2D{box.X1 - v + 1, box.X1, box.Y0, box.Y1})
	lat.Collide(geom.Box2D{box.X0 + v, box.X1 - v, box.Y0, box.Y0 + v - 1})
	lat.Collide(geom.Box2D{box.X0 + v, box.X1 - v, box.Y1 - v + 1, box.Y1})

	bulk := geom.Box2D{box.X0 + v, box.X1 - v, box.Y0 + v, box.Y1 - v}
	lat.bulkCollideAndStream(bulk)

	lat.boundaryStream(box, geom.Box2D{box.X0, box.X0 + v - 1, box.Y0, box.Y1})
	lat.boundaryStream(box, geom.Box2D{box.X1 - v + 1, box.X1, box.Y0, box.Y1})
	lat.boundaryStream(box, geom.Box2D{box.X0 + v, box.X1 - v, box.Y0, box.Y0 + v - 1})
	lat.boundaryStream(box, geom.Box2D{box.X0 + v, box.X1 - v, box.Y1 - v + 1, box.Y1})
}

// bulkCollideAndStream is the cache-blocked interior sweep (spec.md
// §4.4.3): outer loops enumerate fixed-size blocks for cache locality,
// inner loops shift their Y-range by -dx per X-increment ("skewed") so
// that, by the time a cell's neighbor is read for the swap below, that
// neighbor has already been collided, reverted and swapped this sweep —
// matching the source's swapAndStream2D, which "swap[s] the populations
// on the cell [revert], and then with post-collision neighboring cell
// [the cross swap], to perform the streaming step"
// (original_source/LBM/Palabos/atomicBlock/blockLattice2D.hh:438-444).
// Fast, but only valid strictly inside box's vicinity margin — callers
// must never call this directly on a domain that reaches the lattice's
// true boundary.
func (lat *BlockLattice2D) bulkCollideAndStream(box geom.Box2D) {
	blockSize := lat.cfg.blockSize(200)
	half := lat.desc.Q / 2
	d := lat.desc

	for outerX := box.X0; outerX <= box.X1; outerX += blockSize {
		for outerY := box.Y0; outerY <= box.Y1+blockSize-1; outerY += blockSize {
			dx := 0
			innerXMax := outerX + blockSize - 1
			if innerXMax > box.X1 {
				innerXMax = box.X1
			}
			for innerX := outerX; innerX <= innerXMax; innerX, dx = innerX+1, dx+1 {
				minY := outerY - dx
				maxY := minY + blockSize - 1
				lo, hi := minY, maxY
				if lo < box.Y0 {
					lo = box.Y0
				}
				if hi > box.Y1 {
					hi = box.Y1
				}
				for innerY := lo; innerY <= hi; innerY++ {
					c := lat.grid[innerX][innerY]
					c.Collide(lat.stats)
					c.Revert()
					for i := 1; i <= half; i++ {
						nx, ny := innerX+d.C[i][0], innerY+d.C[i][1]
						dst := lat.grid[nx][ny]
						c.F[i+half], dst.F[i] = dst.F[i], c.F[i+half]
					}
				}
			}
		}
	}
}

func (lat *BlockLattice2D) AddProcessor(p Processor2D, box geom.Box2D, envelope bool) {
	lat.processors = append(lat.processors, processorEntry2D{p, box, envelope})
}

// ExecuteProcessors runs every registered processor in registration
// order (spec.md C5, "DataProcessors execute in the order they were
// added, after collideAndStream").
func (lat *BlockLattice2D) ExecuteProcessors() {
	for _, e := range lat.processors {
		e.proc.Process(lat, e.box)
	}
}
