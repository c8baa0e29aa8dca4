package block

import (
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/geom"
	"github.com/palabos-go/lbm/stats"
)

type Processor3D interface {
	Process(lat *BlockLattice3D, box geom.Box3D)
}

// BlockLattice3D is the 3D analogue of BlockLattice2D (spec.md §4.4),
// addressed by row-pointer slices one level deeper (X -> Y -> Z).
type BlockLattice3D struct {
	desc           *descriptor.Descriptor
	nx, ny, nz     int
	grid           [][][]*cell.Cell
	background     cell.Dynamics
	stats          *stats.Statistics
	cfg            Config
	vicinity       int
	processors     []processorEntry3D
}

type processorEntry3D struct {
	proc    Processor3D
	box     geom.Box3D
	envelop bool
}

func NewBlockLattice3D(d *descriptor.Descriptor, nx, ny, nz int, background cell.Dynamics, cfg Config) *BlockLattice3D {
	lat := &BlockLattice3D{
		desc:       d,
		nx:         nx,
		ny:         ny,
		nz:         nz,
		background: background,
		stats:      stats.New(),
		cfg:        cfg,
		vicinity:   vicinityOf(d),
	}
	lat.grid = make([][][]*cell.Cell, nx)
	for x := 0; x < nx; x++ {
		lat.grid[x] = make([][]*cell.Cell, ny)
		for y := 0; y < ny; y++ {
			lat.grid[x][y] = make([]*cell.Cell, nz)
			for z := 0; z < nz; z++ {
				lat.grid[x][y][z] = cell.New(background.Clone())
			}
		}
	}
	return lat
}

func (lat *BlockLattice3D) Descriptor() *descriptor.Descriptor { return lat.desc }
func (lat *BlockLattice3D) NX() int                             { return lat.nx }
func (lat *BlockLattice3D) NY() int                             { return lat.ny }
func (lat *BlockLattice3D) NZ() int                             { return lat.nz }
func (lat *BlockLattice3D) Statistics() *stats.Statistics       { return lat.stats }
func (lat *BlockLattice3D) BoundingBox() geom.Box3D {
	return geom.Box3D{X0: 0, X1: lat.nx - 1, Y0: 0, Y1: lat.ny - 1, Z0: 0, Z1: lat.nz - 1}
}

func (lat *BlockLattice3D) Get(x, y, z int) *cell.Cell { return lat.grid[x][y][z] }

func (lat *BlockLattice3D) AttributeDynamics(box geom.Box3D, dyn cell.Dynamics) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			for z := box.Z0; z <= box.Z1; z++ {
				lat.grid[x][y][z].AttributeDynamics(dyn.Clone())
			}
		}
	}
}

func (lat *BlockLattice3D) SpecifyStatisticsStatus(box geom.Box3D, status bool) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			for z := box.Z0; z <= box.Z1; z++ {
				lat.grid[x][y][z].SetTakesStatistics(status)
			}
		}
	}
}

func (lat *BlockLattice3D) Collide(box geom.Box3D) {
	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			for z := box.Z0; z <= box.Z1; z++ {
				lat.grid[x][y][z].Collide(lat.stats)
			}
		}
	}
}

// neighbor is the 3D analogue of BlockLattice2D.neighbor.
func (lat *BlockLattice3D) neighbor(x, y, z, dx, dy, dz int) (nx, ny, nz int, ok bool) {
	nx, ny, nz = x+dx, y+dy, z+dz
	if nx < 0 || nx >= lat.nx {
		if !lat.cfg.Periodic[0] {
			return 0, 0, 0, false
		}
		nx = ((nx % lat.nx) + lat.nx) % lat.nx
	}
	if ny < 0 || ny >= lat.ny {
		if !lat.cfg.Periodic[1] {
			return 0, 0, 0, false
		}
		ny = ((ny % lat.ny) + lat.ny) % lat.ny
	}
	if nz < 0 || nz >= lat.nz {
		if !lat.cfg.Periodic[2] {
			return 0, 0, 0, false
		}
		nz = ((nz % lat.nz) + lat.nz) % lat.nz
	}
	return nx, ny, nz, true
}

// bulkStream is the 3D analogue of BlockLattice2D.bulkStream: every
// cell in box is reverted first (self-contained, since this port's
// Collide never calls Revert, unlike the source's collide(domain),
// which does so at blockLattice2D.hh:176-177), then the cross-cell
// swap runs, matching
// `std::swap(grid[iX][iY][iPop+q/2], grid[nextX][nextY][iPop])`
// (original_source/LBM/Palabos/atomicBlock/blockLattice2D.hh:380-381,
// the same swap orientation the 3D source mirrors).
func (lat *BlockLattice3D) bulkStream(box geom.Box3D) {
	d := lat.desc
	half := d.Q / 2

	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			for z := box.Z0; z <= box.Z1; z++ {
				lat.grid[x][y][z].Revert()
			}
		}
	}

	for x := box.X0; x <= box.X1; x++ {
		for y := box.Y0; y <= box.Y1; y++ {
			for z := box.Z0; z <= box.Z1; z++ {
				src := lat.grid[x][y][z]
				for i := 1; i <= half; i++ {
					nx, ny, nz, ok := lat.neighbor(x, y, z, d.C[i][0], d.C[i][1], d.C[i][2])
					if !ok {
						continue
					}
					dst := lat.grid[nx][ny][nz]
					src.F[i+half], dst.F[i] = dst.F[i], src.F[i+half]
				}
			}
		}
	}
}

func (lat *BlockLattice3D) boundaryStream(domain, box geom.Box3D) {
	lat.bulkStream(box)
}

// Stream performs pure collision-free streaming over domain (spec.md
// §4.4). Like BlockLattice2D.Stream it is one bulkStream pass over the
// whole domain: every cell is reverted before any cross-cell swap, and
// periodic wraparound goes through neighbor. It does not split domain
// into bulk and envelope boxes, so no face uses the source's
// `x1-vicinity-1` box.
func (lat *BlockLattice3D) Stream(domain geom.Box3D) {
	lat.bulkStream(domain)
}

// CollideAndStream is the fused kernel (spec.md §4.4.3), with the same
// envelope box formula on every face.
func (lat *BlockLattice3D) CollideAndStream(domain geom.Box3D) {
	v := lat.vicinity

	lat.Collide(geom.Box3D{domain.X0, domain.X0 + v - 1, domain.Y0, domain.Y1, domain.Z0, domain.Z1})
	lat.Collide(geom.Box3D{domain.X1 - v + 1, domain.X1, domain.Y0, domain.Y1, domain.Z0, domain.Z1})
	lat.Collide(geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y0, domain.Y0 + v - 1, domain.Z0, domain.Z1})
	lat.Collide(geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y1 - v + 1, domain.Y1, domain.Z0, domain.Z1})
	lat.Collide(geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y0 + v, domain.Y1 - v, domain.Z0, domain.Z0 + v - 1})
	lat.Collide(geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y0 + v, domain.Y1 - v, domain.Z1 - v + 1, domain.Z1})

	bulk := geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y0 + v, domain.Y1 - v, domain.Z0 + v, domain.Z1 - v}
	lat.bulkCollideAndStream(bulk)

	lat.boundaryStream(domain, geom.Box3D{domain.X0, domain.X0 + v - 1, domain.Y0, domain.Y1, domain.Z0, domain.Z1})
	lat.boundaryStream(domain, geom.Box3D{domain.X1 - v + 1, domain.X1, domain.Y0, domain.Y1, domain.Z0, domain.Z1})
	lat.boundaryStream(domain, geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y0, domain.Y0 + v - 1, domain.Z0, domain.Z1})
	lat.boundaryStream(domain, geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y1 - v + 1, domain.Y1, domain.Z0, domain.Z1})
	lat.boundaryStream(domain, geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y0 + v, domain.Y1 - v, domain.Z0, domain.Z0 + v - 1})
	lat.boundaryStream(domain, geom.Box3D{domain.X0 + v, domain.X1 - v, domain.Y0 + v, domain.Y1 - v, domain.Z1 - v + 1, domain.Z1})
}

// bulkCollideAndStream is the 3D cache-blocked sweep, blocked over X and
// Y the way the source blocks its two outer loops, skewing Y (as 2D
// does) while sweeping Z linearly inside. Each cell is collided,
// reverted, then cross-swapped with its already-processed neighbor,
// mirroring swapAndStream2D's "swap the populations on the cell, and
// then with post-collision neighboring cell, to perform the streaming
// step" (original_source/LBM/Palabos/atomicBlock/blockLattice2D.hh:
// 438-444), the same pattern blockLattice3D.hh:485 calls swapAndStream3D
// for.
func (lat *BlockLattice3D) bulkCollideAndStream(box geom.Box3D) {
	blockSize := lat.cfg.blockSize(30)
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
					for innerZ := box.Z0; innerZ <= box.Z1; innerZ++ {
						c := lat.grid[innerX][innerY][innerZ]
						c.Collide(lat.stats)
						c.Revert()
						for i := 1; i <= half; i++ {
							nx, ny, nz := innerX+d.C[i][0], innerY+d.C[i][1], innerZ+d.C[i][2]
							dst := lat.grid[nx][ny][nz]
							c.F[i+half], dst.F[i] = dst.F[i], c.F[i+half]
						}
					}
				}
			}
		}
	}
}

func (lat *BlockLattice3D) AddProcessor(p Processor3D, box geom.Box3D, envelope bool) {
	lat.processors = append(lat.processors, processorEntry3D{p, box, envelope})
}

func (lat *BlockLattice3D) ExecuteProcessors() {
	for _, e := range lat.processors {
		e.proc.Process(lat, e.box)
	}
}
