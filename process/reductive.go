package process

import (
	"github.com/google/uuid"

	"github.com/palabos-go/lbm/geom"
	"github.com/palabos-go/lbm/stats"
)

// Reductive2D wraps a box-scoped reduction over a BlockLattice2D (spec.md
// C5, "ReductiveDataProcessorGenerator": a generator whose processing
// step feeds a Statistics accumulator rather than mutating cells). Run
// does the reduction pass; Evaluate finalises the accumulator so Get
// reflects this pass's result rather than a prior one.
type Reductive2D struct {
	ID    uuid.UUID
	Box   geom.Box2D
	Stats *stats.Statistics
	// Gather is invoked once per cell in Box during Run; implementations
	// call Stats.GatherSum/GatherMax/GatherIntSum themselves so a single
	// Reductive2D can feed more than one slot per pass.
	Gather func(lat LatticeView2D, x, y int, acc *stats.Statistics)
}

// LatticeView2D is the minimal read access a reduction needs, satisfied
// by *block.BlockLattice2D without process importing block (which would
// cycle, since block.Processor2D lives in the consumer and accepts a
// *BlockLattice2D concretely — Reductive2D instead takes the accumulator
// and indices directly and lets the caller supply Gather against its own
// concrete lattice type).
type LatticeView2D interface{}

func NewReductive2D(box geom.Box2D) *Reductive2D {
	return &Reductive2D{ID: uuid.New(), Box: box, Stats: stats.New()}
}

func (r *Reductive2D) Run(lat LatticeView2D) {
	for x := r.Box.X0; x <= r.Box.X1; x++ {
		for y := r.Box.Y0; y <= r.Box.Y1; y++ {
			if r.Gather != nil {
				r.Gather(lat, x, y, r.Stats)
				r.Stats.IncrementCellCount()
			}
		}
	}
	r.Stats.Evaluate()
}

func (r *Reductive2D) Shift(dx, dy int)       { r.Box = r.Box.Shift(dx, dy) }
func (r *Reductive2D) Domain() geom.Box2D     { return r.Box }
func (r *Reductive2D) AppliesTo() AppliesTo   { return Bulk }
func (r *Reductive2D) ModificationPattern() []bool {
	// A reduction writes to no lattice (only to its own accumulator), so
	// it reports no modification (spec.md C5, "getModificationPattern"
	// for ReductiveDataProcessorGenerator: always false).
	return []bool{false}
}
