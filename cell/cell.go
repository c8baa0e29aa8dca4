// Package cell implements the Cell abstraction (spec.md C2): a fixed-size
// population array, a slice of per-cell external scalars, and a
// non-owning reference to a Dynamics. Dynamics itself is defined here,
// not in the dynamics package, because Cell must hold a field of that
// interface type and Go has no forward-declared types across packages:
// the consumer (Cell) owns the minimal interface; the dynamics package
// provides concrete implementations of it.
package cell

import (
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/stats"
)

// Dynamics is the polymorphic collision/moment operator every Cell
// defers to (spec.md §4.3). Bulk dynamics implement every method
// directly; Composite dynamics wrap an inner Dynamics and override a
// subset.
type Dynamics interface {
	Collide(c *Cell, statistics *stats.Statistics)
	Equilibrium(rhoBar float64, j []float64, jSqr float64) []float64
	Regularize(c *Cell)

	ComputeDensity(c *Cell) float64
	ComputeVelocity(c *Cell) []float64
	ComputeRhoBarJ(c *Cell) (rhoBar float64, j []float64)
	ComputeRhoBarJPiNeq(c *Cell) (rhoBar float64, j []float64, piNeq []float64)
	ComputeTemperature(c *Cell) float64
	ComputeHeatFlux(c *Cell) []float64

	GetOmega() float64
	SetOmega(omega float64)
	GetParameter(id int) float64
	SetParameter(id int, value float64)

	// Decompose/Recompose implement the round-trip law of spec.md §8
	// property 7. order is 0 (rho-bar, j) or 1 (rho-bar, j, Pi-neq).
	Decompose(c *Cell, order int) []float64
	Recompose(c *Cell, decomposed []float64, order int)
	Rescale(xDx, dt float64)

	// Clone returns an independent copy of this Dynamics, suitable for
	// attaching to a different Cell (spec.md §5 "Shared resources" (c):
	// cloning is the idiom whenever a Dynamics must be attached to
	// multiple cells).
	Clone() Dynamics

	Descriptor() *descriptor.Descriptor
}

// Cell holds exactly Q populations plus E external scalars and a
// reference to a Dynamics (spec.md §3). The population array length is
// constant over the cell's lifetime. Ownership of Dynamics is enforced
// one level up, by BlockLattice.AttributeDynamics — Cell itself only
// ever replaces the pointer.
type Cell struct {
	F             []float64
	External      []float64
	dyn           Dynamics
	takesStats    bool
}

// New allocates a cell sized for dyn's descriptor and attaches dyn.
func New(dyn Dynamics) *Cell {
	d := dyn.Descriptor()
	return &Cell{
		F:          make([]float64, d.Q),
		External:   make([]float64, d.External.Total),
		dyn:        dyn,
		takesStats: true,
	}
}

// Dynamics returns the cell's current dynamics (non-owning read).
func (c *Cell) Dynamics() Dynamics { return c.dyn }

// AttributeDynamics replaces the cell's dynamics reference. Ownership
// (i.e. deciding whether the previous dynamics needs to be discarded) is
// the caller's responsibility — in practice always wrapped by
// BlockLattice.AttributeDynamics, which is the only safe public entry
// point per spec.md §4.2.
func (c *Cell) AttributeDynamics(dyn Dynamics) { c.dyn = dyn }

// TakesStatistics reports whether collision on this cell should feed
// the block's statistics accumulator (spec.md §4.2 invariant). Default
// true; toggled in bulk by BlockLattice.SpecifyStatisticsStatus to mask
// off e.g. obstacle regions.
func (c *Cell) TakesStatistics() bool { return c.takesStats }

// SetTakesStatistics toggles the per-cell statistics flag.
func (c *Cell) SetTakesStatistics(v bool) { c.takesStats = v }

// Collide forwards to c.dyn.Collide. Pure forward, per spec.md §4.2.
func (c *Cell) Collide(statistics *stats.Statistics) { c.dyn.Collide(c, statistics) }

// Revert swaps F[i] and F[i+Q/2] for 1<=i<=Q/2 (spec.md §4.2), the
// per-cell half of the streaming swap (block.bulkStream,
// block.bulkCollideAndStream): it must run on both the source and
// destination cell of a streaming edge before the cross-cell swap that
// follows, or the cross-cell swap exchanges the wrong pair of values.
func (c *Cell) Revert() {
	half := len(c.F) / 2
	for i := 1; i <= half; i++ {
		c.F[i], c.F[i+half] = c.F[i+half], c.F[i]
	}
}

func (c *Cell) ComputeDensity() float64       { return c.dyn.ComputeDensity(c) }
func (c *Cell) ComputeVelocity() []float64    { return c.dyn.ComputeVelocity(c) }
func (c *Cell) ComputeTemperature() float64   { return c.dyn.ComputeTemperature(c) }
func (c *Cell) ComputeHeatFlux() []float64    { return c.dyn.ComputeHeatFlux(c) }

// Serialize writes populations then external scalars into buf, which
// must have length Q+E (spec.md §6, "Cell serialization").
func (c *Cell) Serialize(buf []float64) {
	n := copy(buf, c.F)
	copy(buf[n:], c.External)
}

// UnSerialize is the inverse of Serialize.
func (c *Cell) UnSerialize(buf []float64) {
	n := copy(c.F, buf)
	copy(c.External, buf[n:])
}

// AttributeValues copies F and External from other into c, leaving c's
// dynamics untouched (spec.md §4.2).
func (c *Cell) AttributeValues(other *Cell) {
	copy(c.F, other.F)
	copy(c.External, other.External)
}

// Clone returns a copy of the cell with its own F and External slices;
// the Dynamics reference is shared with the original, not cloned (used
// by Composite moment queries, spec.md §4.3: "make a temporary copy of
// the cell, call completePopulations on the copy").
func (c *Cell) Clone() *Cell {
	nc := &Cell{
		F:          append([]float64(nil), c.F...),
		External:   append([]float64(nil), c.External...),
		dyn:        c.dyn,
		takesStats: c.takesStats,
	}
	return nc
}
