// Package boundary instantiates dynamics.Composite boundary dynamics
// (through dynamics.NewVelocityDirichlet/NewDensityDirichlet; it installs
// no data processors) over the orientation-tagged regions that
// geom.Surface2D/Surface3D carve out of a block's boundary shell (spec.md
// C6, "OnLatticeBoundaryCondition"). It is the layer that actually knows
// which imposed or extrapolated datum to hand those constructors: the
// dynamics package only supplies the generic machinery those closures
// plug into.
package boundary

// BcType mirrors Palabos' plb::boundary::BcType enum (spec.md C6): the
// five closure families an edge/face/corner can be instantiated with.
type BcType int

const (
	// Dirichlet imposes a velocity or a density outright.
	Dirichlet BcType = iota
	// Neumann imposes zero-gradient for all velocity components or for
	// the density.
	Neumann
	// FreeSlip imposes zero-gradient for tangential velocity components
	// and zero for the normal one.
	FreeSlip
	// Outflow imposes zero-gradient for all velocity components.
	Outflow
	// NormalOutflow imposes zero-gradient for the normal velocity
	// component and zero for the tangential ones.
	NormalOutflow
)
