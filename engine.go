// Package lbm is the root of the lattice Boltzmann engine: Engine ties a
// Descriptor, a background Dynamics and a Logger together the way the
// teacher's App ties an Ecs and its resources together (app.go, "App"),
// giving a caller one object to build lattices from instead of having to
// thread the same descriptor/dynamics/logger triple through every call.
package lbm

import (
	"fmt"

	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/cell"
	"github.com/palabos-go/lbm/descriptor"
)

// Engine is the facade a caller builds once per simulation and reuses to
// allocate every lattice it needs, mirroring the teacher's App: a small
// struct of shared state (here, descriptor/background/logger) handed to
// constructors instead of rebuilt per call.
type Engine struct {
	desc       *descriptor.Descriptor
	background cell.Dynamics
	logger     Logger
}

// NewEngine mirrors the teacher's NewApp(): it returns a ready-to-use
// value with every field defaulted, never nil, so the zero-configuration
// path (no logger supplied) is always safe.
func NewEngine(d *descriptor.Descriptor, background cell.Dynamics) *Engine {
	return &Engine{desc: d, background: background, logger: NewNopLogger()}
}

// UseLogger sets e's logger, fluent-builder style like the teacher's
// App.UseStates/UseModules (app_builder.go).
func (e *Engine) UseLogger(logger Logger) *Engine {
	if logger == nil {
		logger = NewNopLogger()
	}
	e.logger = logger
	return e
}

func (e *Engine) Descriptor() *descriptor.Descriptor { return e.desc }
func (e *Engine) Logger() Logger                     { return e.logger }

// NewLattice2D allocates an nx-by-ny lattice against e's descriptor and
// background dynamics, logging the allocation at Debugf the way the
// teacher's module Install hooks announce what they set up.
func (e *Engine) NewLattice2D(nx, ny int, cfg block.Config) *block.BlockLattice2D {
	if nx <= 0 || ny <= 0 {
		e.logger.Errorf("NewLattice2D: non-positive extent %dx%d", nx, ny)
		panic(fmt.Sprintf("lbm: NewLattice2D: non-positive extent %dx%d", nx, ny))
	}
	e.logger.Debugf("allocating %dx%d lattice2d, descriptor=%s", nx, ny, e.desc.Name)
	return block.NewBlockLattice2D(e.desc, nx, ny, e.background, cfg)
}

// NewLattice3D is the 3D analogue of NewLattice2D.
func (e *Engine) NewLattice3D(nx, ny, nz int, cfg block.Config) *block.BlockLattice3D {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		e.logger.Errorf("NewLattice3D: non-positive extent %dx%dx%d", nx, ny, nz)
		panic(fmt.Sprintf("lbm: NewLattice3D: non-positive extent %dx%dx%d", nx, ny, nz))
	}
	e.logger.Debugf("allocating %dx%dx%d lattice3d, descriptor=%s", nx, ny, nz, e.desc.Name)
	return block.NewBlockLattice3D(e.desc, nx, ny, nz, e.background, cfg)
}
