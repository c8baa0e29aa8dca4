package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/dynamics"
)

func TestNewEngineDefaultsToNopLogger(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.3)
	e := NewEngine(d, bg)

	assert.NotNil(t, e.Logger())
	assert.Equal(t, d, e.Descriptor())
}

func TestEngineNewLattice2DUsesEngineDescriptorAndBackground(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.3)
	e := NewEngine(d, bg)

	lat := e.NewLattice2D(3, 2, block.Config{})
	require.NotNil(t, lat)
	assert.Equal(t, 3, lat.NX())
	assert.Equal(t, 2, lat.NY())
	assert.Equal(t, d, lat.Descriptor())
}

func TestEngineNewLattice2DPanicsOnNonPositiveExtent(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.3)
	e := NewEngine(d, bg)

	assert.Panics(t, func() { e.NewLattice2D(0, 4, block.Config{}) })
}

func TestEngineUseLoggerIsFluent(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.3)
	e := NewEngine(d, bg).UseLogger(NewDefaultLogger("test", true))

	assert.True(t, e.Logger().DebugEnabled())
}
