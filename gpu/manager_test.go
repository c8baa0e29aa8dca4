package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palabos-go/lbm/block"
	"github.com/palabos-go/lbm/descriptor"
	"github.com/palabos-go/lbm/dynamics"
)

func TestFlattenPacksRowMajorFloat32(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.0)
	lat := block.NewBlockLattice2D(d, 2, 2, bg, block.Config{})
	lat.Get(1, 0).F[3] = 0.25

	flat := flatten(lat)
	q := d.Q
	base := (1 + 0*2) * q
	bits := binary.LittleEndian.Uint32(flat[(base+3)*4:])
	assert.InDelta(t, 0.25, float64(math.Float32frombits(bits)), 1e-6)
}

func TestFlattenLengthMatchesLatticeSize(t *testing.T) {
	d := descriptor.NewD2Q9()
	bg := dynamics.NewBGK(d, 1.0)
	lat := block.NewBlockLattice2D(d, 3, 4, bg, block.Config{})
	flat := flatten(lat)
	assert.Equal(t, 3*4*d.Q*4, len(flat))
}
