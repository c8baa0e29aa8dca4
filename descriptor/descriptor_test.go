package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestD2Q9Opposite(t *testing.T) {
	d := NewD2Q9()
	for i := 1; i <= 4; i++ {
		opp := d.Opposite(i)
		cx, cy := d.C[i][0], d.C[i][1]
		ox, oy := d.C[opp][0], d.C[opp][1]
		assert.Equal(t, -cx, ox)
		assert.Equal(t, -cy, oy)
	}
	assert.Equal(t, 0, d.Opposite(0))
}

func TestD2Q9WeightsSumToOne(t *testing.T) {
	d := NewD2Q9()
	var sum float64
	for _, w := range d.T {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestD3Q19WeightsAndOpposite(t *testing.T) {
	d := NewD3Q19()
	var sum float64
	for _, w := range d.T {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	for i := 1; i <= 9; i++ {
		opp := d.Opposite(i)
		for k := 0; k < 3; k++ {
			assert.Equal(t, -d.C[i][k], d.C[opp][k])
		}
	}
}

func TestD2Q9ForcedHasForce(t *testing.T) {
	plain := NewD2Q9()
	assert.False(t, plain.HasForce())

	forced := NewD2Q9Forced()
	assert.True(t, forced.HasForce())
	assert.Equal(t, 5, forced.External.Total)
}

func TestMRTInverseIsExact(t *testing.T) {
	d := NewD2Q9MRT()
	require.NotNil(t, d.MRT)

	// M * InvM should be the identity to within floating-point error.
	n := d.Q
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += d.MRT.M[i][k] * d.MRT.InvM[k][j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, s, 1e-9)
		}
	}
}

func TestRhoBarRoundTrip(t *testing.T) {
	d := NewD2Q9()
	rho := 1.234
	rb := d.RhoBar(rho)
	assert.InDelta(t, rho, d.FullRho(rb), 1e-12)
	assert.InDelta(t, 1.0/rho, d.InvRho(rb), 1e-12)
}

func TestInvalidDescriptorPanics(t *testing.T) {
	bad := &Descriptor{Name: "bad", D: 2, Q: 3, C: [][]int{{0, 0}}, T: []float64{1}}
	assert.Panics(t, func() { bad.validate() })
}
