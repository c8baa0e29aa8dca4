package process

import (
	"testing"

	"github.com/palabos-go/lbm/geom"
	"github.com/palabos-go/lbm/stats"
	"github.com/stretchr/testify/assert"
)

func TestBoxed2DShiftMultiplyDivide(t *testing.T) {
	b := NewBoxed2D(geom.Box2D{X0: 1, X1: 3, Y0: 2, Y1: 4})
	b.Shift(1, -1)
	assert.Equal(t, geom.Box2D{X0: 2, X1: 4, Y0: 1, Y1: 3}, b.Domain())

	b.Multiply(2)
	assert.Equal(t, geom.Box2D{X0: 4, X1: 8, Y0: 2, Y1: 6}, b.Domain())

	b.Divide(2)
	assert.Equal(t, geom.Box2D{X0: 2, X1: 4, Y0: 1, Y1: 3}, b.Domain())
}

func TestBoxed2DExtractIntersects(t *testing.T) {
	b := NewBoxed2D(geom.Box2D{X0: 0, X1: 10, Y0: 0, Y1: 10})
	ok := b.Extract(geom.Box2D{X0: 5, X1: 20, Y0: 5, Y1: 20})
	assert.True(t, ok)
	assert.Equal(t, geom.Box2D{X0: 5, X1: 10, Y0: 5, Y1: 10}, b.Domain())
}

func TestBoxed2DExtractEmptyReturnsFalse(t *testing.T) {
	b := NewBoxed2D(geom.Box2D{X0: 0, X1: 1, Y0: 0, Y1: 1})
	ok := b.Extract(geom.Box2D{X0: 5, X1: 6, Y0: 5, Y1: 6})
	assert.False(t, ok)
}

func TestDotted2DDomainIsBoundingBox(t *testing.T) {
	d := NewDotted2D(geom.DotList{X: []int{1, 5, 3}, Y: []int{4, 1, 9}})
	assert.Equal(t, geom.Box2D{X0: 1, X1: 5, Y0: 1, Y1: 9}, d.Domain())
}

func TestDotted2DExtractKeepsOnlyContained(t *testing.T) {
	d := NewDotted2D(geom.DotList{X: []int{1, 5, 9}, Y: []int{1, 5, 9}})
	ok := d.Extract(geom.Box2D{X0: 0, X1: 6, Y0: 0, Y1: 6})
	assert.True(t, ok)
	assert.Equal(t, []int{1, 5}, d.Dots.X)
}

func TestBoxedAppliesToDefaultsBulk(t *testing.T) {
	b := NewBoxed2D(geom.Box2D{})
	assert.Equal(t, Bulk, b.AppliesTo())
	b.Envelope = true
	assert.Equal(t, BulkAndEnvelope, b.AppliesTo())
}

func TestReductive2DGathersAverageOverBox(t *testing.T) {
	box := geom.Box2D{X0: 0, X1: 1, Y0: 0, Y1: 1}
	r := NewReductive2D(box)
	r.Gather = func(_ LatticeView2D, x, y int, acc *stats.Statistics) {
		acc.GatherSum(stats.AvgRho, float64(x+y))
	}
	r.Run(nil)

	assert.InDelta(t, 1.0, r.Stats.Get(stats.AvgRho), 1e-12, "(0+0+1+0+0+1+1+1)/4 = 1")
}

func TestReductive2DModificationPatternIsFalse(t *testing.T) {
	r := NewReductive2D(geom.Box2D{})
	assert.Equal(t, []bool{false}, r.ModificationPattern())
}
