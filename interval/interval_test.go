package interval_test

import (
	"testing"

	"github.com/katalvlaran/physdes/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructionAndInvalid(t *testing.T) {
	i := interval.New(4, 8)
	require.False(t, i.IsInvalid())
	assert.Equal(t, int64(4), i.Length())

	empty := interval.New(6, 5)
	assert.True(t, empty.IsInvalid())
}

func TestIntersectWith(t *testing.T) {
	// overlapping, disjoint, and tangent interval intersections.
	got := interval.New(4, 8).IntersectWith(interval.New(5, 6))
	assert.Equal(t, interval.New(5, 6), got)

	disjoint := interval.New(1, 2).IntersectWith(interval.New(5, 6))
	assert.True(t, disjoint.IsInvalid())

	// single point of overlap collapses to a point-interval.
	tangent := interval.New(1, 3).IntersectWith(interval.New(3, 5))
	assert.Equal(t, interval.Point(3), tangent)
}

func TestMinDistWith(t *testing.T) {
	// minimum distance between disjoint and between overlapping intervals.
	got := interval.New(3, 5).MinDistWith(interval.New(7, 8))
	assert.Equal(t, int64(2), got)

	assert.Equal(t, int64(0), interval.New(1, 5).MinDistWith(interval.New(4, 9)))
}

func TestEnlargeWith(t *testing.T) {
	got := interval.New(3, 5).EnlargeWith(2)
	assert.Equal(t, interval.New(1, 7), got)
}

func TestHullWith(t *testing.T) {
	h := interval.New(1, 2).HullWith(interval.New(10, 12))
	assert.Equal(t, interval.New(1, 12), h)
	assert.True(t, h.Contains(interval.New(1, 2)))
	assert.True(t, h.Contains(interval.New(10, 12)))
}

func TestOrderingPredicates(t *testing.T) {
	i := interval.New(3, 5)
	assert.True(t, i.Lt(6))
	assert.False(t, i.Lt(5))
	assert.True(t, i.Gt(2))
	assert.False(t, i.Gt(3))
	assert.True(t, i.Le(3))
	assert.True(t, i.Ge(5))
}

func TestNearestTo(t *testing.T) {
	i := interval.New(3, 7)
	assert.Equal(t, int64(3), i.NearestTo(0))
	assert.Equal(t, int64(5), i.NearestTo(5))
	assert.Equal(t, int64(7), i.NearestTo(100))
}

func TestDegeneratePointInterval(t *testing.T) {
	p := interval.Point(4)
	assert.False(t, p.IsInvalid())
	assert.Equal(t, int64(0), p.Length())
	got := p.IntersectWith(interval.Point(4))
	assert.Equal(t, p, got)
}

func TestMulAndNeg(t *testing.T) {
	assert.Equal(t, interval.New(-6, -2), interval.New(2, 6).Mul(-1))
	assert.Equal(t, interval.New(-6, -2), interval.New(2, 6).Neg())
}
