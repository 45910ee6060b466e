package manhattan_test

import (
	"testing"

	"github.com/katalvlaran/physdes/manhattan"
	"github.com/katalvlaran/physdes/point"
	"github.com/stretchr/testify/assert"
)

func TestMergeWithConcreteScenario(t *testing.T) {
	// merging two point arcs in a 2:distance-2 ratio lands on the far point.
	a := manhattan.Construct(1, 0)
	b := manhattan.Construct(3, 0)
	got := a.MergeWith(b, 2)
	want := manhattan.Construct(3, 0)
	assert.Equal(t, want, got)
}

func TestMinDistEqualsL1Distance(t *testing.T) {
	// L1 distance between two point arcs equals plain Manhattan distance.
	a := manhattan.FromPoint(point.NewPoint2(-8, 2))
	b := manhattan.FromPoint(point.NewPoint2(3, 4))
	assert.Equal(t, int64(13), a.MinDistWith(b))
}

func TestMergeWithSplitsDistanceInRatio(t *testing.T) {
	// merging splits the gap between the two arcs in the given ratio.
	a := manhattan.Construct(0, 0)
	b := manhattan.Construct(10, 0)
	d := a.MinDistWith(b)
	for alpha := int64(0); alpha <= d; alpha++ {
		merged := a.MergeWith(b, alpha)
		assert.Equal(t, alpha, merged.MinDistWith(a), "alpha=%d", alpha)
		assert.Equal(t, d-alpha, merged.MinDistWith(b), "alpha=%d", alpha)
	}
}

func TestEnlargeWithIsMonotone(t *testing.T) {
	a := manhattan.Construct(5, 5)
	enlarged := a.EnlargeWith(3)
	lower := enlarged.GetLowerCorner()
	upper := enlarged.GetUpperCorner()
	assert.True(t, lower.X <= 5 && upper.X >= 5)
	assert.True(t, lower.Y <= 5 && upper.Y >= 5)
}

func TestNearestPointToClampsTowardLowerCorner(t *testing.T) {
	a := manhattan.FromRect(0, 10, 0, 10)
	got := a.NearestPointTo(point.NewPoint2(-100, -100))
	assert.Equal(t, point.NewPoint2(0, 0), got)

	got2 := a.NearestPointTo(point.NewPoint2(3, 4))
	assert.Equal(t, point.NewPoint2(3, 4), got2)
}

func TestIntersectWithDisjointIsInvalid(t *testing.T) {
	a := manhattan.FromRect(0, 1, 0, 1)
	b := manhattan.FromRect(100, 101, 100, 101)
	got := a.IntersectWith(b)
	assert.True(t, got.IsInvalid())
}

func TestGetCenterOfSinglePoint(t *testing.T) {
	a := manhattan.FromPoint(point.NewPoint2(4, 4))
	assert.Equal(t, point.NewPoint2(4, 4), a.GetCenter())
	assert.Equal(t, point.NewPoint2(4, 4), a.GetLowerCorner())
	assert.Equal(t, point.NewPoint2(4, 4), a.GetUpperCorner())
}
