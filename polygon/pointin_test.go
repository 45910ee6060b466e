package polygon_test

import (
	"testing"

	"github.com/katalvlaran/physdes/point"
	"github.com/katalvlaran/physdes/polygon"
	"github.com/stretchr/testify/assert"
)

// a point strictly inside, on an edge, and strictly outside a polygon.
func TestPointInPolygon(t *testing.T) {
	verts := testPolygonCoords()
	cases := []struct {
		q    point.Point2
		want bool
	}{
		{point.NewPoint2(0, 1), true},
		{point.NewPoint2(0, -4), false},
		{point.NewPoint2(-6, -2), true},
		{point.NewPoint2(0, 0), true},
		{point.NewPoint2(10, 10), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, polygon.PointInPolygon(verts, c.q), "q=%v", c.q)
	}
}
