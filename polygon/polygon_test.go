package polygon_test

import (
	"testing"

	"github.com/katalvlaran/physdes/point"
	"github.com/katalvlaran/physdes/polygon"
	"github.com/katalvlaran/physdes/vector2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolygonCoords() []point.Point2 {
	coords := [][2]int64{
		{0, -4}, {0, -1}, {3, -3}, {5, 1}, {2, 2}, {3, 3}, {1, 4},
		{-2, 4}, {-2, 2}, {-4, 3}, {-5, 1}, {-6, -2}, {-3, -3}, {-3, -4},
	}
	out := make([]point.Point2, len(coords))
	for i, c := range coords {
		out[i] = point.NewPoint2(c[0], c[1])
	}
	return out
}

func TestSignedAreaX2(t *testing.T) {
	poly, err := polygon.FromPointSet(testPolygonCoords())
	require.NoError(t, err)
	assert.Equal(t, int64(110), poly.SignedAreaX2())
}

func TestSignedAreaInvariantUnderTranslation(t *testing.T) {
	poly, err := polygon.FromPointSet(testPolygonCoords())
	require.NoError(t, err)
	before := poly.SignedAreaX2()
	after := poly.Translate(vector2.New(100, -50)).SignedAreaX2()
	assert.Equal(t, before, after)
}

func TestIsRectilinearSquare(t *testing.T) {
	coords := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(0, 1),
		point.NewPoint2(1, 1), point.NewPoint2(1, 0),
	}
	poly, err := polygon.FromPointSet(coords)
	require.NoError(t, err)
	assert.True(t, poly.IsRectilinear())
}

func TestIsRectilinearFalseOnDiagonal(t *testing.T) {
	coords := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(0, 1),
		point.NewPoint2(1, 1), point.NewPoint2(1, 0),
		point.NewPoint2(2, -2),
	}
	poly, err := polygon.FromPointSet(coords)
	require.NoError(t, err)
	assert.False(t, poly.IsRectilinear())
}

func TestIsAnticlockwiseSquare(t *testing.T) {
	coords := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(1, 0),
		point.NewPoint2(1, 1), point.NewPoint2(0, 1),
	}
	poly, err := polygon.FromPointSet(coords)
	require.NoError(t, err)
	assert.True(t, poly.IsAnticlockwise())
}

func TestIsConvexSquare(t *testing.T) {
	coords := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(1, 0),
		point.NewPoint2(1, 1), point.NewPoint2(0, 1),
	}
	poly, err := polygon.FromPointSet(coords)
	require.NoError(t, err)
	assert.True(t, poly.IsConvex())
}

func TestIsConvexFalseOnTestPolygon(t *testing.T) {
	poly, err := polygon.FromPointSet(testPolygonCoords())
	require.NoError(t, err)
	assert.False(t, poly.IsConvex())
}

func TestFromPointSetTooFewVertices(t *testing.T) {
	_, err := polygon.FromPointSet([]point.Point2{point.NewPoint2(0, 0), point.NewPoint2(1, 1)})
	assert.ErrorIs(t, err, polygon.ErrTooFewVertices)
}

func TestVerticesRoundTrip(t *testing.T) {
	coords := testPolygonCoords()
	poly, err := polygon.FromPointSet(coords)
	require.NoError(t, err)
	assert.Equal(t, coords, poly.Vertices())
}
