package polygon_test

import (
	"testing"

	"github.com/katalvlaran/physdes/point"
	"github.com/katalvlaran/physdes/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scatteredPoints() []point.Point2 {
	coords := [][2]int64{
		{-2, 2}, {0, -1}, {-5, 1}, {-2, 4}, {0, -4}, {-4, 3}, {-6, -2},
		{5, 1}, {2, 2}, {3, -3}, {-3, -3}, {3, 3}, {-3, -4}, {1, 4},
	}
	out := make([]point.Point2, len(coords))
	for i, c := range coords {
		out[i] = point.NewPoint2(c[0], c[1])
	}
	return out
}

func TestXMonotonePolygonIsSimpleAndMonotone(t *testing.T) {
	chain, err := polygon.XMonotonePolygon(scatteredPoints())
	require.NoError(t, err)
	assert.Len(t, chain, len(scatteredPoints()))

	poly, err := polygon.FromPointSet(chain)
	require.NoError(t, err)
	// A correctly reconstructed monotone chain never self-intersects, so
	// its doubled area must be nonzero.
	assert.NotZero(t, poly.SignedAreaX2())
}

func TestYMonotonePolygonIsSimpleAndMonotone(t *testing.T) {
	chain, err := polygon.YMonotonePolygon(scatteredPoints())
	require.NoError(t, err)
	assert.Len(t, chain, len(scatteredPoints()))
}

func TestTestPolygonIsNonConvexAndSimple(t *testing.T) {
	chain, err := polygon.TestPolygon(scatteredPoints())
	require.NoError(t, err)
	assert.Len(t, chain, len(scatteredPoints()))

	poly, err := polygon.FromPointSet(chain)
	require.NoError(t, err)
	assert.False(t, poly.IsConvex())
}

func TestIsMonotoneSquare(t *testing.T) {
	square := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(1, 0),
		point.NewPoint2(1, 1), point.NewPoint2(0, 1),
	}
	assert.True(t, polygon.IsMonotone(square, func(p point.Point2) (int64, int64) { return p.X, p.Y }))
}

func TestIsMonotoneFalseOnZigzag(t *testing.T) {
	zigzag := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(1, 1),
		point.NewPoint2(0, 1), point.NewPoint2(1, 0),
	}
	assert.False(t, polygon.IsMonotone(zigzag, func(p point.Point2) (int64, int64) { return p.X, p.Y }))
}
