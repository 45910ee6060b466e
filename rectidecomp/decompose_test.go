package rectidecomp_test

import (
	"testing"

	"github.com/katalvlaran/physdes/point"
	"github.com/katalvlaran/physdes/polygon"
	"github.com/katalvlaran/physdes/rectidecomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// an L-shaped hexagon splits into two rectangles of matching total area.
func TestDecomposeConvexLShape(t *testing.T) {
	verts := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(2, 0), point.NewPoint2(2, 1),
		point.NewPoint2(1, 1), point.NewPoint2(1, 2), point.NewPoint2(0, 2),
	}
	poly, err := polygon.FromPointSet(verts)
	require.NoError(t, err)
	anticlockwise := poly.IsAnticlockwise()
	require.True(t, anticlockwise)

	pieces, err := rectidecomp.DecomposeConvex(verts, anticlockwise)
	require.NoError(t, err)
	assert.Len(t, pieces, 2)

	var totalAreaX2 int64
	for _, piece := range pieces {
		assert.GreaterOrEqual(t, len(piece), 3)
		p, err := polygon.FromPointSet(piece)
		require.NoError(t, err)
		totalAreaX2 += p.SignedAreaX2()
	}
	assert.Equal(t, int64(6), totalAreaX2) // 3 * 2, since SignedAreaX2 is doubled
}

func TestDecomposeConvexAlreadyConvexRectangleIsOnePiece(t *testing.T) {
	verts := []point.Point2{
		point.NewPoint2(0, 0), point.NewPoint2(3, 0),
		point.NewPoint2(3, 2), point.NewPoint2(0, 2),
	}
	pieces, err := rectidecomp.DecomposeConvex(verts, true)
	require.NoError(t, err)
	assert.Len(t, pieces, 1)
}

func TestDecomposeConvexTooFewVertices(t *testing.T) {
	_, err := rectidecomp.DecomposeConvex([]point.Point2{point.NewPoint2(0, 0), point.NewPoint2(1, 1)}, true)
	assert.ErrorIs(t, err, rectidecomp.ErrTooFewVertices)
}
