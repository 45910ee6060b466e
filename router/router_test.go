package router_test

import (
	"testing"

	"github.com/katalvlaran/physdes/interval"
	"github.com/katalvlaran/physdes/point"
	"github.com/katalvlaran/physdes/router"
	"github.com/katalvlaran/physdes/routingtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteSimpleConnectsEveryTerminal(t *testing.T) {
	source := point.NewPoint2(0, 0)
	terminals := []point.Point2{
		point.NewPoint2(10, 0),
		point.NewPoint2(0, 5),
		point.NewPoint2(3, 3),
	}
	tr, err := router.RouteSimple(source, terminals, nil)
	require.NoError(t, err)

	for _, term := range terminals {
		found := false
		for _, node := range tr.Nodes() {
			if node.Kind == routingtree.Terminal && node.Pos == term {
				found = true
			}
		}
		assert.True(t, found, "terminal %v not found in tree", term)
	}
}

func TestRouteSteinerIsNeverLongerThanSimple(t *testing.T) {
	source := point.NewPoint2(0, 0)
	terminals := []point.Point2{
		point.NewPoint2(10, 0),
		point.NewPoint2(10, 1),
		point.NewPoint2(10, 2),
	}
	simple, err := router.RouteSimple(source, terminals, nil)
	require.NoError(t, err)
	steiner, err := router.RouteSteiner(source, terminals, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, steiner.CalculateWirelength(), simple.CalculateWirelength())
}

func TestRouteSimpleDetoursAroundKeepOut(t *testing.T) {
	source := point.NewPoint2(0, 0)
	terminals := []point.Point2{point.NewPoint2(10, 0)}
	keepOuts := []router.KeepOut{
		point.NewRect(interval.New(4, 6), interval.New(-2, 2)),
	}
	tr, err := router.RouteSimple(source, terminals, keepOuts)
	require.NoError(t, err)

	// A direct edge from (0,0) to (10,0) runs straight through the
	// keep-out, so the terminal must NOT be a direct child of the source.
	var termID string
	for _, node := range tr.Nodes() {
		if node.Kind == routingtree.Terminal {
			termID = node.ID
		}
	}
	node, err := tr.Node(termID)
	require.NoError(t, err)
	assert.NotEqual(t, routingtree.NoParent, node.Parent)
	assert.NotEqual(t, "SRC0", node.Parent)
}

func TestRouteConstrainedFlagsOverBudgetNets(t *testing.T) {
	source := point.NewPoint2(0, 0)
	terminals := []point.Point2{point.NewPoint2(100, 0)}
	result, err := router.RouteConstrained(source, terminals, 0.5, nil)
	require.NoError(t, err)
	assert.True(t, result.Violated[0])
	assert.Equal(t, int64(50), result.Bound)
}

func TestRouteConstrainedAllowsNetsWithinBudget(t *testing.T) {
	source := point.NewPoint2(0, 0)
	terminals := []point.Point2{point.NewPoint2(10, 0)}
	result, err := router.RouteConstrained(source, terminals, 1.0, nil)
	require.NoError(t, err)
	assert.False(t, result.Violated[0])
}
