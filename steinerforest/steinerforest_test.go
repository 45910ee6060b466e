package steinerforest_test

import (
	"testing"

	"github.com/katalvlaran/physdes/steinerforest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveGridTwoByTwoSinglePair(t *testing.T) {
	pairs := []steinerforest.Pair{
		{Source: steinerforest.GridPoint{R: 0, C: 0}, Terminal: steinerforest.GridPoint{R: 1, C: 1}},
	}
	result, err := steinerforest.SolveGrid(2, 2, pairs)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.TotalWeight)
	assert.ElementsMatch(t, [][2]int{{0, 1}, {1, 3}}, result.Edges)
	assert.Equal(t, map[int]bool{0: true}, result.Sources)
	assert.Equal(t, map[int]bool{3: true}, result.Terminals)
	assert.Equal(t, map[int]bool{1: true}, result.Steiner)
}

func TestSolveGridRejectsNonPositiveDimensions(t *testing.T) {
	_, err := steinerforest.SolveGrid(0, 2, nil)
	assert.ErrorIs(t, err, steinerforest.ErrInfeasible)
}

func TestSolveGridConnectsEveryPairOnLargerGrid(t *testing.T) {
	pairs := []steinerforest.Pair{
		{Source: steinerforest.GridPoint{R: 0, C: 0}, Terminal: steinerforest.GridPoint{R: 3, C: 3}},
		{Source: steinerforest.GridPoint{R: 0, C: 3}, Terminal: steinerforest.GridPoint{R: 3, C: 0}},
	}
	result, err := steinerforest.SolveGrid(4, 4, pairs)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Edges)

	uf := buildAdjacency(result.Edges)
	for _, p := range pairs {
		s := p.Source.R*4 + p.Source.C
		tm := p.Terminal.R*4 + p.Terminal.C
		assert.True(t, connected(uf, s, tm), "pair %v not connected", p)
	}
}

// buildAdjacency and connected offer a black-box connectivity check over
// the forest SolveGrid returned, independent of the solver's internals.
func buildAdjacency(edges [][2]int) map[int][]int {
	adj := make(map[int][]int)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return adj
}

func connected(adj map[int][]int, a, b int) bool {
	visited := map[int]bool{a: true}
	queue := []int{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			return true
		}
		for _, next := range adj[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return a == b
}
