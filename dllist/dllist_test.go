package dllist_test

import (
	"testing"

	"github.com/katalvlaran/physdes/dllist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCycle(t *testing.T) {
	l := dllist.New(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, l.Walk(0))
	for i := 0; i < 5; i++ {
		assert.Equal(t, (i+1)%5, l.Next(i))
		assert.Equal(t, (i-1+5)%5, l.Prev(i))
	}
}

func TestDetach(t *testing.T) {
	l := dllist.New(4)
	l.Detach(1)
	require.False(t, l.Live(1))
	assert.Equal(t, []int{0, 2, 3}, l.Walk(0))
	assert.Equal(t, 0, l.Prev(2))
	assert.Equal(t, 2, l.Next(0))
}

func TestInsertAfterPreservesExistingIndices(t *testing.T) {
	l := dllist.New(3)
	newIdx := l.InsertAfter(0)
	assert.Equal(t, 3, newIdx)
	assert.Equal(t, []int{0, 3, 1, 2}, l.Walk(0))
}

func TestDetachAllLeavesEmptyWalk(t *testing.T) {
	l := dllist.New(1)
	l.Detach(0)
	assert.Nil(t, l.Walk(0))
}

func TestCutSplitsCycleInTwo(t *testing.T) {
	l := dllist.New(4) // 0 -> 1 -> 2 -> 3 -> 0
	newIdx := l.Cut(0, 2)
	assert.Equal(t, 4, newIdx)

	assert.Equal(t, []int{0, 2, 3}, l.Walk(0))
	assert.Equal(t, []int{4, 1}, l.Walk(newIdx))
}

func TestCutArgumentOrderControlsWhichSideKeepsTheDirectEdge(t *testing.T) {
	l := dllist.New(4) // 0 -> 1 -> 2 -> 3 -> 0
	newIdx := l.Cut(2, 0)

	assert.Equal(t, []int{2, 0, 1}, l.Walk(2))
	assert.Equal(t, []int{4, 3}, l.Walk(newIdx))
}
