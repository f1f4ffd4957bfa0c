package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logindomarcio/permuta-magis-v3/bfs"
	"github.com/logindomarcio/permuta-magis-v3/core"
)

// chain builds the directed graph A→B→C→D plus a shortcut A→C and an isolated E.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "C"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("E"))

	return g
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.NotContains(t, res.Depth, "E")
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(chain(t), "B", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B": 0, "C": 1, "D": 2}, res.Depth)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(chain(t), "Z")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(chain(t), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(chain(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistances(t *testing.T) {
	g := chain(t)

	dist, err := bfs.Distances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2, -1}, dist)

	// on the reversed graph the distances run towards D
	dist, err = bfs.Distances(g.Reverse(), "D", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, 1, 0, -1}, dist)
}
