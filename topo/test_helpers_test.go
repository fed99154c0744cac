package topo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netsim-lab/brite-as/topo/random"
)

// chainGraph builds k+1 AS nodes joined by k edges of type typ, in order.
func chainGraph(t *testing.T, k int, typ EdgeType) *Graph {
	t.Helper()
	g := NewGraph(k + 1)
	for i := 0; i <= k; i++ {
		n := NewNode(i)
		n.SetNodeInfo(NewASNodeConf(float64(i), 0, 0))
		require.NoError(t, g.AddNode(n, i))
	}
	for i := 0; i < k; i++ {
		_, err := g.AddEdge(i, i+1, typ)
		require.NoError(t, err)
	}
	return g
}

// cellSet returns the distinct truncated cells occupied by g's nodes.
func cellSet(g *Graph) map[cell]struct{} {
	cells := make(map[cell]struct{}, g.NumNodes())
	for _, n := range g.Nodes() {
		cells[cell{x: int(n.Conf.Coord.X), y: int(n.Conf.Coord.Y)}] = struct{}{}
	}
	return cells
}

func testSampler(seed uint64) *random.Sampler {
	return random.NewSeeded(seed)
}
