package topo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddNode_ByIndex(t *testing.T) {
	g := NewGraph(0)
	require.NoError(t, g.AddNode(NewNode(0), 2))
	require.NoError(t, g.AddNode(NewNode(0), 0))

	assert.Equal(t, 2, g.NumNodes())
	n, ok := g.Node(2)
	require.True(t, ok)
	assert.Equal(t, 2, n.ID, "AddNode must stamp the index on the node")
	_, ok = g.Node(1)
	assert.False(t, ok, "gap index must not resolve")

	ids := []int{}
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []int{0, 2}, ids)
}

func TestGraph_AddNode_DuplicateIndexRejected(t *testing.T) {
	g := NewGraph(1)
	require.NoError(t, g.AddNode(NewNode(0), 0))
	err := g.AddNode(NewNode(0), 0)
	assert.True(t, errors.Is(err, ErrDuplicateNode))
	assert.Equal(t, 1, g.NumNodes())
}

func TestGraph_AddNode_NegativeIndexRejected(t *testing.T) {
	g := NewGraph(1)
	assert.Error(t, g.AddNode(NewNode(0), -1))
}

func TestGraph_SetNumNodes_Overwrites(t *testing.T) {
	g := NewGraph(0)
	require.NoError(t, g.AddNode(NewNode(0), 0))
	g.SetNumNodes(7)
	assert.Equal(t, 7, g.NumNodes())
}

func TestGraph_AddEdge_OrderAndEndpoints(t *testing.T) {
	g := chainGraph(t, 3, EdgeAS)
	require.Equal(t, 3, g.NumEdges())
	for i, e := range g.Edges() {
		assert.Equal(t, i, e.ID)
		assert.Equal(t, i, e.From)
		assert.Equal(t, i+1, e.To)
		assert.Equal(t, EdgeAS, e.Conf.Type)
	}

	_, err := g.AddEdge(0, 99, EdgeAS)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestASNodeConf_Defaults(t *testing.T) {
	c := NewASNodeConf(1, 2, 0)
	assert.Equal(t, Coord{X: 1, Y: 2}, c.Coord)
	assert.Equal(t, NodeAS, c.NodeType)
	assert.Equal(t, NoASID, c.ASID)
	assert.Equal(t, ASNone, c.ASType)
	assert.Nil(t, c.Topology)

	c.SetASID(4)
	c.SetASType(ASTransit)
	c.SetCoord(5, 6, 0)
	assert.Equal(t, 4, c.ASID)
	assert.Equal(t, "transit", c.ASType.String())
	assert.Equal(t, Coord{X: 5, Y: 6}, c.Coord)
}
