package topo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteYAML_RoundTripsGraphSnapshot(t *testing.T) {
	m, err := NewASModel(modelConfig("random", 3, 20, 0, "constant", 10, 10), nil)
	require.NoError(t, err)
	g, err := m.Generate(EdgeList{{From: 0, To: 1}, {From: 1, To: 2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, NewTopologyDoc(m, g)))

	var doc TopologyDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, m.RunID.String(), doc.RunID)
	assert.Equal(t, int64(42), doc.Seed)
	assert.Equal(t, "random", doc.Placement)
	assert.Equal(t, "constant", doc.Bandwidth)
	assert.Equal(t, 3, doc.NumNodes)
	assert.Equal(t, 2, doc.NumEdges)
	require.Len(t, doc.Nodes, 3)
	for i, n := range doc.Nodes {
		assert.Equal(t, i, n.ID)
		assert.Equal(t, i, n.ASID)
		assert.Equal(t, "as", n.Type)
		assert.Equal(t, "none", n.ASType)
		assert.Equal(t, g.Nodes()[i].Conf.Coord.X, n.X)
	}
	require.Len(t, doc.Edges, 2)
	assert.Equal(t, EdgeDoc{ID: 1, From: 1, To: 2, Type: "as", Bandwidth: 10}, doc.Edges[1])
}

func TestNewTopologyDoc_HeavyTailedReportsPlacedCount(t *testing.T) {
	m, err := NewASModel(modelConfig("heavy-tailed", 10, 20, 10, "constant", 1, 1), nil)
	require.NoError(t, err)
	g, err := m.Generate(nil)
	require.NoError(t, err)

	doc := NewTopologyDoc(m, g)
	assert.Equal(t, g.NumNodes(), doc.NumNodes)
	assert.Len(t, doc.Nodes, doc.NumNodes)
	assert.Equal(t, NoASID, doc.Nodes[0].ASID)
	assert.Empty(t, doc.Edges)
}
