package topo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelConfig(placement string, n, scale1, scale2 int, dist string, bwMin, bwMax float64) *ModelConfig {
	return &ModelConfig{
		Seed:      42,
		N:         n,
		Scale1:    scale1,
		Scale2:    scale2,
		Placement: placement,
		Bandwidth: BandwidthConfig{Distribution: dist, Min: bwMin, Max: bwMax},
	}
}

func TestASModel_ScenarioA_RandomPlacement(t *testing.T) {
	// GIVEN scale 100, random placement, n = 5
	m, err := NewASModel(modelConfig("random", 5, 100, 0, "constant", 10, 10), nil)
	require.NoError(t, err)

	// WHEN a run is generated
	g, err := m.Generate(nil)
	require.NoError(t, err)

	// THEN the graph holds 5 nodes with distinct coordinates in [0,100)^2
	assert.Equal(t, 5, g.NumNodes())
	assert.Len(t, cellSet(g), 5)
	for _, n := range g.Nodes() {
		assert.True(t, n.Conf.Coord.X >= 0 && n.Conf.Coord.X < 100)
		assert.True(t, n.Conf.Coord.Y >= 0 && n.Conf.Coord.Y < 100)
	}
}

func TestASModel_ScenarioB_ConstantBandwidth(t *testing.T) {
	// GIVEN 3 AS edges and a constant distribution with minimum 10
	cfg := modelConfig("random", 4, 100, 0, "constant", 10, 100)
	m, err := NewASModel(cfg, nil)
	require.NoError(t, err)
	edges := EdgeList{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}

	// WHEN a run is generated
	g, err := m.Generate(edges)
	require.NoError(t, err)

	// THEN all 3 edges end with bandwidth 10
	require.Equal(t, 3, g.NumEdges())
	for _, e := range g.Edges() {
		assert.Equal(t, 10.0, e.Conf.Bandwidth)
	}
}

func TestASModel_ScenarioC_HeavyTailedPlacement(t *testing.T) {
	// GIVEN scale 100 with 10x10 sub-squares and n = 50
	m, err := NewASModel(modelConfig("heavy-tailed", 50, 100, 10, "uniform", 10, 1024), nil)
	require.NoError(t, err)

	// WHEN nodes are placed
	g := NewGraph(50)
	placed, err := m.PlaceNodes(g)

	// THEN at least 50 nodes exist and the graph reports exactly that count
	require.NoError(t, err)
	assert.GreaterOrEqual(t, placed, 50)
	assert.Equal(t, placed, g.NumNodes())
	assert.Len(t, cellSet(g), placed)
}

func TestASModel_SameSeed_IdenticalRuns(t *testing.T) {
	cfg := modelConfig("random", 30, 50, 0, "exponential", 25, 0)
	edges := EdgeList{{From: 0, To: 1}, {From: 2, To: 3}, {From: 4, To: 5}}

	m1, err := NewASModel(cfg, nil)
	require.NoError(t, err)
	m2, err := NewASModel(cfg, nil)
	require.NoError(t, err)
	g1, err := m1.Generate(edges)
	require.NoError(t, err)
	g2, err := m2.Generate(edges)
	require.NoError(t, err)

	assert.NotEqual(t, m1.RunID, m2.RunID, "each model gets its own run id")
	for i, n := range g1.Nodes() {
		assert.Equal(t, n.Conf.Coord, g2.Nodes()[i].Conf.Coord)
	}
	for i, e := range g1.Edges() {
		assert.Equal(t, e.Conf.Bandwidth, g2.Edges()[i].Conf.Bandwidth)
	}
}

func TestASModel_BandwidthSettingsDoNotShiftPlacement(t *testing.T) {
	// Placement and bandwidth use separate streams.
	m1, err := NewASModel(modelConfig("random", 20, 50, 0, "constant", 10, 10), nil)
	require.NoError(t, err)
	m2, err := NewASModel(modelConfig("random", 20, 50, 0, "uniform", 1, 1000), nil)
	require.NoError(t, err)

	g1, g2 := NewGraph(20), NewGraph(20)
	_, err = m1.PlaceNodes(g1)
	require.NoError(t, err)
	_, err = m2.PlaceNodes(g2)
	require.NoError(t, err)
	for i, n := range g1.Nodes() {
		assert.Equal(t, n.Conf.Coord, g2.Nodes()[i].Conf.Coord)
	}
}

func TestNewASModel_InvalidConfig(t *testing.T) {
	_, err := NewASModel(modelConfig("spiral", 5, 100, 0, "constant", 10, 10), nil)
	assert.True(t, errors.Is(err, ErrInvalidSelector))

	_, err = NewASModel(modelConfig("random", 5, 100, 0, "lognormal", 10, 10), nil)
	assert.True(t, errors.Is(err, ErrInvalidSelector))
}

func TestASModel_Generate_BadEdgeEndpoint(t *testing.T) {
	m, err := NewASModel(modelConfig("random", 2, 10, 0, "constant", 1, 1), nil)
	require.NoError(t, err)
	_, err = m.Generate(EdgeList{{From: 0, To: 5}})
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

type routerConnector struct{}

func (routerConnector) Connect(g *Graph) error {
	_, err := g.AddEdge(0, 1, EdgeRouter)
	return err
}

func TestASModel_Generate_MixedLevelGraphRejected(t *testing.T) {
	m, err := NewASModel(modelConfig("random", 2, 10, 0, "constant", 1, 1), nil)
	require.NoError(t, err)
	_, err = m.Generate(routerConnector{})
	assert.True(t, errors.Is(err, ErrNonASEdge))
}
